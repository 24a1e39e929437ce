package core

// ensureMeta recomputes the cached directed/bipartite/DAG flags if stale.
func (n *Network) ensureMeta() {
	if n.meta.valid {
		return
	}
	n.meta.directed = n.computeDirected()
	n.meta.bipartite = n.computeBipartite()
	n.meta.dag = n.computeDAG()
	n.meta.valid = true
}

// IsDirected reports whether the Network contains at least one edge
// explicitly marked Directed.
func (n *Network) IsDirected() bool {
	n.ensureMeta()

	return n.meta.directed
}

func (n *Network) computeDirected() bool {
	for _, e := range n.edges {
		if e.Directed == Directed {
			return true
		}
	}

	return false
}

// IsBipartite reports whether the Network's nodes can be 2-colored such
// that every non-self-loop edge connects nodes of different colors. An
// empty network, or one with only self-loops, is bipartite.
func (n *Network) IsBipartite() bool {
	n.ensureMeta()

	return n.meta.bipartite
}

func (n *Network) computeBipartite() bool {
	color := make(map[string]int, len(n.nodeOrder))
	for _, start := range n.nodeOrder {
		if _, seen := color[start]; seen {
			continue
		}
		color[start] = 0
		queue := []string{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			links, _ := n.LinksForNode(cur)
			for _, e := range links {
				if e.selfLoop() {
					continue
				}
				other := e.Target
				if e.Source != cur {
					other = e.Source
				}
				if c, seen := color[other]; seen {
					if c == color[cur] {
						return false
					}
					continue
				}
				color[other] = 1 - color[cur]
				queue = append(queue, other)
			}
		}
	}

	return true
}

// IsDAG reports whether the Network's directed, non-shadow sub-graph is
// acyclic. Undirected and unspecified edges are ignored for this check
// (spec.md §4.2's topological sort/cycle analysis operate on the directed
// non-shadow sub-edges only).
func (n *Network) IsDAG() bool {
	n.ensureMeta()

	return n.meta.dag
}

func (n *Network) computeDAG() bool {
	const white, gray, black = 0, 1, 2
	state := make(map[string]int, len(n.nodeOrder))

	var visit func(id string) bool
	visit = func(id string) bool {
		state[id] = gray
		links, _ := n.LinksForNode(id)
		for _, e := range links {
			if e.IsShadow || e.Directed != Directed || e.Source != id {
				continue
			}
			switch state[e.Target] {
			case gray:
				return false
			case white:
				if !visit(e.Target) {
					return false
				}
			}
		}
		state[id] = black

		return true
	}

	for _, id := range n.nodeOrder {
		if state[id] == white {
			if !visit(id) {
				return false
			}
		}
	}

	return true
}
