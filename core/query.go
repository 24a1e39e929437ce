package core

import "sort"

// rebuildAdjacency recomputes the id -> edge-position index from scratch.
// Called lazily by any read that needs it, guarded by adjDirty.
func (n *Network) rebuildAdjacency() {
	n.adj = make(map[string][]int, len(n.nodes))
	for i, e := range n.edges {
		n.adj[e.Source] = append(n.adj[e.Source], i)
		if e.Target != e.Source {
			n.adj[e.Target] = append(n.adj[e.Target], i)
		}
	}
	n.adjDirty = false
}

// ensureAdjacency rebuilds the adjacency index if it is stale.
func (n *Network) ensureAdjacency() {
	if n.adjDirty {
		n.rebuildAdjacency()
	}
}

// ContainsNode reports whether raw (after normalization) names a node in
// the Network.
func (n *Network) ContainsNode(raw string) bool {
	_, ok := n.nodes[NormalizeID(raw)]

	return ok
}

// GetNode returns the Node for raw, or ErrNodeNotFound.
func (n *Network) GetNode(raw string) (*Node, error) {
	node, ok := n.nodes[NormalizeID(raw)]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return node, nil
}

// LinksForNode returns, in edge-list order, every Edge incident to id
// (source or target, including shadows and self-loops).
func (n *Network) LinksForNode(raw string) ([]*Edge, error) {
	id := NormalizeID(raw)
	if !n.ContainsNode(id) {
		return nil, ErrNodeNotFound
	}
	n.ensureAdjacency()
	positions := n.adj[id]
	out := make([]*Edge, 0, len(positions))
	for _, p := range positions {
		out = append(out, n.edges[p])
	}

	return out, nil
}

// Degree returns the number of edges incident to id, counting shadows and
// self-loops (a self-loop counts once, matching its single appearance in
// the edge list).
func (n *Network) Degree(raw string) (int, error) {
	links, err := n.LinksForNode(raw)
	if err != nil {
		return 0, err
	}

	return len(links), nil
}

// DegreeNonShadow returns the incident-edge count of id, excluding shadow
// edges. Node-layout seed selection (spec.md §4.4.1) always uses this form:
// "Shadow edges are ignored for degree computation."
func (n *Network) DegreeNonShadow(raw string) (int, error) {
	links, err := n.LinksForNode(raw)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range links {
		if !e.IsShadow {
			count++
		}
	}

	return count, nil
}

// Neighbors returns the sorted, de-duplicated set of node IDs adjacent to
// id via any edge (including shadows).
func (n *Network) Neighbors(raw string) ([]string, error) {
	links, err := n.LinksForNode(raw)
	if err != nil {
		return nil, err
	}
	id := NormalizeID(raw)
	seen := make(map[string]bool, len(links))
	out := make([]string, 0, len(links))
	for _, e := range links {
		other := e.Target
		if e.Source != id {
			other = e.Source
		}
		if other == id {
			continue // self-loop contributes no neighbor
		}
		if !seen[other] {
			seen[other] = true
			out = append(out, other)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Nodes returns all Nodes in insertion order.
func (n *Network) Nodes() []*Node {
	out := make([]*Node, 0, len(n.nodeOrder))
	for _, id := range n.nodeOrder {
		out = append(out, n.nodes[id])
	}

	return out
}

// NodeOrder returns all node IDs in insertion order.
func (n *Network) NodeOrder() []string {
	out := make([]string, len(n.nodeOrder))
	copy(out, n.nodeOrder)

	return out
}

// Edges returns the full edge list (primaries then, if generated,
// shadows) in its canonical, position-stable order.
func (n *Network) Edges() []*Edge {
	out := make([]*Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// LoneNodes returns the lone (edge-free) node IDs in insertion order.
func (n *Network) LoneNodes() []string {
	out := make([]string, len(n.loneOrder))
	copy(out, n.loneOrder)

	return out
}

// NodeCount returns the number of distinct nodes in the Network.
func (n *Network) NodeCount() int { return len(n.nodeOrder) }

// EdgeCount returns the number of edges currently in the Network
// (including shadows, once generated).
func (n *Network) EdgeCount() int { return len(n.edges) }
