package core

// ExtractSubnetwork returns a new Network containing only the nodes in ids
// and the edges (including shadows) whose endpoints are both kept. Lone
// nodes among ids are preserved as lone in the result even if they had
// edges in the original Network, as long as none of those edges survive.
// Insertion order of surviving nodes and edges is preserved. A shadow edge
// follows its primary: if the primary survives the cut, so does its shadow
// (and vice versa, since both endpoints are the same pair).
func (n *Network) ExtractSubnetwork(ids []string) *Network {
	keep := make(map[string]bool, len(ids))
	for _, raw := range ids {
		id := NormalizeID(raw)
		if n.ContainsNode(id) {
			keep[id] = true
		}
	}

	out := NewNetwork()
	for _, id := range n.nodeOrder {
		if keep[id] {
			out.AddNode(n.nodes[id].Display)
		}
	}

	for _, e := range n.edges {
		if keep[e.Source] && keep[e.Target] {
			out.edges = append(out.edges, &Edge{
				Source:   e.Source,
				Target:   e.Target,
				Relation: e.Relation,
				Directed: e.Directed,
				IsShadow: e.IsShadow,
			})
		}
	}
	out.hasShadows = n.hasShadows

	for _, id := range n.loneOrder {
		if keep[id] {
			out.lone[id] = true
			out.loneOrder = append(out.loneOrder, id)
		}
	}
	// Nodes that survive the cut but end up with no surviving edge and were
	// not already lone in the source become lone in the result.
	for _, id := range out.nodeOrder {
		if out.lone[id] {
			continue
		}
		if out.degreeOf(id) == 0 {
			out.lone[id] = true
			out.loneOrder = append(out.loneOrder, id)
		}
	}
	out.invalidate()

	return out
}
