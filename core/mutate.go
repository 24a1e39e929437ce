package core

// AddNode inserts a Node if its normalized ID is not already present and
// returns that normalized ID. Idempotent: re-adding an existing spelling
// (even a differently-cased one) is a no-op and keeps the first-seen
// Display spelling. Removes the node from the lone set only when it is
// later given an incident edge via AddLink.
func (n *Network) AddNode(raw string) string {
	id := NormalizeID(raw)
	if id == "" {
		return id
	}
	if _, ok := n.nodes[id]; !ok {
		n.nodeOrder = append(n.nodeOrder, id)
		n.nodes[id] = &Node{ID: id, Display: raw}
	}

	return id
}

// AddLoneNode registers raw as a node with no incident edges. A no-op if
// the node already has an incident edge (it is not re-added to the lone
// set) or was already marked lone.
func (n *Network) AddLoneNode(raw string) string {
	id := n.AddNode(raw)
	if id == "" || n.lone[id] {
		return id
	}
	if n.degreeOf(id) > 0 {
		return id
	}
	n.lone[id] = true
	n.loneOrder = append(n.loneOrder, id)

	return id
}

// AddLink appends an Edge to the Network, creating Source/Target nodes if
// missing and removing them from the lone set. AddLink does not deduplicate
// against an existing edge under the same canonical key — spec.md §3
// assigns that responsibility to the parser layer upstream; a caller that
// needs the invariant enforced should check HasCanonicalEdge first.
//
// Returns the new edge's position in the Network's edge list, which is its
// canonical identity for the lifetime of the Network.
func (n *Network) AddLink(source, target, relation string, directed Directedness, isShadow bool) (int, error) {
	src := n.AddNode(source)
	tgt := n.AddNode(target)
	if src == "" || tgt == "" {
		return -1, ErrEmptyNodeID
	}
	if n.lone[src] || n.lone[tgt] {
		delete(n.lone, src)
		delete(n.lone, tgt)
		kept := n.loneOrder[:0]
		for _, id := range n.loneOrder {
			if n.lone[id] {
				kept = append(kept, id)
			}
		}
		n.loneOrder = kept
	}

	e :=&Edge{Source: src, Target: tgt, Relation: relation, Directed: directed, IsShadow: isShadow}
	n.edges = append(n.edges, e)
	n.invalidate()

	return len(n.edges) - 1, nil
}

// HasCanonicalEdge reports whether an edge sharing e's canonical
// (source, target, relation) key already exists in the Network, per the
// dedup rule in spec.md §3.
func (n *Network) HasCanonicalEdge(source, target, relation string) bool {
	probe := &Edge{Source: NormalizeID(source), Target: NormalizeID(target), Relation: relation}
	key := probe.canonicalKey()
	for _, e := range n.edges {
		if e.canonicalKey() == key {
			return true
		}
	}

	return false
}

// GenerateShadows appends, for every non-self-loop edge currently in the
// Network, a reversed twin edge with IsShadow set to true and the same
// Relation. It is idempotent: a Network that already has shadows returns 0
// and makes no changes, per spec.md §4.1 ("generate_shadows... appends
// shadows only when none currently exist").
func (n *Network) GenerateShadows() int {
	if n.hasShadows {
		return 0
	}
	// Snapshot the primary count before appending so we never shadow a shadow.
	primaryCount := len(n.edges)
	created := 0
	for i := 0; i < primaryCount; i++ {
		e := n.edges[i]
		if e.selfLoop() {
			continue
		}
		n.edges = append(n.edges, &Edge{
			Source:   e.Target,
			Target:   e.Source,
			Relation: e.Relation,
			Directed: e.Directed,
			IsShadow: true,
		})
		created++
	}
	n.hasShadows = true
	if created > 0 {
		n.invalidate()
	}

	return created
}

// HasShadows reports whether GenerateShadows has already been run.
func (n *Network) HasShadows() bool { return n.hasShadows }

// degreeOf counts incident edges (including shadows) for id without
// requiring the public adjacency rebuild — used internally by AddLoneNode
// before any edge has necessarily caused a rebuild.
func (n *Network) degreeOf(id string) int {
	count := 0
	for _, e := range n.edges {
		if e.Source == id || e.Target == id {
			count++
		}
	}

	return count
}
