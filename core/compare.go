package core

import "sort"

// Comparison is the result of CompareNodes: the neighbor sets shared by two
// nodes, the sets unique to each, and their Jaccard similarity.
type Comparison struct {
	Shared  []string
	AOnly   []string
	BOnly   []string
	Jaccard float64
}

// CompareNodes reports the shared, a-only, and b-only neighbor sets of a
// and b, plus their Jaccard similarity (|shared| / |union|). Two nodes with
// empty neighbor sets are considered identical (Jaccard = 1.0), per
// spec.md §4.1.
func (n *Network) CompareNodes(a, b string) (Comparison, error) {
	nbA, err := n.Neighbors(a)
	if err != nil {
		return Comparison{}, err
	}
	nbB, err := n.Neighbors(b)
	if err != nil {
		return Comparison{}, err
	}

	setA := make(map[string]bool, len(nbA))
	for _, x := range nbA {
		setA[x] = true
	}
	setB := make(map[string]bool, len(nbB))
	for _, x := range nbB {
		setB[x] = true
	}

	var shared, aOnly, bOnly []string
	for _, x := range nbA {
		if setB[x] {
			shared = append(shared, x)
		} else {
			aOnly = append(aOnly, x)
		}
	}
	for _, x := range nbB {
		if !setA[x] {
			bOnly = append(bOnly, x)
		}
	}
	sort.Strings(shared)
	sort.Strings(aOnly)
	sort.Strings(bOnly)

	union := len(setA)
	for x := range setB {
		if !setA[x] {
			union++
		}
	}

	jaccard := 1.0
	if union > 0 {
		jaccard = float64(len(shared)) / float64(union)
	}

	return Comparison{Shared: shared, AOnly: aOnly, BOnly: bOnly, Jaccard: jaccard}, nil
}

// NHopNeighborhood returns, sorted, every node reachable from start within
// hops edges (inclusive of start itself), traversing edges in either
// direction. hops must be non-negative.
func (n *Network) NHopNeighborhood(start string, hops int) ([]string, error) {
	if hops < 0 {
		return nil, ErrNegativeHops
	}
	id := NormalizeID(start)
	if !n.ContainsNode(id) {
		return nil, ErrNodeNotFound
	}

	visited := map[string]bool{id: true}
	frontier := []string{id}
	for step := 0; step < hops; step++ {
		var next []string
		for _, cur := range frontier {
			nbrs, err := n.Neighbors(cur)
			if err != nil {
				return nil, err
			}
			for _, nb := range nbrs {
				if !visited[nb] {
					visited[nb] = true
					next = append(next, nb)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	out := make([]string, 0, len(visited))
	for id := range visited {
		out = append(out, id)
	}
	sort.Strings(out)

	return out, nil
}

// FirstNeighbors returns the sorted set of nodes adjacent to any member of
// set, excluding members of set itself.
func (n *Network) FirstNeighbors(set []string) ([]string, error) {
	members := make(map[string]bool, len(set))
	for _, s := range set {
		members[NormalizeID(s)] = true
	}

	out := make(map[string]bool)
	for raw := range members {
		nbrs, err := n.Neighbors(raw)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			if !members[nb] {
				out[nb] = true
			}
		}
	}

	result := make([]string, 0, len(out))
	for id := range out {
		result = append(result, id)
	}
	sort.Strings(result)

	return result, nil
}
