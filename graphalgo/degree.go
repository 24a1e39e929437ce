package graphalgo

import (
	"sort"

	"github.com/gobiofabric/biofabric/core"
)

// DegreeEntry pairs a node ID with its non-shadow degree.
type DegreeEntry struct {
	ID     string
	Degree int
}

// NodesByDegree returns every node in net sorted by degree descending,
// then ID ascending, per spec.md §4.2.
func NodesByDegree(net *core.Network) ([]DegreeEntry, error) {
	ids := net.NodeOrder()
	out := make([]DegreeEntry, 0, len(ids))
	for _, id := range ids {
		d, err := net.DegreeNonShadow(id)
		if err != nil {
			return nil, err
		}
		out = append(out, DegreeEntry{ID: id, Degree: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Degree != out[j].Degree {
			return out[i].Degree > out[j].Degree
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// HighestDegreeUnvisited returns the first ID in candidates not present in
// visited; net is not consulted. With candidates in NodesByDegree order,
// that is the highest-degree unvisited node, ties broken by ID ascending.
// Returns ("", false) if every candidate is visited.
func HighestDegreeUnvisited(net *core.Network, candidates []DegreeEntry, visited map[string]bool) (string, bool) {
	for _, c := range candidates {
		if !visited[c.ID] {
			return c.ID, true
		}
	}

	return "", false
}
