package dfs

import (
	"sort"

	"github.com/gobiofabric/biofabric/core"
)

// TopologicalSort computes a linear ordering of net's directed, non-shadow
// sub-graph such that every edge u->v places u before v. With compress
// false, nodes are dequeued one at a time, always the ready (zero
// in-degree) node with the smallest ID next. With compress true,
// the whole zero-in-degree frontier is processed as one level per
// iteration, sorted by degree (in the full non-shadow sub-graph) descending
// then ID ascending, per spec.md §4.2.
//
// Returns (nil, nil) if net contains a directed cycle.
func TopologicalSort(net *core.Network, compress bool) ([]string, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}

	ids := net.NodeOrder()
	sort.Strings(ids)

	inDegree := make(map[string]int, len(ids))
	outEdges := make(map[string][]string, len(ids))
	for _, id := range ids {
		inDegree[id] = 0
	}
	for _, id := range ids {
		nbrs, err := directedNeighbors(net, id)
		if err != nil {
			return nil, err
		}
		outEdges[id] = nbrs
		for _, nb := range nbrs {
			inDegree[nb]++
		}
	}

	degree := make(map[string]int, len(ids))
	if compress {
		for _, id := range ids {
			d, err := net.DegreeNonShadow(id)
			if err != nil {
				return nil, err
			}
			degree[id] = d
		}
	}

	var frontier []string
	for _, id := range ids {
		if inDegree[id] == 0 {
			frontier = append(frontier, id)
		}
	}
	sort.Strings(frontier)

	order := make([]string, 0, len(ids))

	if compress {
		for len(frontier) > 0 {
			level := make([]string, len(frontier))
			copy(level, frontier)
			sort.Slice(level, func(i, j int) bool {
				if degree[level[i]] != degree[level[j]] {
					return degree[level[i]] > degree[level[j]]
				}
				return level[i] < level[j]
			})
			order = append(order, level...)

			var next []string
			for _, u := range level {
				for _, v := range outEdges[u] {
					inDegree[v]--
					if inDegree[v] == 0 {
						next = append(next, v)
					}
				}
			}
			sort.Strings(next)
			frontier = next
		}
	} else {
		for len(frontier) > 0 {
			u := frontier[0]
			frontier = frontier[1:]
			order = append(order, u)

			var freed []string
			for _, v := range outEdges[u] {
				inDegree[v]--
				if inDegree[v] == 0 {
					freed = append(freed, v)
				}
			}
			sort.Strings(freed)
			frontier = mergeSorted(frontier, freed)
		}
	}

	if len(order) != len(ids) {
		return nil, nil // cycle
	}

	return order, nil
}

// mergeSorted merges two already-sorted string slices, preserving overall
// ascending order, used by the uncompressed Kahn's-algorithm variant to
// keep the frontier queue sorted without re-sorting it wholesale each step.
func mergeSorted(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
