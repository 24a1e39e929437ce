package dfs

import "github.com/gobiofabric/biofabric/core"

// DagLevels computes each node's longest-path level (0 for a node with no
// incoming directed non-shadow edge) via a single forward pass over a
// topological order of net's directed, non-shadow sub-graph. Returns
// (nil, nil) if that sub-graph contains a cycle.
func DagLevels(net *core.Network) (map[string]int, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}

	order, err := TopologicalSort(net, false)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	levels := make(map[string]int, len(order))
	for _, id := range order {
		levels[id] = 0
	}
	for _, id := range order {
		nbrs, err := directedNeighbors(net, id)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			if levels[id]+1 > levels[nb] {
				levels[nb] = levels[id] + 1
			}
		}
	}

	return levels, nil
}
