package graphalgo

import (
	"sort"

	"github.com/gobiofabric/biofabric/bfs"
	"github.com/gobiofabric/biofabric/core"
)

// Component is one connected component: its member node IDs in BFS visit
// order, seeded from the component's highest-degree node.
type Component struct {
	Nodes []string
}

// ConnectedComponents partitions net's nodes into connected components,
// each seeded from the highest-degree unvisited node (ties broken by
// smaller ID), traversed with plain lexicographic BFS. Components are
// returned sorted by size descending.
func ConnectedComponents(net *core.Network) ([]Component, error) {
	ranked, err := NodesByDegree(net)
	if err != nil {
		return nil, err
	}

	visited := make(map[string]bool, len(ranked))
	var components []Component

	for {
		seed, ok := HighestDegreeUnvisited(net, ranked, visited)
		if !ok {
			break
		}
		res, err := bfs.BFS(net, seed)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			visited[id] = true
		}
		components = append(components, Component{Nodes: res.Order})
	}

	sort.SliceStable(components, func(i, j int) bool {
		return len(components[i].Nodes) > len(components[j].Nodes)
	})

	return components, nil
}
