package layout

import (
	"sort"

	"github.com/gobiofabric/biofabric/bfs"
	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/progress"
)

// degreeRank returns a bfs.BFSOrdered rank function over net that sorts
// unvisited neighbours by degree descending (shadow edges ignored), id
// ascending on ties — the expansion order spec.md §4.4.1 specifies.
func degreeRank(net *core.Network) func(string) int {
	return func(id string) int {
		d, err := net.DegreeNonShadow(id)
		if err != nil {
			return 0
		}

		return -d
	}
}

// highestDegreeUnvisited returns the highest-non-shadow-degree node among
// candidates not in visited, ties broken by id ascending. ok is false when
// every candidate is visited.
func highestDegreeUnvisited(net *core.Network, candidates []string, visited map[string]bool) (id string, ok bool) {
	bestDegree := -1
	for _, c := range candidates {
		if visited[c] {
			continue
		}
		d, err := net.DegreeNonShadow(c)
		if err != nil {
			continue
		}
		if d > bestDegree || (d == bestDegree && c < id) || !ok {
			bestDegree = d
			id = c
			ok = true
		}
	}

	return id, ok
}

// defaultNodeLayout implements spec.md §4.4.1: degree-seeded BFS, one
// component at a time, lone nodes appended last in lexicographic order.
func defaultNodeLayout(net *core.Network, params Params) ([]string, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	reporter := progress.NewLoopReporter(params.monitor(), "", net.NodeCount(), 0)

	rank := degreeRank(net)
	visited := make(map[string]bool, net.NodeCount())
	order := make([]string, 0, net.NodeCount())

	// Restrict seed/BFS candidates to non-lone nodes; lone nodes are
	// handled separately and appended at the end.
	lone := make(map[string]bool)
	for _, id := range net.LoneNodes() {
		lone[id] = true
	}
	var candidates []string
	for _, id := range net.NodeOrder() {
		if !lone[id] {
			candidates = append(candidates, id)
		}
	}

	seed := params.StartNode
	if seed != "" {
		seed = core.NormalizeID(seed)
		if !net.ContainsNode(seed) || lone[seed] {
			seed = ""
		}
	}

	done := 0
	for {
		var next string
		var ok bool
		if seed != "" && !visited[seed] {
			next, ok = seed, true
			seed = ""
		} else {
			next, ok = highestDegreeUnvisited(net, candidates, visited)
		}
		if !ok {
			break
		}

		var tickErr error
		res, err := bfs.BFSOrdered(net, next, rank, bfs.WithOnVisit(func(string, int) {
			done++
			if tickErr == nil {
				tickErr = reporter.Tick(done)
			}
		}))
		if err != nil {
			return nil, err
		}
		if tickErr != nil {
			return nil, tickErr
		}
		for _, id := range res.Order {
			if !visited[id] {
				visited[id] = true
				order = append(order, id)
			}
		}
	}

	loneOrder := append([]string(nil), net.LoneNodes()...)
	sort.Strings(loneOrder)
	order = append(order, loneOrder...)

	if err := reporter.Finish(); err != nil {
		return nil, err
	}

	return order, nil
}
