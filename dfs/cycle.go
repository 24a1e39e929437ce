package dfs

import (
	"sort"

	"github.com/gobiofabric/biofabric/core"
)

const (
	white = 0
	gray  = 1
	black = 2
)

// directedNeighbors returns, sorted ascending, the targets of id's outgoing
// directed non-shadow edges.
func directedNeighbors(net *core.Network, id string) ([]string, error) {
	links, err := net.LinksForNode(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(links))
	for _, e := range links {
		if !e.IsShadow && e.Directed == core.Directed && e.Source == id {
			out = append(out, e.Target)
		}
	}
	sort.Strings(out)

	return out, nil
}

// frame is one level of the explicit DFS stack: the node at this level and
// how many of its directedNeighbors have already been pushed.
type frame struct {
	node string
	next int
	nbrs []string
}

// FindCycle runs an iterative three-colour DFS over net's directed,
// non-shadow sub-graph and returns the first cycle encountered, as a node
// list with the first element repeated as the last (closing the cycle).
// Returns (nil, nil) if the sub-graph is acyclic.
func FindCycle(net *core.Network) ([]string, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}

	ids := net.NodeOrder()
	sort.Strings(ids)

	state := make(map[string]int, len(ids))
	var stack []frame

	for _, start := range ids {
		if state[start] != white {
			continue
		}
		nbrs, err := directedNeighbors(net, start)
		if err != nil {
			return nil, err
		}
		state[start] = gray
		stack = append(stack, frame{node: start, nbrs: nbrs})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next >= len(top.nbrs) {
				state[top.node] = black
				stack = stack[:len(stack)-1]
				continue
			}
			nb := top.nbrs[top.next]
			top.next++

			switch state[nb] {
			case gray:
				return closeCycle(stack, nb), nil
			case white:
				nbNbrs, err := directedNeighbors(net, nb)
				if err != nil {
					return nil, err
				}
				state[nb] = gray
				stack = append(stack, frame{node: nb, nbrs: nbNbrs})
			}
		}
	}

	return nil, nil
}

// closeCycle walks the recursion stack back from its top to the frame
// whose node equals target, returning that sub-path with target appended
// again at the end.
func closeCycle(stack []frame, target string) []string {
	start := 0
	for i, f := range stack {
		if f.node == target {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		cycle = append(cycle, f.node)
	}
	cycle = append(cycle, target)

	return cycle
}
