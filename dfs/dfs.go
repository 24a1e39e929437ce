package dfs

import (
	"context"
	"errors"

	"github.com/gobiofabric/biofabric/core"
)

// ErrStartNodeNotFound is returned when the start ID is absent from the Network.
var ErrStartNodeNotFound = errors.New("dfs: start node not found")

// Result holds the outcome of a DFS traversal: the visit order, the
// per-node depth from the start, and the DFS-tree parent of each node.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Option configures DFS behavior.
type Option func(*options)

type options struct {
	ctx     context.Context
	onVisit func(id string, depth int)
}

func defaultOptions() options {
	return options{ctx: context.Background(), onVisit: func(string, int) {}}
}

// WithContext sets a cancellation context; DFS checks it once per node
// processed. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked as each node is popped off the
// stack, primarily used by layouts to drive a progress.Monitor.
func WithOnVisit(fn func(id string, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// visitFrame is one entry of the explicit DFS stack: a node queued for
// visiting at a known depth.
type visitFrame struct {
	node  string
	depth int
}

// DFS runs depth-first search over net from start. Neighbor expansion
// order is lexicographic ascending, so the stack is pushed in reverse
// order per node: that makes the smallest unvisited neighbor the next one
// popped (spec.md §4.2: "DFS stacks in reverse lexicographic order so it
// visits smallest-first"). Returns ErrNetworkNil, ErrStartNodeNotFound, or
// a context cancellation error.
func DFS(net *core.Network, start string, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	if !net.ContainsNode(start) {
		return nil, ErrStartNodeNotFound
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	id := core.NormalizeID(start)
	res := &Result{
		Order:  make([]string, 0, net.NodeCount()),
		Depth:  map[string]int{id: 0},
		Parent: make(map[string]string),
	}

	visited := map[string]bool{id: true}
	stack := []visitFrame{{node: id, depth: 0}}

	for len(stack) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		res.Order = append(res.Order, top.node)
		o.onVisit(top.node, top.depth)

		nbrs, err := net.Neighbors(top.node)
		if err != nil {
			return nil, err
		}
		for i := len(nbrs) - 1; i >= 0; i-- {
			nb := nbrs[i]
			if visited[nb] {
				continue
			}
			visited[nb] = true
			res.Depth[nb] = top.depth + 1
			res.Parent[nb] = top.node
			stack = append(stack, visitFrame{node: nb, depth: top.depth + 1})
		}
	}

	return res, nil
}
