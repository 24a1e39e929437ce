package bfs

import (
	"context"
	"errors"

	"github.com/gobiofabric/biofabric/core"
)

// ErrNetworkNil is returned when a nil Network is passed to BFS.
var ErrNetworkNil = errors.New("bfs: network is nil")

// ErrStartNodeNotFound is returned when the start ID is absent from the Network.
var ErrStartNodeNotFound = errors.New("bfs: start node not found")

// Result holds the outcome of a BFS traversal: the visit order, the
// per-node depth from the start, and the BFS-tree parent of each node.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Option configures BFS behavior.
type Option func(*options)

type options struct {
	ctx     context.Context
	onVisit func(id string, depth int)
}

func defaultOptions() options {
	return options{ctx: context.Background(), onVisit: func(string, int) {}}
}

// WithContext sets a cancellation context; BFS checks it once per node
// processed. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked as each node is dequeued,
// primarily used by layouts to drive a progress.Monitor.
func WithOnVisit(fn func(id string, depth int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// BFS runs breadth-first search over net from start, expanding neighbors in
// lexicographic ascending order. Returns ErrNetworkNil, ErrStartNodeNotFound,
// or a context cancellation error.
func BFS(net *core.Network, start string, opts ...Option) (*Result, error) {
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

	queue := []string{id}
	visited := map[string]bool{id: true}

	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		depth := res.Depth[cur]
		res.Order = append(res.Order, cur)
		o.onVisit(cur, depth)

		nbrs, err := net.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			res.Depth[nb] = depth + 1
			res.Parent[nb] = cur
			queue = append(queue, nb)
		}
	}

	return res, nil
}

// BFSOrdered runs BFS but expands the unvisited neighbors of each dequeued
// node in the order produced by rank (rather than lexicographic), then
// breaks ties within equal rank by node ID ascending. This is the traversal
// shape spec.md §4.4.1 requires for the default node layout: "enqueue
// unvisited neighbours sorted by degree descending, then id ascending."
//
// rank must be a total preorder: lower rank sorts first.
func BFSOrdered(net *core.Network, start string, rank func(id string) int, opts ...Option) (*Result, error) {
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

	queue := []string{id}
	visited := map[string]bool{id: true}

	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		depth := res.Depth[cur]
		res.Order = append(res.Order, cur)
		o.onVisit(cur, depth)

		nbrs, err := net.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		fresh := make([]string, 0, len(nbrs))
		for _, nb := range nbrs {
			if !visited[nb] {
				fresh = append(fresh, nb)
			}
		}
		sortByRank(fresh, rank)
		for _, nb := range fresh {
			visited[nb] = true
			res.Depth[nb] = depth + 1
			res.Parent[nb] = cur
			queue = append(queue, nb)
		}
	}

	return res, nil
}

// sortByRank sorts ids by rank(id) ascending, then id ascending on ties.
func sortByRank(ids []string, rank func(id string) int) {
	for i := 1; i < len(ids); i++ {
		j := i
		for j > 0 && less(ids[j], ids[j-1], rank) {
			ids[j], ids[j-1] = ids[j-1], ids[j]
			j--
		}
	}
}

func less(a, b string, rank func(string) int) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}

	return a < b
}
