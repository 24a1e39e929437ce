package layout

import (
	"sort"

	"github.com/gobiofabric/biofabric/bfs"
	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/progress"
)

// ClusterGroupIndex builds an EdgeGroupFunc that puts intra-cluster edges
// ahead of inter-cluster edges in the column comparator, for
// InterClusterBetween placement (spec.md §4.4.3): callers set it as
// Params.GroupIndexFn on the edge-layout pass that follows a Cluster node
// layout. InterClusterInline needs no override — the edge layout's
// ordinary comparator already interleaves them.
func ClusterGroupIndex(cfg ClusterConfig) EdgeGroupFunc {
	return func(source, target, _ string, _ bool) int {
		if cfg.Assignment[source] == cfg.Assignment[target] {
			return 0
		}

		return 1
	}
}

// clusterNodeLayout implements spec.md §4.4.3: order cluster blocks by
// ClusterConfig.Order, lay each cluster out internally with the default
// degree-seeded BFS restricted to its induced sub-network, and concatenate.
func clusterNodeLayout(net *core.Network, params Params) ([]string, AnnotationSet, error) {
	if net == nil {
		return nil, nil, ErrNetworkNil
	}
	cfg := params.Cluster
	if cfg.Assignment == nil {
		return nil, nil, ErrMissingClusterAssignment
	}
	reporter := progress.NewLoopReporter(params.monitor(), "", net.NodeCount(), 0)

	members := make(map[string][]string)
	for _, id := range net.NodeOrder() {
		tag, ok := cfg.Assignment[id]
		if !ok {
			return nil, nil, ErrMissingClusterAssignment
		}
		members[tag] = append(members[tag], id)
	}

	tags := orderClusters(net, cfg, members)

	var order []string
	var annotations AnnotationSet
	row := 0
	for _, tag := range tags {
		ids := members[tag]
		sub := net.ExtractSubnetwork(ids)
		subOrder, err := defaultNodeLayout(sub, Params{Monitor: params.monitor()})
		if err != nil {
			return nil, nil, err
		}
		order = append(order, subOrder...)
		annotations = append(annotations, Annotation{
			Name:  tag,
			Start: row,
			End:   row + len(subOrder) - 1,
		})
		row += len(subOrder)
		if err := reporter.Tick(row); err != nil {
			return nil, nil, err
		}
	}

	if err := reporter.Finish(); err != nil {
		return nil, nil, err
	}

	return order, annotations, nil
}

// orderClusters resolves ClusterConfig.Order into a concrete tag sequence.
func orderClusters(net *core.Network, cfg ClusterConfig, members map[string][]string) []string {
	tags := make([]string, 0, len(members))
	for t := range members {
		tags = append(tags, t)
	}
	sort.Strings(tags) // baseline deterministic order before re-sorting below

	switch cfg.Order {
	case ClusterName:
		return tags

	case ClusterNodeSize:
		sort.SliceStable(tags, func(i, j int) bool {
			if len(members[tags[i]]) != len(members[tags[j]]) {
				return len(members[tags[i]]) > len(members[tags[j]])
			}

			return tags[i] < tags[j]
		})
		return tags

	case ClusterLinkSize:
		intraCount := make(map[string]int, len(tags))
		for _, e := range net.Edges() {
			if e.IsShadow {
				continue
			}
			ts, ok1 := cfg.Assignment[e.Source]
			tt, ok2 := cfg.Assignment[e.Target]
			if ok1 && ok2 && ts == tt {
				intraCount[ts]++
			}
		}
		sort.SliceStable(tags, func(i, j int) bool {
			if intraCount[tags[i]] != intraCount[tags[j]] {
				return intraCount[tags[i]] > intraCount[tags[j]]
			}

			return tags[i] < tags[j]
		})
		return tags

	case ClusterBreadthFirst:
		return breadthFirstClusterOrder(net, cfg, members, tags)
	}

	return tags
}

// breadthFirstClusterOrder runs BFS over the cluster-adjacency graph
// (clusters connected if any inter-cluster edge joins them), seeded from
// the largest cluster, ties broken lexicographically.
func breadthFirstClusterOrder(net *core.Network, cfg ClusterConfig, members map[string][]string, tags []string) []string {
	adjNet := core.NewNetwork()
	for _, t := range tags {
		adjNet.AddLoneNode(t)
	}
	seen := make(map[[2]string]bool)
	for _, e := range net.Edges() {
		if e.IsShadow {
			continue
		}
		ts, ok1 := cfg.Assignment[e.Source]
		tt, ok2 := cfg.Assignment[e.Target]
		if !ok1 || !ok2 || ts == tt {
			continue
		}
		key := [2]string{ts, tt}
		if ts > tt {
			key = [2]string{tt, ts}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		_, _ = adjNet.AddLink(ts, tt, "adj", core.Undirected, false)
	}

	largest := tags[0]
	for _, t := range tags {
		if len(members[t]) > len(members[largest]) || (len(members[t]) == len(members[largest]) && t < largest) {
			largest = t
		}
	}

	var order []string
	visited := make(map[string]bool)
	candidates := append([]string(nil), tags...)
	seed := largest
	for {
		var next string
		var ok bool
		if seed != "" && !visited[seed] {
			next, ok = seed, true
			seed = ""
		} else {
			next, ok = highestDegreeUnvisited(adjNet, candidates, visited)
		}
		if !ok {
			break
		}
		res, err := bfs.BFS(adjNet, next)
		if err != nil {
			break
		}
		for _, id := range res.Order {
			if !visited[id] {
				visited[id] = true
				order = append(order, id)
			}
		}
	}

	return order
}
