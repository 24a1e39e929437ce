package layout

import (
	"sort"

	"github.com/gobiofabric/biofabric/bfs"
	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/dfs"
)

// controlTopNodeLayout implements spec.md §4.4.4: identify or accept a
// control set, order it per ControlOrderMode, then order the remaining
// nodes per TargetOrderMode.
func controlTopNodeLayout(net *core.Network, params Params) ([]string, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}
	cfg := params.Control
	mon := params.monitor()
	mon.SetTotal(net.NodeCount())

	controls := identifyControls(net, cfg)
	if len(controls) == 0 {
		return nil, ErrEmptyControlSet
	}
	controlSet := make(map[string]bool, len(controls))
	for _, c := range controls {
		controlSet[c] = true
	}

	orderedControls, err := orderControls(net, cfg, controls)
	if err != nil {
		return nil, err
	}

	var nonControls []string
	for _, id := range net.NodeOrder() {
		if !controlSet[id] {
			nonControls = append(nonControls, id)
		}
	}

	orderedTargets := orderTargets(net, cfg, orderedControls, nonControls)

	out := append([]string(nil), orderedControls...)
	out = append(out, orderedTargets...)
	mon.Update(len(out))

	return out, nil
}

// identifyControls returns Explicit if supplied, otherwise the set of
// sources of directed edges (expanded to shadow sources too when
// IncludeShadowSources is set).
func identifyControls(net *core.Network, cfg ControlConfig) []string {
	if len(cfg.Explicit) > 0 {
		out := make([]string, len(cfg.Explicit))
		for i, id := range cfg.Explicit {
			out[i] = core.NormalizeID(id)
		}
		return out
	}

	set := make(map[string]bool)
	for _, e := range net.Edges() {
		if e.Directed != core.Directed {
			continue
		}
		if e.IsShadow && !cfg.IncludeShadowSources {
			continue
		}
		set[e.Source] = true
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

func orderControls(net *core.Network, cfg ControlConfig, controls []string) ([]string, error) {
	out := append([]string(nil), controls...)

	switch cfg.ControlOrderMode {
	case ControlFixedList:
		return append([]string(nil), cfg.FixedOrder...), nil

	case ControlDegreeOnly:
		out := append([]string(nil), controls...)
		degree := make(map[string]int, len(out))
		for _, id := range out {
			d, err := net.DegreeNonShadow(id)
			if err != nil {
				return nil, err
			}
			degree[id] = d
		}
		// Degree descending, id descending on ties, per spec.md §4.4.4's
		// explicit restatement of 4.4.1's ordering for this mode.
		sort.Slice(out, func(i, j int) bool {
			if degree[out[i]] != degree[out[j]] {
				return degree[out[i]] > degree[out[j]]
			}
			return out[i] > out[j]
		})
		return out, nil

	case ControlIntraDegree:
		sub := net.ExtractSubnetwork(controls)
		degree := make(map[string]int, len(controls))
		for _, id := range controls {
			d, err := sub.DegreeNonShadow(id)
			if err != nil {
				return nil, err
			}
			degree[id] = d
		}
		sort.Slice(out, func(i, j int) bool {
			if degree[out[i]] != degree[out[j]] {
				return degree[out[i]] < degree[out[j]]
			}
			return out[i] < out[j]
		})
		// reverse: yields degree descending, id descending within a degree
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return out, nil

	case ControlMedianTargetDegree:
		median := make(map[string]float64, len(controls))
		for _, c := range controls {
			var degrees []int
			for _, e := range net.Edges() {
				if e.IsShadow || e.Directed != core.Directed || e.Source != c {
					continue
				}
				d, err := net.DegreeNonShadow(e.Target)
				if err != nil {
					return nil, err
				}
				degrees = append(degrees, d)
			}
			median[c] = medianOf(degrees)
		}
		sort.Slice(out, func(i, j int) bool {
			if median[out[i]] != median[out[j]] {
				return median[out[i]] > median[out[j]]
			}
			return out[i] < out[j]
		})
		return out, nil

	default: // ControlPartialOrder
		sub := net.ExtractSubnetwork(controls)
		levels, err := dfs.DagLevels(sub)
		if err != nil {
			return nil, err
		}
		// levels is nil on a cycle in the control sub-graph: fall back to
		// degree/id tie-break only.
		topo := append([]string(nil), controls...)
		degree := make(map[string]int, len(controls))
		for _, id := range controls {
			d, err := net.DegreeNonShadow(id)
			if err != nil {
				return nil, err
			}
			degree[id] = d
		}
		sort.SliceStable(topo, func(i, j int) bool {
			if levels != nil && levels[topo[i]] != levels[topo[j]] {
				return levels[topo[i]] < levels[topo[j]]
			}
			if degree[topo[i]] != degree[topo[j]] {
				return degree[topo[i]] > degree[topo[j]]
			}
			return topo[i] < topo[j]
		})
		return topo, nil
	}
}

func medianOf(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}

	return float64(sorted[mid-1]+sorted[mid]) / 2
}

func orderTargets(net *core.Network, cfg ControlConfig, orderedControls, nonControls []string) []string {
	switch cfg.TargetOrderMode {
	case TargetDegreeOrder:
		out := append([]string(nil), nonControls...)
		degree := make(map[string]int, len(out))
		for _, id := range out {
			d, _ := net.DegreeNonShadow(id)
			degree[id] = d
		}
		sort.Slice(out, func(i, j int) bool {
			if degree[out[i]] != degree[out[j]] {
				return degree[out[i]] > degree[out[j]]
			}
			return out[i] < out[j]
		})
		return out

	case TargetGrayCode, TargetDegreeOdometer:
		return radixByTargetDegree(net, nonControls, orderedControls)

	default: // TargetBreadthOrder
		return breadthOrderFromControls(net, orderedControls, nonControls)
	}
}

// breadthOrderFromControls visits non-controls in BFS visit order seeded
// sequentially from each control in orderedControls.
func breadthOrderFromControls(net *core.Network, orderedControls, nonControls []string) []string {
	nonControlSet := make(map[string]bool, len(nonControls))
	for _, id := range nonControls {
		nonControlSet[id] = true
	}
	visited := make(map[string]bool)
	var out []string
	rank := degreeRank(net)
	for _, c := range orderedControls {
		if !net.ContainsNode(c) {
			continue
		}
		res, err := bfs.BFSOrdered(net, c, rank)
		if err != nil {
			continue
		}
		for _, id := range res.Order {
			if nonControlSet[id] && !visited[id] {
				visited[id] = true
				out = append(out, id)
			}
		}
	}
	for _, id := range nonControls {
		if !visited[id] {
			visited[id] = true
			out = append(out, id)
		}
	}

	return out
}

// radixByTargetDegree implements the odometer-style modes: bucket
// non-controls by the (descending) degree of each control they connect to,
// in control order, breaking ties by id ascending. This realizes the
// "successive target-degree buckets" contract for both GrayCode and
// DegreeOdometer (spec.md §4.4.4), which the spec describes identically.
func radixByTargetDegree(net *core.Network, nonControls, orderedControls []string) []string {
	controlIndex := make(map[string]int, len(orderedControls))
	for i, c := range orderedControls {
		controlIndex[c] = i
	}

	type key struct {
		bucket int
		degree int
	}
	keyOf := make(map[string]key, len(nonControls))
	for _, id := range nonControls {
		bestBucket := len(orderedControls)
		bestDegree := -1
		links, _ := net.LinksForNode(id)
		for _, e := range links {
			if e.IsShadow {
				continue
			}
			other := e.Target
			if other == id {
				other = e.Source
			}
			if idx, ok := controlIndex[other]; ok && idx < bestBucket {
				bestBucket = idx
				d, _ := net.DegreeNonShadow(other)
				bestDegree = d
			}
		}
		keyOf[id] = key{bucket: bestBucket, degree: bestDegree}
	}

	out := append([]string(nil), nonControls...)
	sort.Slice(out, func(i, j int) bool {
		ki, kj := keyOf[out[i]], keyOf[out[j]]
		if ki.bucket != kj.bucket {
			return ki.bucket < kj.bucket
		}
		if ki.degree != kj.degree {
			return ki.degree > kj.degree
		}
		return out[i] < out[j]
	})

	return out
}
