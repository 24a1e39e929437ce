package layout

import (
	"sort"

	"github.com/gobiofabric/biofabric/core"
)

// worldBankNodeLayout implements spec.md §4.4.6: hubs (sources of
// directed non-shadow edges) ordered by out-count descending then id
// ascending, followed by each hub's spokes ordered by in-count
// descending then id ascending; a spoke reachable from multiple hubs is
// listed once, under the first hub that reaches it.
func worldBankNodeLayout(net *core.Network) ([]string, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}

	outCount := make(map[string]int)
	inCount := make(map[string]int)
	hubSpokes := make(map[string]map[string]bool)
	isHub := make(map[string]bool)
	for _, e := range net.Edges() {
		if e.IsShadow || e.Directed != core.Directed {
			continue
		}
		outCount[e.Source]++
		inCount[e.Target]++
		isHub[e.Source] = true
		if hubSpokes[e.Source] == nil {
			hubSpokes[e.Source] = make(map[string]bool)
		}
		hubSpokes[e.Source][e.Target] = true
	}

	hubs := make([]string, 0, len(isHub))
	for h := range isHub {
		hubs = append(hubs, h)
	}
	sort.Slice(hubs, func(i, j int) bool {
		if outCount[hubs[i]] != outCount[hubs[j]] {
			return outCount[hubs[i]] > outCount[hubs[j]]
		}

		return hubs[i] < hubs[j]
	})

	var order []string
	placed := make(map[string]bool, net.NodeCount())
	for _, h := range hubs {
		if !placed[h] {
			placed[h] = true
			order = append(order, h)
		}
		spokes := make([]string, 0, len(hubSpokes[h]))
		for s := range hubSpokes[h] {
			spokes = append(spokes, s)
		}
		sort.Slice(spokes, func(i, j int) bool {
			if inCount[spokes[i]] != inCount[spokes[j]] {
				return inCount[spokes[i]] > inCount[spokes[j]]
			}

			return spokes[i] < spokes[j]
		})
		for _, s := range spokes {
			if !placed[s] {
				placed[s] = true
				order = append(order, s)
			}
		}
	}

	var rest []string
	for _, id := range net.NodeOrder() {
		if !placed[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	order = append(order, rest...)

	return order, nil
}
