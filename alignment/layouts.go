package alignment

import (
	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/layout"
	"github.com/gobiofabric/biofabric/progress"
)

// LinkGroupOrder is the fixed permutation of the seven edge types used as
// the alignment link-group order for Group and Cycle layouts (spec.md
// §4.10), expressed as relation-tag suffixes so it plugs directly into
// layout.Params.LinkGroups / layout.Params.GroupIndexFn.
var LinkGroupOrder = []string{
	Covered.String(),
	InducedGraph1.String(),
	HalfOrphanGraph1.String(),
	FullOrphanGraph1.String(),
	InducedGraph2.String(),
	HalfUnalignedGraph2.String(),
	FullUnalignedGraph2.String(),
}

// edgeTypeGroupIndexFn ranks an edge by its EdgeType's position in
// AllEdgeTypes, for use as layout.Params.GroupIndexFn.
func edgeTypeGroupIndexFn(m *Merged) layout.EdgeGroupFunc {
	idx := m.EdgeTypeIndex()

	return func(source, target, relation string, isShadow bool) int {
		if t, ok := idx[edgeTypeKey(source, target, relation, isShadow)]; ok {
			return int(t)
		}

		return edgeTypeCount
	}
}

// GroupNodeLayout implements spec.md §4.10's Group mode: groups in
// canonical order, each internally ordered by degree-seeded BFS restricted
// to that group's induced sub-network.
func GroupNodeLayout(m *Merged, mon progress.Monitor) ([]string, layout.AnnotationSet, error) {
	if m == nil || m.Network == nil {
		return nil, nil, ErrNetworkNil
	}
	if mon == nil {
		mon = progress.NoOp{}
	}
	edgeTypeIdx := m.EdgeTypeIndex()

	members := make([][]string, len(CanonicalGroups))
	for _, id := range m.Network.NodeOrder() {
		gi := GroupTagIndex(m, edgeTypeIdx, id)
		members[gi] = append(members[gi], id)
	}
	mon.SetTotal(m.Network.NodeCount())

	var order []string
	var annotations layout.AnnotationSet
	row := 0
	for gi, ids := range members {
		if len(ids) == 0 {
			continue
		}
		sub := m.Network.ExtractSubnetwork(ids)
		subOrder, _, err := layout.LayoutNodes(sub, layout.KindDefault, layout.Params{Monitor: mon})
		if err != nil {
			return nil, nil, err
		}
		order = append(order, subOrder...)
		annotations = append(annotations, layout.Annotation{
			Name:  CanonicalGroups[gi].Name,
			Start: row,
			End:   row + len(subOrder) - 1,
		})
		row += len(subOrder)
		mon.Update(row)
	}

	return order, annotations, nil
}

// GroupEdgeParams builds the layout.Params for the Group layout's edge
// pass: per-node mode with the alignment link-group order.
func GroupEdgeParams(m *Merged) layout.Params {
	return layout.Params{
		Mode:         layout.PerNode,
		LinkGroups:   LinkGroupOrder,
		GroupIndexFn: edgeTypeGroupIndexFn(m),
	}
}

// CycleEdgeParams builds the layout.Params for the Cycle layout's edge
// pass: per-network mode (spec.md §4.10 names no explicit mode for Cycle,
// unlike Group's explicit "per-node") with the same alignment link-group
// order as Group.
func CycleEdgeParams(m *Merged) layout.Params {
	return layout.Params{
		LinkGroups:   LinkGroupOrder,
		GroupIndexFn: edgeTypeGroupIndexFn(m),
	}
}

// OrphanFilter builds the sub-network of m restricted to edges incident to
// at least one unaligned (Blue or Red) endpoint, retaining context nodes
// (spec.md §4.10's Orphan mode).
func OrphanFilter(m *Merged) *core.Network {
	keep := make(map[string]bool)
	for _, e := range m.Network.Edges() {
		if e.IsShadow {
			continue
		}
		if m.NodeColors[e.Source] != Purple || m.NodeColors[e.Target] != Purple {
			keep[e.Source] = true
			keep[e.Target] = true
		}
	}
	ids := make([]string, 0, len(keep))
	for id := range keep {
		ids = append(ids, id) // order is irrelevant: ExtractSubnetwork re-derives it from its own node order
	}

	return m.Network.ExtractSubnetwork(ids)
}

// OrphanNodeLayout implements spec.md §4.10's Orphan mode: default
// degree-seeded BFS over the filtered network.
func OrphanNodeLayout(m *Merged) ([]string, error) {
	filtered := OrphanFilter(m)

	order, _, err := layout.LayoutNodes(filtered, layout.KindDefault, layout.Params{})

	return order, err
}

// CycleNodeLayout implements spec.md §4.10's Cycle mode: nodes of each
// detected cycle/path appear contiguously in canonical case order, in walk
// order within each structure. Merged-node ids not touched by any cycle
// entry (because they have no alignment-map presence at all, e.g. a Red
// node with no perfect reference) are appended afterward in network order,
// so the row set always covers the whole merged network.
func CycleNodeLayout(m *Merged, entries []CycleEntry) ([]string, layout.AnnotationSet) {
	byCase := make([][]CycleEntry, cycleCaseCount)
	for _, e := range entries {
		byCase[e.Case] = append(byCase[e.Case], e)
	}

	byOriginal := make(map[string]string, len(m.NodeOrigins)*2)
	for mergedID, origin := range m.NodeOrigins {
		if origin.G1 != "" {
			byOriginal[origin.G1] = mergedID
		}
		if origin.G2 != "" {
			byOriginal[origin.G2] = mergedID
		}
	}

	var order []string
	var annotations layout.AnnotationSet
	placed := make(map[string]bool)
	row := 0

	for c := 0; c < cycleCaseCount; c++ {
		for _, entry := range byCase[c] {
			ids := mergedIDsForCycleEntry(byOriginal, entry)
			if len(ids) == 0 {
				continue
			}
			start := row
			for _, id := range ids {
				if placed[id] {
					continue
				}
				placed[id] = true
				order = append(order, id)
				row++
			}
			if row > start {
				annotations = append(annotations, layout.Annotation{
					Name:  CycleCase(c).String(),
					Start: start,
					End:   row - 1,
				})
			}
		}
	}

	for _, id := range m.Network.NodeOrder() {
		if !placed[id] {
			placed[id] = true
			order = append(order, id)
			row++
		}
	}

	return order, annotations
}

// mergedIDsForCycleEntry translates a cycle entry's raw G1/G2 ids (from
// ClassifyCycles, which walks the original networks) into merged-network
// node ids, deduplicating consecutive repeats (a cycle's walk repeats its
// start id as its last element).
func mergedIDsForCycleEntry(byOriginal map[string]string, entry CycleEntry) []string {
	var out []string
	for _, rawID := range entry.Nodes {
		mergedID, ok := byOriginal[rawID]
		if !ok {
			continue
		}
		if len(out) == 0 || out[len(out)-1] != mergedID {
			out = append(out, mergedID)
		}
	}

	return out
}
