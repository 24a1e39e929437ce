package layout

import (
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/progress"
)

// LayoutEdges implements spec.md §4.5: assign every edge a shadow-on
// column and (for primaries) a shadow-off column, by iterating a
// comparator-sorted edge sequence and handing out the smallest unused
// column of each kind as each edge is emitted. Node spans and drain zones
// are derived as a byproduct of emission order.
//
// rowOrder is a node layout's output (a permutation of net's node ids);
// LayoutEdges does not compute it.
func LayoutEdges(net *core.Network, rowOrder []string, params Params) (*NetworkLayout, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}

	rows := make(map[string]int, len(rowOrder))
	for i, id := range rowOrder {
		rows[id] = i
	}

	var edges []*core.Edge
	for _, e := range net.Edges() {
		if params.NoShadows && e.IsShadow {
			continue
		}
		edges = append(edges, e)
	}
	for _, e := range edges {
		if _, ok := rows[e.Source]; !ok {
			return nil, ErrMissingRow
		}
		if _, ok := rows[e.Target]; !ok {
			return nil, ErrMissingRow
		}
	}
	reporter := progress.NewLoopReporter(params.monitor(), "", len(edges), 0)

	adjacency := make(map[string][]*core.Edge, len(rowOrder))
	for _, e := range edges {
		adjacency[e.Source] = append(adjacency[e.Source], e)
		if e.Target != e.Source {
			adjacency[e.Target] = append(adjacency[e.Target], e)
		}
	}

	nl := newNetworkLayout(rowOrder)

	emitted := make(map[*core.Edge]bool, len(edges))
	var links []*LinkLayout
	shadowCol, noShadowCol := 0, 0

	emit := func(e *core.Edge) error {
		ll := &LinkLayout{
			Source:    e.Source,
			Target:    e.Target,
			Relation:  e.Relation,
			Directed:  e.Directed == core.Directed,
			IsShadow:  e.IsShadow,
			SourceRow: rows[e.Source],
			TargetRow: rows[e.Target],
			Column:    shadowCol,
		}
		shadowCol++
		if !e.IsShadow {
			ll.ColumnNoShadow = noShadowCol
			ll.HasColumnNoShadow = true
			noShadowCol++
		}
		links = append(links, ll)
		emitted[e] = true

		extendSpan(nl.Nodes[e.Source], ll)
		if e.Target != e.Source {
			extendSpan(nl.Nodes[e.Target], ll)
		}

		return reporter.Tick(len(links))
	}

	if params.Mode == PerNode {
		for _, anchor := range rowOrder {
			anchorRow := rows[anchor]
			var pending []*core.Edge
			for _, e := range adjacency[anchor] {
				if !emitted[e] {
					pending = append(pending, e)
				}
			}
			sortEdgesForAnchor(pending, rows, params, anchorRow)
			for _, e := range pending {
				if err := emit(e); err != nil {
					return nil, err
				}
			}
		}
	} else {
		all := append([]*core.Edge(nil), edges...)
		sortEdgesForAnchor(all, rows, params, 0)
		for _, e := range all {
			if err := emit(e); err != nil {
				return nil, err
			}
		}
	}

	if err := reporter.Finish(); err != nil {
		return nil, err
	}

	nl.Links = links
	nl.ColumnCount = shadowCol
	nl.ColumnCountNoShadows = noShadowCol

	computeDrainZones(nl, links, shadowCol, noShadowCol)

	nl.LinkAnnotations, nl.LinkAnnotationsNoShadows = buildLinkGroupAnnotations(links, params)

	return nl, nil
}

func extendSpan(nd *NodeLayout, ll *LinkLayout) {
	nd.ColSpan = nd.ColSpan.extend(ll.Column)
	if ll.HasColumnNoShadow {
		nd.ColSpanNoShadow = nd.ColSpanNoShadow.extend(ll.ColumnNoShadow)
	}
}

// sortEdgesForAnchor orders list per spec.md §4.5's comparator: group
// ordinal, then (in per-node mode) the anchor's row — constant within one
// anchor's batch, included for parity with the per-network comparator —
// then vertical span ascending, top row ascending, then id/relation/
// shadow tie-breaks.
func sortEdgesForAnchor(list []*core.Edge, rows map[string]int, params Params, anchorRow int) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]

		ga, gb := groupIndexForEdge(a, params), groupIndexForEdge(b, params)
		if ga != gb {
			return ga < gb
		}

		sa := abs(rows[a.Source] - rows[a.Target])
		sb := abs(rows[b.Source] - rows[b.Target])
		if sa != sb {
			return sa < sb
		}

		ta := min(rows[a.Source], rows[a.Target])
		tb := min(rows[b.Source], rows[b.Target])
		if ta != tb {
			return ta < tb
		}

		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Target != b.Target {
			return a.Target < b.Target
		}
		if a.Relation != b.Relation {
			return a.Relation < b.Relation
		}

		return !a.IsShadow && b.IsShadow
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// groupIndexForEdge computes the link-group ordinal for e: the index of
// the longest-matching configured group suffix, or len(groups) if none
// match. GroupIndexFn, when set on Params, overrides this entirely.
func groupIndexForEdge(e *core.Edge, params Params) int {
	if params.GroupIndexFn != nil {
		return params.GroupIndexFn(e.Source, e.Target, e.Relation, e.IsShadow)
	}

	return groupIndex(e.Relation, params.LinkGroups)
}

func groupIndex(relation string, groups []string) int {
	if len(groups) == 0 {
		return 0
	}
	best, bestLen := -1, -1
	for i, g := range groups {
		if strings.HasSuffix(relation, g) && len(g) > bestLen {
			bestLen = len(g)
			best = i
		}
	}
	if best == -1 {
		return len(groups)
	}

	return best
}

// computeDrainZones derives each node's plain and shadow drain zones from
// the final column assignment (spec.md §4.5). Both spaces are dense
// bijections (invariants 4 and 5), so the "column gap" stop condition in
// the prose can never fire; only the incidence and top/bottom conditions
// are reachable in practice.
//
// Each node's zones are a pure function of its own NodeLayout plus the two
// read-only column-to-link arrays, so the per-node passes are farmed out
// to an errgroup: determinism survives because no goroutine reads or
// writes another node's fields (spec.md §5's "determinism of the final
// output is preserved" condition for internal parallelism).
func computeDrainZones(nl *NetworkLayout, links []*LinkLayout, shadowCol, noShadowCol int) {
	shadowOnByCol := make([]*LinkLayout, shadowCol)
	noShadowByCol := make([]*LinkLayout, noShadowCol)
	for _, ll := range links {
		shadowOnByCol[ll.Column] = ll
		if ll.HasColumnNoShadow {
			noShadowByCol[ll.ColumnNoShadow] = ll
		}
	}

	ids := make([]string, 0, len(nl.Nodes))
	for id := range nl.Nodes {
		ids = append(ids, id)
	}

	var g errgroup.Group
	for _, id := range ids {
		id, nd := id, nl.Nodes[id]
		g.Go(func() error {
			computeNodeDrainZones(nd, id, noShadowByCol, shadowOnByCol)
			return nil
		})
	}
	_ = g.Wait() // the per-node workers never return an error
}

func computeNodeDrainZones(nd *NodeLayout, id string, noShadowByCol, shadowOnByCol []*LinkLayout) {
	if !nd.ColSpanNoShadow.Empty {
		rightmost := nd.ColSpanNoShadow.End
		count := 0
		for col := rightmost; col >= 0; col-- {
			ll := noShadowByCol[col]
			if ll == nil || (ll.Source != id && ll.Target != id) {
				break
			}
			if nodeIsBottom(ll, id, nd.Row) {
				break
			}
			count++
		}
		if count > 0 {
			nd.PlainDrainZone = ColumnRange{Start: rightmost - count + 1, End: rightmost}
		}
	}

	if !nd.ColSpan.Empty {
		leftmost := nd.ColSpan.Start
		count := 0
		for col := leftmost; col <= nd.ColSpan.End; col++ {
			ll := shadowOnByCol[col]
			if ll == nil || (ll.Source != id && ll.Target != id) {
				break
			}
			if !shadowDrainContributes(ll, id, nd.Row) {
				break
			}
			count++
		}
		if count > 0 {
			nd.ShadowDrainZone = ColumnRange{Start: leftmost, End: leftmost + count - 1}
		}
	}
}

// nodeIsBottom reports whether id is the higher-row (bottom) endpoint of
// ll. Self-loops never count as a bottom endpoint.
func nodeIsBottom(ll *LinkLayout, id string, row int) bool {
	if ll.Source == id && ll.Target == id {
		return false
	}
	other := ll.TargetRow
	if ll.Target == id {
		other = ll.SourceRow
	}

	return row > other
}

// shadowDrainContributes reports whether ll contributes a shadow-drain
// column for id: a non-shadow edge where id is the top endpoint, or a
// shadow edge where id is the bottom endpoint.
func shadowDrainContributes(ll *LinkLayout, id string, row int) bool {
	if ll.Source == id && ll.Target == id {
		return false
	}
	other := ll.TargetRow
	if ll.Target == id {
		other = ll.SourceRow
	}
	if !ll.IsShadow {
		return row < other
	}

	return row > other
}

// buildLinkGroupAnnotations computes contiguous same-group column runs
// twice: once over the shadow-on column sequence, once over the
// shadow-off sequence restricted to non-shadow edges (spec.md §4.5).
func buildLinkGroupAnnotations(links []*LinkLayout, params Params) (AnnotationSet, AnnotationSet) {
	withShadow := groupRuns(links, params, true)

	var nonShadow []*LinkLayout
	for _, ll := range links {
		if !ll.IsShadow {
			nonShadow = append(nonShadow, ll)
		}
	}
	withoutShadow := groupRuns(nonShadow, params, false)

	return withShadow, withoutShadow
}

func groupRuns(ordered []*LinkLayout, params Params, useShadowColumn bool) AnnotationSet {
	if len(ordered) == 0 {
		return nil
	}
	colOf := func(ll *LinkLayout) int {
		if useShadowColumn {
			return ll.Column
		}

		return ll.ColumnNoShadow
	}
	groupOf := func(ll *LinkLayout) int {
		if params.GroupIndexFn != nil {
			return params.GroupIndexFn(ll.Source, ll.Target, ll.Relation, ll.IsShadow)
		}

		return groupIndex(ll.Relation, params.LinkGroups)
	}

	var out AnnotationSet
	curGroup := groupOf(ordered[0])
	start, prev := colOf(ordered[0]), colOf(ordered[0])
	for _, ll := range ordered[1:] {
		g, c := groupOf(ll), colOf(ll)
		if g == curGroup && c == prev+1 {
			prev = c
			continue
		}
		out = append(out, Annotation{Name: groupName(curGroup, params.LinkGroups), Start: start, End: prev})
		curGroup, start, prev = g, c, c
	}
	out = append(out, Annotation{Name: groupName(curGroup, params.LinkGroups), Start: start, End: prev})

	return out
}

func groupName(idx int, groups []string) string {
	if idx >= 0 && idx < len(groups) {
		return groups[idx]
	}

	return "other"
}
