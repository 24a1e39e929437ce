package layout

import "sort"

// FixedEdgeColumn is one parsed EDA row: an edge identity plus its
// already-assigned shadow-on column. FromFixedLinkOrder uses these to
// reconstruct a NetworkLayout without re-deriving the column assignment,
// which is what the EDA round-trip law in spec.md §8.2 requires.
type FixedEdgeColumn struct {
	Source, Target, Relation string
	IsShadow                 bool
	Column                   int
}

// FromFixedLinkOrder rebuilds a NetworkLayout from a row order (as parsed
// from NOA) and a fixed shadow-on column assignment (as parsed from EDA).
// Shadow-off columns are re-derived by re-numbering the non-shadow subset
// in shadow-on column order, which is consistent with how LayoutEdges
// always assigns them (sequentially, in emission order).
func FromFixedLinkOrder(rowOrder []string, entries []FixedEdgeColumn) (*NetworkLayout, error) {
	rows := make(map[string]int, len(rowOrder))
	for i, id := range rowOrder {
		rows[id] = i
	}
	for _, e := range entries {
		if _, ok := rows[e.Source]; !ok {
			return nil, ErrUnknownNode
		}
		if _, ok := rows[e.Target]; !ok {
			return nil, ErrUnknownNode
		}
	}

	ordered := append([]FixedEdgeColumn(nil), entries...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Column < ordered[j].Column })

	nl := newNetworkLayout(rowOrder)
	var links []*LinkLayout
	noShadowCol := 0
	for _, e := range ordered {
		ll := &LinkLayout{
			Source:    e.Source,
			Target:    e.Target,
			Relation:  e.Relation,
			IsShadow:  e.IsShadow,
			SourceRow: rows[e.Source],
			TargetRow: rows[e.Target],
			Column:    e.Column,
		}
		if !e.IsShadow {
			ll.ColumnNoShadow = noShadowCol
			ll.HasColumnNoShadow = true
			noShadowCol++
		}
		links = append(links, ll)
		extendSpan(nl.Nodes[e.Source], ll)
		if e.Target != e.Source {
			extendSpan(nl.Nodes[e.Target], ll)
		}
	}

	nl.Links = links
	nl.ColumnCount = len(ordered)
	nl.ColumnCountNoShadows = noShadowCol
	computeDrainZones(nl, links, len(ordered), noShadowCol)
	nl.LinkAnnotations, nl.LinkAnnotationsNoShadows = buildLinkGroupAnnotations(links, Params{})

	return nl, nil
}
