package session

import (
	"sort"

	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/layout"
)

// ExtractSubmodel implements spec.md §4.11's `extract_submodel`: restrict
// s.Network and s.Layout to nodeSet, remap row indices to a dense
// 0..k-1 range preserving row order, remap shadow-on and shadow-off
// columns independently (also preserving order), and recompute drain
// zones on the compressed layout. Returns a new Session; s is untouched.
//
// If s has no attached layout, the result session also has none — only
// the Network is restricted.
func ExtractSubmodel(s *Session, nodeSet []string) (*Session, error) {
	if s == nil || s.Network == nil {
		return nil, ErrNetworkNil
	}
	if len(nodeSet) == 0 {
		return nil, ErrEmptyNodeSet
	}

	sub := s.Network.ExtractSubnetwork(nodeSet)

	out, err := FromNetwork(sub)
	if err != nil {
		return nil, err
	}
	out.Display = s.Display

	if s.Layout == nil {
		return out, nil
	}

	kept := make(map[string]bool, sub.NodeCount())
	for _, id := range sub.NodeOrder() {
		kept[id] = true
	}
	for _, id := range sub.LoneNodes() {
		kept[id] = true
	}

	rowOrder := make([]string, 0, len(kept))
	for _, id := range s.Layout.RowOrder {
		if kept[id] {
			rowOrder = append(rowOrder, id)
		}
	}

	origByKey := make(map[linkKey]*layout.LinkLayout, len(s.Layout.Links))
	for _, ll := range s.Layout.Links {
		origByKey[linkKey{ll.Source, ll.Target, ll.Relation, ll.IsShadow}] = ll
	}

	type survivor struct {
		edge       *core.Edge
		origColumn int
	}
	var survivors []survivor
	for _, e := range sub.Edges() {
		if orig, ok := origByKey[linkKey{e.Source, e.Target, e.Relation, e.IsShadow}]; ok {
			survivors = append(survivors, survivor{edge: e, origColumn: orig.Column})
		}
	}
	sort.SliceStable(survivors, func(i, j int) bool { return survivors[i].origColumn < survivors[j].origColumn })

	entries := make([]layout.FixedEdgeColumn, len(survivors))
	for i, sv := range survivors {
		entries[i] = layout.FixedEdgeColumn{
			Source:   sv.edge.Source,
			Target:   sv.edge.Target,
			Relation: sv.edge.Relation,
			IsShadow: sv.edge.IsShadow,
			Column:   i,
		}
	}

	nl, err := layout.FromFixedLinkOrder(rowOrder, entries)
	if err != nil {
		return nil, err
	}

	// Known source ambiguity (spec.md §9): the reference implementation
	// sets every node's max_col to the compressed layout's global maximum
	// column rather than its own rightmost edge. Preserved here as an
	// observable-behaviour contract, not a bug we get to fix.
	globalMax := nl.ColumnCount - 1
	for _, nd := range nl.Nodes {
		if !nd.ColSpan.Empty {
			nd.ColSpan.End = globalMax
		}
	}

	out.Layout = nl

	return out, nil
}

// linkKey identifies a LinkLayout/Edge by its structural identity, used
// to look up an extracted edge's original column assignment.
type linkKey struct {
	Source, Target, Relation string
	IsShadow                 bool
}
