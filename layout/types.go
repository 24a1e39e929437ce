package layout

// ColumnRange is a closed column interval [Start, End]. Empty marks an
// interval with no columns at all (a node with no edges of that shadow
// kind), distinct from the degenerate single-column [c, c].
type ColumnRange struct {
	Start, End int
	Empty      bool
}

// extend grows r to include column c, initializing it if it was Empty.
func (r ColumnRange) extend(c int) ColumnRange {
	if r.Empty {
		return ColumnRange{Start: c, End: c}
	}
	if c < r.Start {
		r.Start = c
	}
	if c > r.End {
		r.End = c
	}

	return r
}

// NodeLayout is one node's placement: its row, its shadow-on and
// shadow-off column spans, and the drain zones derived from them
// (spec.md §4.5).
type NodeLayout struct {
	Row int

	ColSpan         ColumnRange
	ColSpanNoShadow ColumnRange

	PlainDrainZone  ColumnRange
	ShadowDrainZone ColumnRange

	DisplayName string
}

// LinkLayout is one edge's placement: its shadow-on column, and (for
// primaries only) its shadow-off column.
type LinkLayout struct {
	Source, Target, Relation string
	Directed                 bool
	IsShadow                 bool

	SourceRow, TargetRow int

	Column            int
	ColumnNoShadow    int
	HasColumnNoShadow bool // false for shadow edges, which have no shadow-off column
}

// Annotation is a labeled contiguous run over either rows (node
// annotations) or columns (link annotations).
type Annotation struct {
	Name       string
	Start, End int
}

// AnnotationSet is an ordered list of Annotations, e.g. one per cluster,
// per DAG level, or per link group.
type AnnotationSet []Annotation

// NetworkLayout is the complete output of a node layout followed by an
// edge layout: row order, per-node spans and drain zones, per-link
// columns, and link-group annotations in both shadow modes.
type NetworkLayout struct {
	RowOrder []string
	Nodes    map[string]*NodeLayout
	Links    []*LinkLayout

	RowCount             int
	ColumnCount          int
	ColumnCountNoShadows int

	NodeAnnotations          AnnotationSet
	LinkAnnotations          AnnotationSet
	LinkAnnotationsNoShadows AnnotationSet
}

// newNetworkLayout allocates an empty NetworkLayout for rowOrder.
func newNetworkLayout(rowOrder []string) *NetworkLayout {
	nl := &NetworkLayout{
		RowOrder: rowOrder,
		Nodes:    make(map[string]*NodeLayout, len(rowOrder)),
		RowCount: len(rowOrder),
	}
	for row, id := range rowOrder {
		nl.Nodes[id] = &NodeLayout{
			Row:             row,
			ColSpan:         ColumnRange{Empty: true},
			ColSpanNoShadow: ColumnRange{Empty: true},
			PlainDrainZone:  ColumnRange{Empty: true},
			ShadowDrainZone: ColumnRange{Empty: true},
		}
	}

	return nl
}
