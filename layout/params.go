package layout

import "github.com/gobiofabric/biofabric/progress"

// EdgeGroupFunc computes a link-group ordinal for one edge, lower sorting
// first in the column-assignment comparator (spec.md §4.5).
type EdgeGroupFunc func(source, target, relation string, isShadow bool) int

// Mode is the grouping mode edge layout uses when ordering a node's
// incident edges: per-node groups a node's own edges together before
// moving to the next anchor; per-network sorts the whole edge list once.
type Mode int

const (
	// PerNetwork sorts and emits all edges in one global pass. It is the
	// zero value, used by the default edge layout and by the alignment
	// Cycle and Orphan edge passes.
	PerNetwork Mode = iota
	// PerNode anchors the sort on the row of the edge's anchor node,
	// re-sorting per anchor as it is visited. The alignment Group
	// layout's edge pass uses this mode.
	PerNode
)

// Params configures both node and edge layout. Not every field applies to
// every NodeLayoutKind; see each kind's doc comment.
type Params struct {
	// StartNode seeds Default (and anything built on it) when non-empty.
	StartNode string

	// NoShadows, when true, restricts edge layout to non-shadow edges:
	// Column mirrors ColumnNoShadow, and the shadow drain zone is derived
	// from those same non-shadow columns.
	// The zero value keeps shadows, matching the CLI's --shadows default.
	NoShadows bool

	// PointUp reverses HierDAG's level axis: false (the zero value) puts
	// roots (level 0) in the first rows, true puts them in the last rows.
	PointUp bool

	// Mode selects per-node vs per-network edge-column assignment.
	Mode Mode

	// LinkGroups is an ordered list of relation-suffix groups; edges
	// whose relation matches none of them sort into one trailing group.
	LinkGroups []string

	// GroupIndexFn, when set, replaces the relation-suffix group-ordinal
	// rule with a caller-supplied one (used by Cluster's Between
	// inter-cluster placement to put intra-cluster edges ahead of
	// inter-cluster edges without needing a bespoke edge-layout pass).
	GroupIndexFn EdgeGroupFunc

	// Cluster configures NodeLayoutKindCluster.
	Cluster ClusterConfig

	// Control configures NodeLayoutKindControlTop.
	Control ControlConfig

	// Set configures NodeLayoutKindSet.
	Set SetConfig

	// Similarity configures NodeLayoutKindSimilarity.
	Similarity SimConfig

	// Monitor reports progress/cancellation; nil is treated as
	// progress.NoOp{}.
	Monitor progress.Monitor
}

func (p Params) monitor() progress.Monitor {
	if p.Monitor == nil {
		return progress.NoOp{}
	}

	return p.Monitor
}

// ClusterOrder selects how cluster blocks are ordered in Node cluster
// layout (spec.md §4.4.3).
type ClusterOrder int

const (
	// ClusterBreadthFirst runs BFS over the cluster-adjacency graph,
	// seeded from the largest cluster.
	ClusterBreadthFirst ClusterOrder = iota
	// ClusterLinkSize orders by intra-cluster edge count descending.
	ClusterLinkSize
	// ClusterNodeSize orders by member count descending.
	ClusterNodeSize
	// ClusterName orders lexicographically by cluster tag.
	ClusterName
)

// InterClusterPlacement names where inter-cluster edges land in the
// column order relative to intra-cluster edges (spec.md §4.4.3).
// ClusterConfig.Placement is not read by the node or edge layouts; the
// edge order changes only when a caller sets Params.GroupIndexFn, for
// example to ClusterGroupIndex.
type InterClusterPlacement int

const (
	// InterClusterInline shares columns with intra-cluster edges.
	InterClusterInline InterClusterPlacement = iota
	// InterClusterBetween names a column range of their own for
	// inter-cluster edges. ClusterGroupIndex, set as Params.GroupIndexFn,
	// puts every inter-cluster edge after all intra-cluster edges; it does
	// not place them between individual cluster blocks.
	InterClusterBetween
)

// ClusterConfig is the input to NodeLayoutKindCluster: a node -> tag
// assignment plus the two ordering policies.
type ClusterConfig struct {
	Assignment map[string]string
	Order      ClusterOrder
	Placement  InterClusterPlacement
}

// ControlOrder selects how the control set is ordered (spec.md §4.4.4).
type ControlOrder int

const (
	// ControlPartialOrder runs a topological sort restricted to the
	// control sub-graph, ties broken by degree then id.
	ControlPartialOrder ControlOrder = iota
	// ControlIntraDegree orders ascending by in-control-subgraph degree
	// then id ascending, then reverses the whole order.
	ControlIntraDegree
	// ControlMedianTargetDegree orders descending by the median degree
	// of a control's targets.
	ControlMedianTargetDegree
	// ControlDegreeOnly orders as in Default (degree desc, id desc on
	// ties), filtered to controls first.
	ControlDegreeOnly
	// ControlFixedList uses ControlConfig.FixedOrder verbatim.
	ControlFixedList
)

// TargetOrder selects how non-control nodes are ordered (spec.md §4.4.4).
type TargetOrder int

const (
	// TargetBreadthOrder visits non-controls in BFS visit order seeded
	// from the ordered control list.
	TargetBreadthOrder TargetOrder = iota
	// TargetDegreeOrder orders non-controls by degree descending, id
	// ascending on ties.
	TargetDegreeOrder
	// TargetGrayCode and TargetDegreeOdometer apply a radix-style sort
	// over successive target-degree buckets (spec.md §4.4.4); modeled
	// identically here since both describe the same odometer contract.
	TargetGrayCode
	TargetDegreeOdometer
)

// ControlConfig is the input to NodeLayoutKindControlTop.
type ControlConfig struct {
	// Explicit, if non-nil, supplies the control set directly,
	// bypassing directed-source detection.
	Explicit []string

	// IncludeShadowSources expands the detected control set to sources
	// of shadow edges as well as primaries.
	IncludeShadowSources bool

	ControlOrderMode ControlOrder
	FixedOrder       []string
	TargetOrderMode  TargetOrder
}

// SetMembership selects which endpoint of an edge denotes "member of a
// set" (spec.md §4.4.5).
type SetMembership int

const (
	// BelongsTo: edge source is the member, target is the set.
	BelongsTo SetMembership = iota
	// Contains: edge source is the set, target is the member.
	Contains
)

// SetConfig is the input to NodeLayoutKindSet.
type SetConfig struct {
	Membership SetMembership
}

// SimConfig is the input to NodeLayoutKindSimilarity, with defaults per
// spec.md §4.4.7 (documented open question, resolved in DESIGN.md).
type SimConfig struct {
	// PassCount is the number of refinement iterations. Zero means the
	// default of 10.
	PassCount int
	// Tolerance is the minimum total-improvement-per-pass to keep
	// iterating. Zero means the default of 1e-6.
	Tolerance float64
	// ChainLength bounds the window of neighbouring positions
	// considered for a swap. Zero means "node count" (no bound).
	ChainLength int
}

const (
	defaultPassCount   = 10
	defaultTolerance   = 1e-6
	defaultChainLength = 0 // 0 is resolved to node count at call time
)

func (c SimConfig) resolve(nodeCount int) (passCount int, tolerance float64, chainLength int) {
	passCount = c.PassCount
	if passCount <= 0 {
		passCount = defaultPassCount
	}
	tolerance = c.Tolerance
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	chainLength = c.ChainLength
	if chainLength <= 0 {
		chainLength = nodeCount
	}

	return passCount, tolerance, chainLength
}
