package core

import "strings"

// Directedness is the tri-state directed flag carried by an Edge: a relation
// may be explicitly directed, explicitly undirected, or left unspecified by
// its source format (e.g. a plain SIF line carries no directedness at all).
type Directedness int

const (
	// Unspecified means the source format did not declare a direction.
	Unspecified Directedness = iota
	// Directed means the edge is one-way, Source -> Target.
	Directed
	// Undirected means the edge is explicitly bidirectional.
	Undirected
)

// String renders the Directedness for logs and diagnostics.
func (d Directedness) String() string {
	switch d {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "unspecified"
	}
}

// Node is a single vertex in a Network, identified by a case-normalized ID.
// Display preserves the first-seen original spelling for rendering.
type Node struct {
	// ID is the case-normalized identity (see NormalizeID).
	ID string

	// Display is the original spelling as first encountered.
	Display string

	// Attrs holds optional string attributes attached by an attribute-file import.
	Attrs map[string]string
}

// Edge is a typed connection between two Nodes (by normalized ID). Its
// position in Network.edges is its canonical identity: adjacency indexes
// and link-layout columns both key off that position, not off any field
// of the Edge itself.
type Edge struct {
	// Source is the normalized ID of the edge's origin endpoint.
	Source string

	// Target is the normalized ID of the edge's destination endpoint.
	Target string

	// Relation is an arbitrary relation tag; most comparisons are
	// case-sensitive except where spec.md explicitly calls out
	// case-insensitive matching (link-group suffix matching).
	Relation string

	// Directed is the tri-state directedness of this edge.
	Directed Directedness

	// IsShadow marks a generated reverse twin of a non-self-loop edge.
	IsShadow bool
}

// selfLoop reports whether the edge connects a node to itself.
func (e *Edge) selfLoop() bool { return e.Source == e.Target }

// canonicalKey returns the deduplication key for e: unordered for
// undirected/self-loop-free relations sharing a key with their reverse,
// ordered for self-loops. Directedness is intentionally excluded from the
// key per spec.md §3 ("No edge appears twice under the canonical key
// (source, target, relation)").
func (e *Edge) canonicalKey() [3]string {
	if e.selfLoop() {
		return [3]string{e.Source, e.Target, e.Relation}
	}
	if e.Source <= e.Target {
		return [3]string{e.Source, e.Target, e.Relation}
	}

	return [3]string{e.Target, e.Source, e.Relation}
}

// networkMeta caches the three graph-level detections (spec.md §4.1):
// whether any edge is directed, whether the graph is bipartite, and
// whether it is a DAG on its directed non-shadow sub-graph.
type networkMeta struct {
	directed  bool
	bipartite bool
	dag       bool
	valid     bool
}

// Network is the owning container for a graph: Nodes, Edges (including any
// generated shadows), and the set of lone (edge-free) node IDs.
//
// All fields are unexported; Network is meant to be mutated only through
// its methods so that the invariants in spec.md §3 always hold between
// calls. A Network is not safe for concurrent mutation — spec.md §5
// specifies single ownership with no shared mutable state.
type Network struct {
	nodeOrder []string
	nodes     map[string]*Node

	edges []*Edge

	loneOrder []string
	lone      map[string]bool

	hasShadows bool

	// adjacency: node id -> indices into edges, lazily rebuilt.
	adjDirty bool
	adj      map[string][]int

	meta networkMeta
}

// NewNetwork creates an empty Network ready for AddNode/AddLink/AddLoneNode.
func NewNetwork() *Network {
	return &Network{
		nodes:    make(map[string]*Node),
		lone:     make(map[string]bool),
		adj:      make(map[string][]int),
		adjDirty: true,
	}
}

// NormalizeID returns the case-normalized identity used for Node lookups:
// uppercase with all spaces removed. The original spelling is never lost —
// callers pass it to AddNode/AddLink and it is retained as Node.Display.
func NormalizeID(raw string) string {
	return strings.ToUpper(strings.ReplaceAll(raw, " ", ""))
}

// invalidate marks the adjacency index and cached metadata dirty. Called by
// every mutating method.
func (n *Network) invalidate() {
	n.adjDirty = true
	n.meta.valid = false
}
