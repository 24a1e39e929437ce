package alignment

import "github.com/gobiofabric/biofabric/core"

// NodeColor classifies a merged node by which side(s) of the alignment
// produced it.
type NodeColor int

const (
	Purple NodeColor = iota // present in both G1 and G2, joined by the alignment
	Blue                    // G1-only
	Red                     // G2-only
)

func (c NodeColor) String() string {
	switch c {
	case Purple:
		return "Purple"
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	default:
		return "Unknown"
	}
}

// EdgeType is one of the seven merged-edge classifications (data model §3).
// The order of the constants below is EdgeType::all's fixed 7-dim order,
// used for LGS ratio vectors and node-group tag text.
type EdgeType int

const (
	Covered EdgeType = iota
	InducedGraph1
	HalfOrphanGraph1
	FullOrphanGraph1
	InducedGraph2
	HalfUnalignedGraph2
	FullUnalignedGraph2

	edgeTypeCount = 7
)

// AllEdgeTypes is EdgeType::all in its fixed canonical order.
var AllEdgeTypes = [edgeTypeCount]EdgeType{
	Covered, InducedGraph1, HalfOrphanGraph1, FullOrphanGraph1,
	InducedGraph2, HalfUnalignedGraph2, FullUnalignedGraph2,
}

func (t EdgeType) String() string {
	switch t {
	case Covered:
		return "Covered"
	case InducedGraph1:
		return "InducedGraph1"
	case HalfOrphanGraph1:
		return "HalfOrphanGraph1"
	case FullOrphanGraph1:
		return "FullOrphanGraph1"
	case InducedGraph2:
		return "InducedGraph2"
	case HalfUnalignedGraph2:
		return "HalfUnalignedGraph2"
	case FullUnalignedGraph2:
		return "FullUnalignedGraph2"
	default:
		return "Unknown"
	}
}

// ShortCode is the edge-type short code used in node-group tag text, e.g.
// "(P:G1/H1)".
func (t EdgeType) ShortCode() string {
	switch t {
	case Covered:
		return "P"
	case InducedGraph1:
		return "G1"
	case HalfOrphanGraph1:
		return "H1"
	case FullOrphanGraph1:
		return "O1"
	case InducedGraph2:
		return "G2"
	case HalfUnalignedGraph2:
		return "H2"
	case FullUnalignedGraph2:
		return "O2"
	default:
		return "?"
	}
}

// MergedNodeID is a merged node's origin pair; at least one side is set.
type MergedNodeID struct {
	G1, G2 string // normalized ids, empty string means "absent"
}

// String renders "<g1>::<g2>" per the data model.
func (m MergedNodeID) String() string {
	return m.G1 + "::" + m.G2
}

// Color derives the merged node's colour from which sides are present.
func (m MergedNodeID) Color() NodeColor {
	switch {
	case m.G1 != "" && m.G2 != "":
		return Purple
	case m.G1 != "":
		return Blue
	default:
		return Red
	}
}

// Merged is the complete output of a merge operation (spec.md §4.6).
type Merged struct {
	Network *core.Network

	NodeColors  map[string]NodeColor
	NodeOrigins map[string]MergedNodeID

	// EdgeTypes is parallel to Network.Edges(): edge_types[i] classifies
	// the i-th non-shadow edge in emission order. Shadow edges carry no
	// entry of their own: EdgeTypeIndex resolves a shadow to its primary's
	// type by swapping the shadow's endpoints.
	EdgeTypes []EdgeType

	// MergedToCorrect is nil unless a perfect map was supplied.
	MergedToCorrect map[string]bool
}
