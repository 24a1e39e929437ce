package session

import (
	"github.com/gobiofabric/biofabric/alignment"
	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/layout"
)

// DisplayOptions is the renderer-facing presentation state a Session
// carries alongside its Network/NetworkLayout. None of these fields
// affect any layout or alignment computation; they exist purely so a
// Session round-trips through BIF with the same viewer state it was
// saved with.
type DisplayOptions struct {
	ShowShadows         bool
	ShowNodeAnnotations bool
	ShowLinkAnnotations bool
	NodeLabelFont       string
	LinkLabelFont       string

	// ExplicitShadows forces the shadows attribute to be written even
	// when it equals the default, per spec.md §4.3's BIF rule for
	// alignment-cycle views (which must be unambiguous about shadow
	// display regardless of the library default).
	ExplicitShadows bool
}

// DefaultDisplayOptions returns the built-in defaults BIF write compares
// against to decide which attributes to omit.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		ShowShadows:         true,
		ShowNodeAnnotations: true,
		ShowLinkAnnotations: true,
	}
}

// Session owns a Network, optionally a NetworkLayout and an alignment
// Merge result, a DisplayOptions value, alignment scores, and verbatim
// plugin-data XML captured from a BIF read. It is mutated only by
// attaching a layout, an alignment result, or scores; everything else is
// set at construction.
type Session struct {
	ID string

	Network *core.Network
	Layout  *layout.NetworkLayout

	// Alignment is non-nil when Network is the merged network of an
	// alignment; it supplies the Purple->Blue->Red enumeration order BIF
	// write uses for nid assignment (spec.md §9's required strategy for
	// reproducing the reference implementation's node-id order).
	Alignment *alignment.Merged

	Scores    alignment.Scores
	HasScores bool

	Display DisplayOptions

	// PlugInData is the verbatim inner XML of a read BIF's
	// <plugInDataSets> element, re-emitted unmodified on write.
	PlugInData string

	Metadata map[string]string
}
