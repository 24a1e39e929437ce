package session

import (
	"github.com/google/uuid"

	"github.com/gobiofabric/biofabric/alignment"
	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/layout"
)

// FromNetwork implements spec.md §4.11's `Session::from_network`: the
// layout-less form, with default display options and a fresh ID.
func FromNetwork(net *core.Network) (*Session, error) {
	if net == nil {
		return nil, ErrNetworkNil
	}

	return &Session{
		ID:       uuid.NewString(),
		Network:  net,
		Display:  DefaultDisplayOptions(),
		Metadata: make(map[string]string),
	}, nil
}

// WithLayout implements spec.md §4.11's `Session::with_layout`: a session
// carrying both a Network and its NetworkLayout, default display options.
func WithLayout(net *core.Network, nl *layout.NetworkLayout) (*Session, error) {
	s, err := FromNetwork(net)
	if err != nil {
		return nil, err
	}
	s.Layout = nl

	return s, nil
}

// AttachLayout replaces s's NetworkLayout.
func (s *Session) AttachLayout(nl *layout.NetworkLayout) {
	s.Layout = nl
}

// AttachAlignment records the Merge result s.Network came from, enabling
// the Purple->Blue->Red nid ordering on BIF write.
func (s *Session) AttachAlignment(m *alignment.Merged) {
	s.Alignment = m
}

// AttachScores records alignment scores alongside s.
func (s *Session) AttachScores(sc alignment.Scores) {
	s.Scores = sc
	s.HasScores = true
}

// nidOrder returns the node enumeration order used to assign BIF
// nid/srcID/trgID values: layout row order when a layout is attached
// (spec.md §4.3: "nodes by row ascending"), else Purple->Blue->Red
// alignment order when an alignment is attached (spec.md §9's required
// strategy), else the network's own insertion order.
func (s *Session) nidOrder() []string {
	if s.Layout != nil {
		return s.Layout.RowOrder
	}
	if s.Alignment != nil {
		return alignmentEnumerationOrder(s.Alignment)
	}

	return s.Network.NodeOrder()
}

// alignmentEnumerationOrder walks m.Network's node order three times,
// once per color in Purple, Blue, Red order, preserving each color's
// relative order within its pass.
func alignmentEnumerationOrder(m *alignment.Merged) []string {
	order := m.Network.NodeOrder()
	var purple, blue, red []string
	for _, id := range order {
		switch m.NodeColors[id] {
		case alignment.Purple:
			purple = append(purple, id)
		case alignment.Blue:
			blue = append(blue, id)
		case alignment.Red:
			red = append(red, id)
		}
	}

	out := make([]string, 0, len(order))
	out = append(out, purple...)
	out = append(out, blue...)
	out = append(out, red...)

	return out
}
