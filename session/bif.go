package session

import (
	"encoding/xml"
	"io"
	"sort"

	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/layout"
)

// bifDoc is the root <network> element of a BIF session file.
type bifDoc struct {
	XMLName        xml.Name   `xml:"network"`
	Nodes          []bifNode  `xml:"nodes>node"`
	Links          []bifLink  `xml:"links>link"`
	LinkGroups     []bifGroup `xml:"linkGroups>group,omitempty"`
	Display        bifDisplay `xml:"displayOptions"`
	PlugInDataSets bifPlugin  `xml:"plugInDataSets"`
}

type bifNode struct {
	NID            int    `xml:"nid,attr"`
	Name           string `xml:"name,attr"`
	Row            *int   `xml:"row,attr,omitempty"`
	MinCol         *int   `xml:"minCol,attr,omitempty"`
	MaxCol         *int   `xml:"maxCol,attr,omitempty"`
	MinColNoShadow *int   `xml:"minColNoShadow,attr,omitempty"`
	MaxColNoShadow *int   `xml:"maxColNoShadow,attr,omitempty"`
}

type bifLink struct {
	SrcID          int    `xml:"srcID,attr"`
	TrgID          int    `xml:"trgID,attr"`
	Relation       string `xml:"relation,attr"`
	Directed       string `xml:"directed,attr,omitempty"`
	Shadow         bool   `xml:"shadow,attr,omitempty"`
	Column         *int   `xml:"column,attr,omitempty"`
	ColumnNoShadow *int   `xml:"columnNoShadow,attr,omitempty"`
}

type bifGroup struct {
	Name string `xml:"name,attr"`
}

type bifDisplay struct {
	ShowShadows         *bool  `xml:"showShadows,attr,omitempty"`
	ShowNodeAnnotations *bool  `xml:"showNodeAnnotations,attr,omitempty"`
	ShowLinkAnnotations *bool  `xml:"showLinkAnnotations,attr,omitempty"`
	NodeLabelFont       string `xml:"nodeLabelFont,attr,omitempty"`
	LinkLabelFont       string `xml:"linkLabelFont,attr,omitempty"`
}

// bifPlugin captures <plugInDataSets>'s content byte-for-byte on read and
// re-emits it unmodified on write, per spec.md §4.3's "verbatim
// pass-through" rule.
type bifPlugin struct {
	Raw string `xml:",innerxml"`
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// WriteBIF implements spec.md §4.3's BIF writer: nodes ordered by row (or
// s.nidOrder() when no layout is attached), links ordered by shadow-on
// column ascending, nid/srcID/trgID assigned fresh from that enumeration
// order (spec.md §9's required strategy, not a stored id), display
// attributes emitted only when they deviate from default, and
// s.PlugInData re-emitted verbatim.
func WriteBIF(s *Session, w io.Writer) error {
	if s == nil || s.Network == nil {
		return ErrNetworkNil
	}

	order := s.nidOrder()
	nidOf := make(map[string]int, len(order))
	for i, id := range order {
		nidOf[id] = i
	}

	doc := bifDoc{}
	doc.Nodes = make([]bifNode, 0, len(order))
	for i, id := range order {
		node, err := s.Network.GetNode(id)
		if err != nil {
			continue
		}
		bn := bifNode{NID: i, Name: node.Display}
		if s.Layout != nil {
			if nd, ok := s.Layout.Nodes[id]; ok {
				bn.Row = intPtr(nd.Row)
				if !nd.ColSpan.Empty {
					bn.MinCol = intPtr(nd.ColSpan.Start)
					bn.MaxCol = intPtr(nd.ColSpan.End)
				}
				if !nd.ColSpanNoShadow.Empty {
					bn.MinColNoShadow = intPtr(nd.ColSpanNoShadow.Start)
					bn.MaxColNoShadow = intPtr(nd.ColSpanNoShadow.End)
				}
			}
		}
		doc.Nodes = append(doc.Nodes, bn)
	}

	if s.Layout != nil {
		for _, ll := range sortedLayoutLinks(s.Layout) {
			srcID, okSrc := nidOf[ll.Source]
			trgID, okTgt := nidOf[ll.Target]
			if !okSrc || !okTgt {
				continue
			}
			bl := bifLink{SrcID: srcID, TrgID: trgID, Relation: ll.Relation, Shadow: ll.IsShadow, Column: intPtr(ll.Column)}
			if ll.Directed {
				bl.Directed = "directed"
			}
			if ll.HasColumnNoShadow {
				bl.ColumnNoShadow = intPtr(ll.ColumnNoShadow)
			}
			doc.Links = append(doc.Links, bl)
		}
	} else {
		for _, e := range s.Network.Edges() {
			srcID, okSrc := nidOf[e.Source]
			trgID, okTgt := nidOf[e.Target]
			if !okSrc || !okTgt {
				continue
			}
			doc.Links = append(doc.Links, bifLink{
				SrcID:    srcID,
				TrgID:    trgID,
				Relation: e.Relation,
				Directed: directedAttr(e.Directed),
				Shadow:   e.IsShadow,
			})
		}
	}

	doc.Display = buildDisplay(s.Display)
	doc.PlugInDataSets = bifPlugin{Raw: s.PlugInData}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	return enc.Encode(doc)
}

// sortedLayoutLinks returns nl.Links sorted (stably) by shadow-on Column
// ascending, per spec.md §4.3's "links by shadow-on column ascending".
func sortedLayoutLinks(nl *layout.NetworkLayout) []*layout.LinkLayout {
	out := append([]*layout.LinkLayout(nil), nl.Links...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Column < out[j].Column })

	return out
}

// directedAttr renders a core.Directedness as the BIF "directed"
// attribute value, omitted entirely for Unspecified/Undirected.
func directedAttr(d core.Directedness) string {
	if d == core.Directed {
		return "directed"
	}

	return ""
}

// buildDisplay renders DisplayOptions against DefaultDisplayOptions(),
// omitting any attribute that matches the default — except ShowShadows,
// which ExplicitShadows forces to be written regardless.
func buildDisplay(d DisplayOptions) bifDisplay {
	def := DefaultDisplayOptions()
	var out bifDisplay

	if d.ShowShadows != def.ShowShadows || d.ExplicitShadows {
		out.ShowShadows = boolPtr(d.ShowShadows)
	}
	if d.ShowNodeAnnotations != def.ShowNodeAnnotations {
		out.ShowNodeAnnotations = boolPtr(d.ShowNodeAnnotations)
	}
	if d.ShowLinkAnnotations != def.ShowLinkAnnotations {
		out.ShowLinkAnnotations = boolPtr(d.ShowLinkAnnotations)
	}
	out.NodeLabelFont = d.NodeLabelFont
	out.LinkLabelFont = d.LinkLabelFont

	return out
}

// ReadBIF implements spec.md §4.3's BIF reader: parses <nodes>/<links>
// into a fresh core.Network (registering every node first via
// AddLoneNode so isolated nodes survive, then wiring links via AddLink,
// which removes them from the lone set automatically), captures
// <plugInDataSets> verbatim, and restores DisplayOptions.
func ReadBIF(r io.Reader) (*Session, error) {
	dec := xml.NewDecoder(r)

	var root xml.StartElement
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			root = se
			break
		}
	}
	if root.Name.Local != "network" {
		return nil, ErrBadBIFRoot
	}

	var doc bifDoc
	if err := dec.DecodeElement(&doc, &root); err != nil {
		return nil, err
	}

	net := core.NewNetwork()
	nameByNID := make(map[int]string, len(doc.Nodes))
	for _, bn := range doc.Nodes {
		net.AddLoneNode(bn.Name)
		nameByNID[bn.NID] = bn.Name
	}

	for _, bl := range doc.Links {
		srcName, okSrc := nameByNID[bl.SrcID]
		trgName, okTgt := nameByNID[bl.TrgID]
		if !okSrc || !okTgt {
			return nil, ErrUnknownBIFNode
		}
		directed := core.Unspecified
		if bl.Directed == "directed" {
			directed = core.Directed
		}
		if _, err := net.AddLink(srcName, trgName, bl.Relation, directed, bl.Shadow); err != nil {
			return nil, err
		}
	}

	s, err := FromNetwork(net)
	if err != nil {
		return nil, err
	}
	s.PlugInData = doc.PlugInDataSets.Raw
	s.Display = restoreDisplay(doc.Display)

	return s, nil
}

// restoreDisplay applies DefaultDisplayOptions(), overridden by whichever
// attributes were present in doc — the mirror image of buildDisplay.
func restoreDisplay(bd bifDisplay) DisplayOptions {
	d := DefaultDisplayOptions()
	if bd.ShowShadows != nil {
		d.ShowShadows = *bd.ShowShadows
	}
	if bd.ShowNodeAnnotations != nil {
		d.ShowNodeAnnotations = *bd.ShowNodeAnnotations
	}
	if bd.ShowLinkAnnotations != nil {
		d.ShowLinkAnnotations = *bd.ShowLinkAnnotations
	}
	d.NodeLabelFont = bd.NodeLabelFont
	d.LinkLabelFont = bd.LinkLabelFont

	return d
}
