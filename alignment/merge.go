package alignment

import (
	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/progress"
)

// coverageKey matches a G1 "candidate Covered" edge against its G2 twin:
// unordered pair of the Purple endpoints' G2 sides plus the relation.
// Direction is deliberately ignored for the match itself (a judgment call,
// see DESIGN.md) — only the emitted edge's Directed flag carries it.
type coverageKey struct {
	a, b, relation string
}

func makeCoverageKey(u, v, relation string) coverageKey {
	if u > v {
		u, v = v, u
	}

	return coverageKey{a: u, b: v, relation: relation}
}

type pendingCovered struct {
	edgeIndex int // index into the merged network's edge slice once emitted
}

// Merge implements spec.md §4.6: classify G1/G2 nodes by colour, build the
// merged node set in Purple→Blue→Red order, classify every edge, and
// optionally fill node correctness against a perfect map.
func Merge(g1, g2 *core.Network, align *AlignmentMap, perfect *AlignmentMap, mon progress.Monitor) (*Merged, error) {
	if g1 == nil || g2 == nil {
		return nil, ErrNetworkNil
	}
	if align == nil || align.Len() == 0 {
		return nil, ErrEmptyAlignment
	}
	reporter := progress.NewLoopReporter(mon, "", g1.NodeCount()+g2.NodeCount(), 0)

	g2InRange := make(map[string]bool, align.Len())
	for _, p := range align.Pairs() {
		g2InRange[p.G2] = true
	}

	origins := make(map[string]MergedNodeID)
	colors := make(map[string]NodeColor)
	mergedIDOfG1 := make(map[string]string, g1.NodeCount())

	merged := core.NewNetwork()
	var mergedOrder []string

	addMerged := func(mid MergedNodeID) string {
		id := mid.String()
		if _, exists := origins[id]; !exists {
			origins[id] = mid
			colors[id] = mid.Color()
			merged.AddLoneNode(id)
			mergedOrder = append(mergedOrder, id)
		}

		return id
	}

	done := 0
	for _, g1id := range g1.NodeOrder() {
		var mid MergedNodeID
		if g2id, ok := align.Forward(g1id); ok {
			mid = MergedNodeID{G1: g1id, G2: g2id}
		} else {
			mid = MergedNodeID{G1: g1id}
		}
		mergedIDOfG1[g1id] = addMerged(mid)
		done++
		if err := reporter.Tick(done); err != nil {
			return nil, err
		}
	}

	mergedIDOfG2 := make(map[string]string, g2.NodeCount())
	for _, p := range align.Pairs() {
		mergedIDOfG2[p.G2] = mergedIDOfG1[p.G1]
	}
	for _, g2id := range g2.NodeOrder() {
		if g2InRange[g2id] {
			continue
		}
		mergedIDOfG2[g2id] = addMerged(MergedNodeID{G2: g2id})
		done++
		if err := reporter.Tick(done); err != nil {
			return nil, err
		}
	}

	if err := reporter.Finish(); err != nil {
		return nil, err
	}

	// Pass 1: classify every G1 edge. Both-Purple edges are tentatively
	// Covered and recorded for matching against G2; they downgrade to
	// InducedGraph1 in pass 3 if no G2 twin ever claims them.
	coverage := make(map[coverageKey]*pendingCovered)
	var edgeTypes []EdgeType
	var pendingList []*pendingCovered

	for _, e := range g1.Edges() {
		if e.IsShadow {
			continue
		}
		su, tv := mergedIDOfG1[e.Source], mergedIDOfG1[e.Target]
		cu, cv := colors[su], colors[tv]

		switch {
		case cu == Purple && cv == Purple:
			g2u, g2v := origins[su].G2, origins[tv].G2
			idx, _ := merged.AddLink(su, tv, e.Relation, e.Directed, false)
			edgeTypes = append(edgeTypes, Covered)
			pc := &pendingCovered{edgeIndex: idx}
			coverage[makeCoverageKey(g2u, g2v, e.Relation)] = pc
			pendingList = append(pendingList, pc)

		case cu == Blue && cv == Blue:
			_, _ = merged.AddLink(su, tv, e.Relation, e.Directed, false)
			edgeTypes = append(edgeTypes, FullOrphanGraph1)

		default:
			_, _ = merged.AddLink(su, tv, e.Relation, e.Directed, false)
			edgeTypes = append(edgeTypes, HalfOrphanGraph1)
		}
	}

	// Pass 2: classify every G2 edge, folding matches into the recorded
	// Covered edge instead of emitting a duplicate.
	matched := make(map[*pendingCovered]bool)
	for _, e := range g2.Edges() {
		if e.IsShadow {
			continue
		}
		if mergedIDOfG2[e.Source] == "" || mergedIDOfG2[e.Target] == "" {
			continue
		}
		su, tv := mergedIDOfG2[e.Source], mergedIDOfG2[e.Target]

		if pc, ok := coverage[makeCoverageKey(e.Source, e.Target, e.Relation)]; ok && !matched[pc] {
			matched[pc] = true
			continue
		}

		cu, cv := colors[su], colors[tv]
		switch {
		case cu == Purple && cv == Purple:
			_, _ = merged.AddLink(su, tv, e.Relation, e.Directed, false)
			edgeTypes = append(edgeTypes, InducedGraph2)
		case cu == Red && cv == Red:
			_, _ = merged.AddLink(su, tv, e.Relation, e.Directed, false)
			edgeTypes = append(edgeTypes, FullUnalignedGraph2)
		default:
			_, _ = merged.AddLink(su, tv, e.Relation, e.Directed, false)
			edgeTypes = append(edgeTypes, HalfUnalignedGraph2)
		}
	}

	// Pass 3: downgrade unmatched tentative-Covered edges to InducedGraph1.
	for _, pc := range pendingList {
		if !matched[pc] {
			edgeTypes[pc.edgeIndex] = InducedGraph1
		}
	}

	merged.GenerateShadows()

	m := &Merged{
		Network:     merged,
		NodeColors:  colors,
		NodeOrigins: origins,
		EdgeTypes:   edgeTypes,
	}

	if perfect != nil && perfect.Len() > 0 {
		m.MergedToCorrect = make(map[string]bool, len(mergedOrder))
		for _, id := range mergedOrder {
			mid := origins[id]
			switch mid.Color() {
			case Purple:
				want, _ := perfect.Forward(mid.G1)
				m.MergedToCorrect[id] = want == mid.G2
			case Blue:
				_, inDomain := perfect.Forward(mid.G1)
				m.MergedToCorrect[id] = !inDomain
			}
		}
	}

	return m, nil
}

// edgeTypeKey canonicalizes an edge's (source, target, relation) to its
// primary orientation, so a shadow edge looks up the same entry as its
// primary.
func edgeTypeKey(source, target, relation string, isShadow bool) [3]string {
	if isShadow {
		source, target = target, source
	}

	return [3]string{source, target, relation}
}

// EdgeTypeIndex builds a lookup from canonical (source, target, relation)
// to EdgeType, usable for any edge in m.Network including its shadows.
func (m *Merged) EdgeTypeIndex() map[[3]string]EdgeType {
	idx := make(map[[3]string]EdgeType, len(m.EdgeTypes))
	primaries := m.Network.Edges()[:len(m.EdgeTypes)]
	for i, e := range primaries {
		idx[edgeTypeKey(e.Source, e.Target, e.Relation, false)] = m.EdgeTypes[i]
	}

	return idx
}

// NodeCorrectness is NC from spec.md §4.6/§4.7: the fraction of tracked
// (Purple/Blue) merged nodes marked correct. Zero divisor yields 0.0.
func NodeCorrectness(m *Merged) float64 {
	if m == nil || len(m.MergedToCorrect) == 0 {
		return 0
	}
	correct := 0
	for _, ok := range m.MergedToCorrect {
		if ok {
			correct++
		}
	}

	return float64(correct) / float64(len(m.MergedToCorrect))
}
