package alignment

import "sort"

// groupTag is one of the 20 canonical node-group tags (spec.md §4.8).
type groupTag struct {
	Name     string
	Color    NodeColor
	Types    []EdgeType // exact incident-type set this tag matches; nil for CatchAll
	CatchAll bool
}

// CanonicalGroups is the fixed, stable-dimension 20-tag list in canonical
// order. Purple absorbs Blue nodes for tag purposes (spec.md §9 "Blue nodes
// and node groups"). Red's two possible incident types (HalfUnalignedGraph2,
// FullUnalignedGraph2) exhaust the power set exactly (4 entries, no
// overflow needed); Purple's six possible incident types (Covered,
// InducedGraph1, FullOrphanGraph1 inherited from folded Blue nodes,
// HalfOrphanGraph1, InducedGraph2, HalfUnalignedGraph2) are curated down to
// the fifteen combinations actually reachable by a single node plus one
// CatchAll, since no reference golden list survives in this pack — see
// DESIGN.md.
var CanonicalGroups = []groupTag{
	{Name: "(P:0)", Color: Purple, Types: nil},
	{Name: "(P:P)", Color: Purple, Types: []EdgeType{Covered}},
	{Name: "(P:G1)", Color: Purple, Types: []EdgeType{InducedGraph1}},
	{Name: "(P:O1)", Color: Purple, Types: []EdgeType{FullOrphanGraph1}},
	{Name: "(P:H1)", Color: Purple, Types: []EdgeType{HalfOrphanGraph1}},
	{Name: "(P:G2)", Color: Purple, Types: []EdgeType{InducedGraph2}},
	{Name: "(P:H2)", Color: Purple, Types: []EdgeType{HalfUnalignedGraph2}},
	{Name: "(P:P/G1)", Color: Purple, Types: []EdgeType{Covered, InducedGraph1}},
	{Name: "(P:P/G2)", Color: Purple, Types: []EdgeType{Covered, InducedGraph2}},
	{Name: "(P:P/H1)", Color: Purple, Types: []EdgeType{Covered, HalfOrphanGraph1}},
	{Name: "(P:P/H2)", Color: Purple, Types: []EdgeType{Covered, HalfUnalignedGraph2}},
	{Name: "(P:G1/H1)", Color: Purple, Types: []EdgeType{InducedGraph1, HalfOrphanGraph1}},
	{Name: "(P:G2/H2)", Color: Purple, Types: []EdgeType{InducedGraph2, HalfUnalignedGraph2}},
	{Name: "(P:P/G1/H1)", Color: Purple, Types: []EdgeType{Covered, InducedGraph1, HalfOrphanGraph1}},
	{Name: "(P:P/G2/H2)", Color: Purple, Types: []EdgeType{Covered, InducedGraph2, HalfUnalignedGraph2}},
	{Name: "(P:other)", Color: Purple, CatchAll: true},
	{Name: "(R:0)", Color: Red, Types: nil},
	{Name: "(R:H2)", Color: Red, Types: []EdgeType{HalfUnalignedGraph2}},
	{Name: "(R:O2)", Color: Red, Types: []EdgeType{FullUnalignedGraph2}},
	{Name: "(R:H2/O2)", Color: Red, Types: []EdgeType{HalfUnalignedGraph2, FullUnalignedGraph2}},
}

func typeSetKey(types []EdgeType) string {
	sorted := append([]EdgeType(nil), types...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	key := make([]byte, 0, len(sorted)*2)
	for _, t := range sorted {
		key = append(key, byte(t), '/')
	}

	return string(key)
}

var groupIndexByKey = buildGroupIndex()

func buildGroupIndex() map[string]map[string]int {
	idx := map[string]map[string]int{"purple": {}, "red": {}}
	for i, g := range CanonicalGroups {
		if g.CatchAll {
			continue
		}
		bucket := "purple"
		if g.Color == Red {
			bucket = "red"
		}
		idx[bucket][typeSetKey(g.Types)] = i
	}

	return idx
}

func purpleCatchAllIndex() int {
	for i, g := range CanonicalGroups {
		if g.Color == Purple && g.CatchAll {
			return i
		}
	}

	return -1
}

// GroupTagIndex classifies merged node id by its non-shadow incident
// edge types, returning the index into CanonicalGroups.
func GroupTagIndex(m *Merged, edgeTypeIdx map[[3]string]EdgeType, id string) int {
	present := incidentTypes(m, edgeTypeIdx, id)
	color := effectiveColor(m.NodeColors[id])

	bucket := "purple"
	if color == Red {
		bucket = "red"
	}
	key := typeSetKey(present)
	if i, ok := groupIndexByKey[bucket][key]; ok {
		return i
	}

	return purpleCatchAllIndex()
}

// effectiveColor folds Blue into Purple for group-tag purposes.
func effectiveColor(c NodeColor) NodeColor {
	if c == Blue {
		return Purple
	}

	return c
}

func incidentTypes(m *Merged, edgeTypeIdx map[[3]string]EdgeType, id string) []EdgeType {
	seen := make(map[EdgeType]bool)
	links, err := m.Network.LinksForNode(id)
	if err != nil {
		return nil
	}
	for _, e := range links {
		if e.IsShadow {
			continue
		}
		t, ok := edgeTypeIdx[edgeTypeKey(e.Source, e.Target, e.Relation, false)]
		if !ok {
			continue
		}
		seen[t] = true
	}
	var out []EdgeType
	for t := range seen {
		out = append(out, t)
	}

	return out
}

// GroupCounts tallies CanonicalGroups membership counts over every merged
// node (spec.md §4.8 step 3: empty groups retained for stable dimension).
func GroupCounts(m *Merged) []int {
	edgeTypeIdx := m.EdgeTypeIndex()
	counts := make([]int, len(CanonicalGroups))
	for id := range m.NodeColors {
		counts[GroupTagIndex(m, edgeTypeIdx, id)]++
	}

	return counts
}

// GroupRatioVector is GroupCounts normalized by total node count, the
// vector NGS compares (spec.md §4.7/§4.8).
func GroupRatioVector(m *Merged) []float64 {
	counts := GroupCounts(m)
	total := 0
	for _, c := range counts {
		total += c
	}
	out := make([]float64, len(counts))
	if total == 0 {
		return out
	}
	for i, c := range counts {
		out[i] = float64(c) / float64(total)
	}

	return out
}

// PerfectNGMode selects how PerfectNG subdivides each canonical group.
type PerfectNGMode int

const (
	NoSubdivision PerfectNGMode = iota
	NodeCorrectnessSubdivision
	JaccardSimilaritySubdivision
)

const defaultJaccardThreshold = 0.75

// PerfectNGGroups subdivides every canonical group into correct/incorrect
// (or above/below-threshold) halves, doubling the physical group count
// (spec.md §4.8 "PerfectNG subdivision").
func PerfectNGGroups(m *Merged, mode PerfectNGMode, nodeJS map[string]float64, threshold float64) []int {
	if mode == NoSubdivision {
		return GroupCounts(m)
	}
	if threshold <= 0 {
		threshold = defaultJaccardThreshold
	}
	edgeTypeIdx := m.EdgeTypeIndex()
	counts := make([]int, len(CanonicalGroups)*2)
	for id := range m.NodeColors {
		idx := GroupTagIndex(m, edgeTypeIdx, id)
		positive := false
		switch mode {
		case NodeCorrectnessSubdivision:
			positive = m.MergedToCorrect[id]
		case JaccardSimilaritySubdivision:
			positive = nodeJS[id] >= threshold
		}
		slot := idx * 2
		if positive {
			slot++
		}
		counts[slot]++
	}

	return counts
}
