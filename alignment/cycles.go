package alignment

// CycleCase is one of the nine classifications from spec.md §4.9, in
// canonical index order (0-8 as listed in the spec table, i.e. the table's
// 1-9 numbering shifted down by one).
type CycleCase int

const (
	CorrectlyUnalignedBlue CycleCase = iota
	CorrectlyUnalignedRed
	CorrectSingleton
	IncorrectSingleton
	PathRedBlue
	PathRedPurple
	PathPurpleBlue
	PathRedPurpleBlue
	IncorrectCycle

	cycleCaseCount = 9
)

func (c CycleCase) String() string {
	switch c {
	case CorrectlyUnalignedBlue:
		return "CorrectlyUnalignedBlue"
	case CorrectlyUnalignedRed:
		return "CorrectlyUnalignedRed"
	case CorrectSingleton:
		return "CorrectSingleton"
	case IncorrectSingleton:
		return "IncorrectSingleton"
	case PathRedBlue:
		return "PathRedBlue"
	case PathRedPurple:
		return "PathRedPurple"
	case PathPurpleBlue:
		return "PathPurpleBlue"
	case PathRedPurpleBlue:
		return "PathRedPurpleBlue"
	case IncorrectCycle:
		return "IncorrectCycle"
	default:
		return "Unknown"
	}
}

// CycleEntry is one classified structure: its case and the G1/G2 node ids
// visited in walk order (for a cycle, the first id repeats as the last).
type CycleEntry struct {
	Case  CycleCase
	Nodes []string
}

// side tags a node id by which network it came from, so G1 and G2 ids
// that happen to collide textually are never confused.
type side byte

const (
	sideG1 side = '1'
	sideG2 side = '2'
)

type nodeRef struct {
	side side
	id   string
}

type diffEdgeKind int

const (
	edgeAlign diffEdgeKind = iota
	edgePerfect
)

type diffEdge struct {
	other nodeRef
	kind  diffEdgeKind
}

// ClassifyCycles implements spec.md §4.9. align is required; perfect may be
// nil, which collapses every aligned node to IncorrectSingleton per the
// "without a perfect map" rule and omits unaligned nodes entirely (they
// cannot be determined correct without a perfect map to compare against).
func ClassifyCycles(align, perfect *AlignmentMap, allG1, allG2 []string) ([]CycleEntry, [cycleCaseCount]int) {
	var entries []CycleEntry
	var counts [cycleCaseCount]int

	record := func(c CycleCase, nodes []string) {
		entries = append(entries, CycleEntry{Case: c, Nodes: nodes})
		counts[c]++
	}

	if perfect == nil || perfect.Len() == 0 {
		for _, g := range allG1 {
			if _, ok := align.Forward(g); ok {
				record(IncorrectSingleton, []string{g})
			}
		}

		return entries, counts
	}

	adj := make(map[nodeRef][]diffEdge)
	addEdge := func(a, b nodeRef, kind diffEdgeKind) {
		adj[a] = append(adj[a], diffEdge{other: b, kind: kind})
		adj[b] = append(adj[b], diffEdge{other: a, kind: kind})
	}

	for _, g := range allG1 {
		a, okA := align.Forward(g)
		p, okP := perfect.Forward(g)
		if okA && okP && a == p {
			continue // correct match, cancels out of the symmetric difference
		}
		g1 := nodeRef{side: sideG1, id: g}
		if okA {
			addEdge(g1, nodeRef{side: sideG2, id: a}, edgeAlign)
		}
		if okP {
			addEdge(g1, nodeRef{side: sideG2, id: p}, edgePerfect)
		}
	}

	visited := make(map[nodeRef]bool)

	isAligned := func(g string) bool { _, ok := align.Forward(g); return ok }
	isPerfectDomain := func(g string) bool { _, ok := perfect.Forward(g); return ok }
	isTargetedByAlign := func(g2 string) bool { _, ok := align.Reverse(g2); return ok }
	isTargetedByPerfect := func(g2 string) bool { _, ok := perfect.Reverse(g2); return ok }

	// Isolated nodes: zero diff edges.
	for _, g := range allG1 {
		ref := nodeRef{side: sideG1, id: g}
		if len(adj[ref]) > 0 {
			continue
		}
		visited[ref] = true
		switch {
		case isAligned(g) && isPerfectDomain(g):
			record(CorrectSingleton, []string{g})
		case !isAligned(g) && !isPerfectDomain(g):
			record(CorrectlyUnalignedBlue, []string{g})
		}
	}
	for _, g2 := range allG2 {
		ref := nodeRef{side: sideG2, id: g2}
		if len(adj[ref]) > 0 {
			continue
		}
		visited[ref] = true
		if !isTargetedByAlign(g2) && !isTargetedByPerfect(g2) {
			record(CorrectlyUnalignedRed, []string{g2})
		}
	}

	labelEndpoint := func(ref nodeRef) string {
		if ref.side == sideG1 {
			if isAligned(ref.id) {
				return "purple"
			}

			return "blue"
		}

		return "red" // every G2 terminal position is labelled red, including one the real map targets
	}

	walkFrom := func(start nodeRef) []nodeRef {
		path := []nodeRef{start}
		visited[start] = true
		prevKind := diffEdgeKind(-1)
		cur := start
		for {
			var next *diffEdge
			for _, e := range adj[cur] {
				if e.kind != prevKind {
					next = &e
					break
				}
			}
			if next == nil {
				break
			}
			if visited[next.other] {
				break
			}
			visited[next.other] = true
			path = append(path, next.other)
			prevKind = next.kind
			cur = next.other
		}

		return path
	}

	toIDs := func(path []nodeRef) []string {
		out := make([]string, len(path))
		for i, r := range path {
			out[i] = r.id
		}

		return out
	}

	hasInteriorG1 := func(path []nodeRef) bool {
		for _, r := range path[1 : len(path)-1] {
			if r.side == sideG1 {
				return true
			}
		}

		return false
	}

	// Path components: start from every unvisited degree-1 node.
	for _, g := range allG1 {
		ref := nodeRef{side: sideG1, id: g}
		if visited[ref] || len(adj[ref]) != 1 {
			continue
		}
		path := walkFrom(ref)
		classifyPath(path, labelEndpoint, hasInteriorG1, toIDs, record)
	}
	for _, g2 := range allG2 {
		ref := nodeRef{side: sideG2, id: g2}
		if visited[ref] || len(adj[ref]) != 1 {
			continue
		}
		path := walkFrom(ref)
		classifyPath(path, labelEndpoint, hasInteriorG1, toIDs, record)
	}

	// Remaining unvisited nodes are all degree-2 cycle members.
	for _, g := range allG1 {
		ref := nodeRef{side: sideG1, id: g}
		if visited[ref] {
			continue
		}
		cycle := walkCycle(ref, adj, visited)
		ids := toIDs(cycle)
		if len(ids) > 0 {
			ids = append(ids, ids[0])
		}
		record(IncorrectCycle, ids)
	}

	return entries, counts
}

func classifyPath(path []nodeRef, label func(nodeRef) string, hasInteriorG1 func([]nodeRef) bool, toIDs func([]nodeRef) []string, record func(CycleCase, []string)) {
	if len(path) < 2 {
		return
	}
	e1, e2 := label(path[0]), label(path[len(path)-1])
	ids := toIDs(path)

	set := map[string]bool{e1: true, e2: true}
	switch {
	case set["red"] && set["blue"]:
		if hasInteriorG1(path) {
			record(PathRedPurpleBlue, ids)
		} else {
			record(PathRedBlue, ids)
		}
	case set["red"] && set["purple"]:
		record(PathRedPurple, ids)
	case set["purple"] && set["blue"]:
		record(PathPurpleBlue, ids)
	default:
		record(PathRedPurple, ids) // both ends are G2 positions, so both are labelled red
	}
}

func walkCycle(start nodeRef, adj map[nodeRef][]diffEdge, visited map[nodeRef]bool) []nodeRef {
	path := []nodeRef{start}
	visited[start] = true
	prevKind := diffEdgeKind(-1)
	cur := start
	for {
		var next *diffEdge
		for _, e := range adj[cur] {
			if e.kind != prevKind && !(e.other == start && len(path) > 1) {
				next = &e
				break
			}
		}
		if next == nil {
			break
		}
		if next.other == start {
			break
		}
		visited[next.other] = true
		path = append(path, next.other)
		prevKind = next.kind
		cur = next.other
	}

	return path
}
