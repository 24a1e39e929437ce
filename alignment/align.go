package alignment

import "github.com/gobiofabric/biofabric/core"

// AlignPair is one (G1 id, G2 id) correspondence.
type AlignPair struct {
	G1, G2 string
}

// AlignmentMap is an ordered G1→G2 mapping (spec.md §3 "Alignment map"):
// G1 keys are unique, G2 values need not cover G2. Used both as the
// working alignment and, when supplied, as the "perfect" reference map.
type AlignmentMap struct {
	pairs   []AlignPair
	forward map[string]string // G1 id -> G2 id
	reverse map[string]string // G2 id -> G1 id (first writer wins if G2 id repeats)
}

// NewAlignmentMap builds an AlignmentMap from pairs, normalizing ids and
// preserving input order. Later duplicate G1 keys overwrite earlier ones in
// the lookup maps but the original pair order is retained for iteration.
func NewAlignmentMap(pairs []AlignPair) *AlignmentMap {
	a := &AlignmentMap{
		forward: make(map[string]string, len(pairs)),
		reverse: make(map[string]string, len(pairs)),
	}
	for _, p := range pairs {
		g1, g2 := core.NormalizeID(p.G1), core.NormalizeID(p.G2)
		a.pairs = append(a.pairs, AlignPair{G1: g1, G2: g2})
		a.forward[g1] = g2
		if _, exists := a.reverse[g2]; !exists {
			a.reverse[g2] = g1
		}
	}

	return a
}

// Pairs returns the alignment pairs in input order.
func (a *AlignmentMap) Pairs() []AlignPair {
	if a == nil {
		return nil
	}

	return a.pairs
}

// Forward looks up the G2 id aligned to g1.
func (a *AlignmentMap) Forward(g1 string) (string, bool) {
	if a == nil {
		return "", false
	}
	g2, ok := a.forward[core.NormalizeID(g1)]

	return g2, ok
}

// Reverse looks up the G1 id aligned to g2.
func (a *AlignmentMap) Reverse(g2 string) (string, bool) {
	if a == nil {
		return "", false
	}
	g1, ok := a.reverse[core.NormalizeID(g2)]

	return g1, ok
}

// Len reports the number of pairs.
func (a *AlignmentMap) Len() int {
	if a == nil {
		return 0
	}

	return len(a.pairs)
}
