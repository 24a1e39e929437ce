package alignment

import (
	"math"

	"github.com/gobiofabric/biofabric/core"
)

// Scores holds every alignment-quality number spec.md §4.7 defines.
// NC/NGS/LGS/JS are left at their zero value when no perfect map was
// supplied to the computation that filled this struct.
type Scores struct {
	EC, S3, ICS      float64
	NC, NGS, LGS, JS float64
	HasPerfect       bool
}

// TopologicalScores computes EC, S3, ICS from a merged network alone
// (spec.md §4.7). Each ratio is 0.0 when its divisor is 0.
func TopologicalScores(m *Merged) Scores {
	covered, inducedG1, inducedG2 := 0, 0, 0
	for _, t := range m.EdgeTypes {
		switch t {
		case Covered:
			covered++
		case InducedGraph1, HalfOrphanGraph1, FullOrphanGraph1:
			inducedG1++
		case InducedGraph2, HalfUnalignedGraph2, FullUnalignedGraph2:
			inducedG2++
		}
	}

	var s Scores
	if d := covered + inducedG1; d > 0 {
		s.EC = float64(covered) / float64(d)
	}
	if d := covered + inducedG1 + inducedG2; d > 0 {
		s.S3 = float64(covered) / float64(d)
	}
	if d := covered + inducedG2; d > 0 {
		s.ICS = float64(covered) / float64(d)
	}

	return s
}

// AngularSimilarity implements spec.md §4.7's angular similarity: 0 when
// either vector has zero norm, else 1 - arccos(clamp(cos, -1, 1))/(pi/2).
func AngularSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrVectorLenMismatch
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	na, nb = math.Sqrt(na), math.Sqrt(nb)
	if na == 0 || nb == 0 {
		return 0, nil
	}
	cos := dot / (na * nb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return 1 - math.Acos(cos)/(math.Pi/2), nil
}

// NGS is the angular similarity between main and perfect node-group ratio
// vectors (spec.md §4.7/§4.8).
func NGS(main, perfect *Merged) (float64, error) {
	return AngularSimilarity(GroupRatioVector(main), GroupRatioVector(perfect))
}

// edgeTypeRatioVector builds the fixed 7-dim EdgeType ratio vector for LGS.
func edgeTypeRatioVector(m *Merged) []float64 {
	counts := make([]float64, edgeTypeCount)
	for _, t := range m.EdgeTypes {
		counts[t]++
	}
	total := float64(len(m.EdgeTypes))
	if total == 0 {
		return counts
	}
	for i := range counts {
		counts[i] /= total
	}

	return counts
}

// LGS is the angular similarity between main and perfect edge-type ratio
// vectors, one entry per EdgeType in AllEdgeTypes order.
func LGS(main, perfect *Merged) (float64, error) {
	return AngularSimilarity(edgeTypeRatioVector(main), edgeTypeRatioVector(perfect))
}

// JS is the average Jaccard similarity of aligned node neighbourhoods
// (spec.md §4.7): for each g with both align[g] and perfect[g] defined,
// translate one side's neighbour set via the perfect map and compare
// against the other side's neighbour set in its own network, picking the
// translation direction by which network is smaller.
func JS(g1, g2 *core.Network, align, perfect *AlignmentMap) (float64, error) {
	if g1 == nil || g2 == nil {
		return 0, ErrNetworkNil
	}
	if align == nil || perfect == nil {
		return 0, ErrNoPerfectMap
	}

	translateForward := g1.NodeCount() < g2.NodeCount()

	var total float64
	n := 0
	for _, p := range align.Pairs() {
		g, a := p.G1, p.G2
		if _, ok := perfect.Forward(g); !ok {
			continue
		}

		var setA, setB map[string]bool
		var err error
		if translateForward {
			setA, err = translatedNeighbors(g1, g, perfect, true)
			if err != nil {
				continue
			}
			setB, err = neighborSet(g2, a)
			if err != nil {
				continue
			}
		} else {
			setA, err = neighborSet(g1, g)
			if err != nil {
				continue
			}
			setB, err = translatedNeighbors(g2, a, perfect, false)
			if err != nil {
				continue
			}
		}

		total += jaccard(setA, setB)
		n++
	}
	if n == 0 {
		return 0, nil
	}

	return total / float64(n), nil
}

func neighborSet(net *core.Network, id string) (map[string]bool, error) {
	ns, err := net.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(ns))
	for _, n := range ns {
		out[n] = true
	}

	return out, nil
}

// translatedNeighbors returns id's neighbour set with every member
// translated through perfect: forward (G1→G2) when fromG1, reverse
// (G2→G1) otherwise. Untranslatable neighbours are dropped.
func translatedNeighbors(net *core.Network, id string, perfect *AlignmentMap, fromG1 bool) (map[string]bool, error) {
	raw, err := neighborSet(net, id)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(raw))
	for nb := range raw {
		var translated string
		var ok bool
		if fromG1 {
			translated, ok = perfect.Forward(nb)
		} else {
			translated, ok = perfect.Reverse(nb)
		}
		if ok {
			out[translated] = true
		}
	}

	return out, nil
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	inter := 0
	for k := range a {
		if b[k] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}
