package alignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobiofabric/biofabric/core"
)

func buildG1(t *testing.T) *core.Network {
	t.Helper()
	net := core.NewNetwork()
	_, err := net.AddLink("A", "B", "pp", core.Undirected, false)
	require.NoError(t, err)
	_, err = net.AddLink("B", "C", "pp", core.Undirected, false)
	require.NoError(t, err)
	net.GenerateShadows()

	return net
}

func buildG2(t *testing.T) *core.Network {
	t.Helper()
	net := core.NewNetwork()
	_, err := net.AddLink("X", "Y", "pp", core.Undirected, false)
	require.NoError(t, err)
	_, err = net.AddLink("Y", "Z", "pp", core.Undirected, false)
	require.NoError(t, err)
	net.GenerateShadows()

	return net
}

func TestMergeClassifiesNodeColors(t *testing.T) {
	g1, g2 := buildG1(t), buildG2(t)
	align := NewAlignmentMap([]AlignPair{{G1: "A", G2: "X"}, {G1: "B", G2: "Y"}})

	m, err := Merge(g1, g2, align, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, Purple, m.NodeColors["A::X"])
	assert.Equal(t, Purple, m.NodeColors["B::Y"])
	assert.Equal(t, Blue, m.NodeColors["C::"])
	assert.Equal(t, Red, m.NodeColors["::Z"])
}

func TestMergeFoldsCoveredEdge(t *testing.T) {
	g1, g2 := buildG1(t), buildG2(t)
	align := NewAlignmentMap([]AlignPair{{G1: "A", G2: "X"}, {G1: "B", G2: "Y"}})

	m, err := Merge(g1, g2, align, nil, nil)
	require.NoError(t, err)

	covered := 0
	for _, et := range m.EdgeTypes {
		if et == Covered {
			covered++
		}
	}
	assert.Equal(t, 1, covered)
}

func TestTopologicalScoresZeroDivisor(t *testing.T) {
	m := &Merged{EdgeTypes: nil}
	s := TopologicalScores(m)
	assert.Equal(t, 0.0, s.EC)
	assert.Equal(t, 0.0, s.S3)
	assert.Equal(t, 0.0, s.ICS)
}

func TestAngularSimilarityZeroNorm(t *testing.T) {
	sim, err := AngularSimilarity([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)
}

func TestAngularSimilarityIdenticalVectors(t *testing.T) {
	sim, err := AngularSimilarity([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestGroupTagIndexStableDimension(t *testing.T) {
	assert.Len(t, CanonicalGroups, 20)
}

func TestClassifyCyclesWithoutPerfectMap(t *testing.T) {
	align := NewAlignmentMap([]AlignPair{{G1: "A", G2: "X"}})
	entries, counts := ClassifyCycles(align, nil, []string{"A", "B"}, []string{"X", "Y"})
	require.Len(t, entries, 1)
	assert.Equal(t, IncorrectSingleton, entries[0].Case)
	assert.Equal(t, 1, counts[IncorrectSingleton])
}

func TestClassifyCyclesCorrectSingleton(t *testing.T) {
	align := NewAlignmentMap([]AlignPair{{G1: "A", G2: "X"}})
	perfect := NewAlignmentMap([]AlignPair{{G1: "A", G2: "X"}})
	entries, counts := ClassifyCycles(align, perfect, []string{"A"}, []string{"X"})
	require.Len(t, entries, 1)
	assert.Equal(t, CorrectSingleton, entries[0].Case)
	assert.Equal(t, 1, counts[CorrectSingleton])
}
