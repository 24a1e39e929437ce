package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobiofabric/biofabric/core"
)

func triangle(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	_, err := n.AddLink("A", "B", "r", core.Unspecified, false)
	require.NoError(t, err)
	_, err = n.AddLink("B", "C", "r", core.Unspecified, false)
	require.NoError(t, err)
	_, err = n.AddLink("A", "C", "r", core.Unspecified, false)
	require.NoError(t, err)

	return n
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, "GENEA", core.NormalizeID("Gene A"))
	assert.Equal(t, "GENEA", core.NormalizeID("geneA"))
}

func TestAddNodePreservesFirstSpelling(t *testing.T) {
	n := core.NewNetwork()
	id := n.AddNode("Gene A")
	n.AddNode("GENE A")
	node, err := n.GetNode("gene a")
	require.NoError(t, err)
	assert.Equal(t, id, node.ID)
	assert.Equal(t, "Gene A", node.Display)
}

func TestShadowIdempotence(t *testing.T) {
	n := triangle(t)
	first := n.GenerateShadows()
	assert.Equal(t, 3, first)
	assert.Equal(t, 6, n.EdgeCount())

	second := n.GenerateShadows()
	assert.Equal(t, 0, second)
	assert.Equal(t, 6, n.EdgeCount())
}

func TestSelfLoopNeverShadowed(t *testing.T) {
	n := core.NewNetwork()
	n.AddLink("A", "A", "r", core.Unspecified, false)
	created := n.GenerateShadows()
	assert.Equal(t, 0, created)
	assert.Equal(t, 1, n.EdgeCount())
}

func TestDegreeAndNeighbors(t *testing.T) {
	n := triangle(t)
	n.GenerateShadows()

	deg, err := n.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 4, deg) // 2 primary + 2 shadow

	degNoShadow, err := n.DegreeNonShadow("A")
	require.NoError(t, err)
	assert.Equal(t, 2, degNoShadow)

	nbrs, err := n.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbrs)
}

func TestLoneNodes(t *testing.T) {
	n := core.NewNetwork()
	n.AddLoneNode("Z")
	n.AddLink("A", "B", "r", core.Unspecified, false)
	assert.Equal(t, []string{"Z"}, n.LoneNodes())
	assert.True(t, n.ContainsNode("A"))
}

func TestCompareNodesJaccard(t *testing.T) {
	n := triangle(t)
	cmp, err := n.CompareNodes("A", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, cmp.Shared)
	assert.InDelta(t, 1.0/3.0, cmp.Jaccard, 1e-9)
}

func TestCompareNodesEmptyBothIdentical(t *testing.T) {
	n := core.NewNetwork()
	n.AddLoneNode("A")
	n.AddLoneNode("B")
	cmp, err := n.CompareNodes("A", "B")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cmp.Jaccard, 1e-9)
}

func TestExtractSubnetwork(t *testing.T) {
	n := core.NewNetwork()
	ids := []string{"N0", "N1", "N2", "N3", "N4", "N5", "N6", "N7", "N8", "N9"}
	for i := 0; i < len(ids)-1; i++ {
		n.AddLink(ids[i], ids[i+1], "r", core.Unspecified, false)
	}

	sub := n.ExtractSubnetwork([]string{"N0", "N2", "N4"})
	assert.Equal(t, 3, sub.NodeCount())
	assert.Equal(t, 0, sub.EdgeCount())
	assert.Equal(t, []string{"N0", "N2", "N4"}, sub.LoneNodes())
}

func TestExtractSubnetworkKeepsSurvivingEdgesAndShadows(t *testing.T) {
	n := triangle(t)
	n.GenerateShadows()
	sub := n.ExtractSubnetwork([]string{"A", "B"})
	assert.Equal(t, 2, sub.NodeCount())
	assert.Equal(t, 2, sub.EdgeCount()) // A-B primary + its shadow
}

func TestIsDAG(t *testing.T) {
	n := core.NewNetwork()
	n.AddLink("A", "B", "r", core.Directed, false)
	n.AddLink("B", "C", "r", core.Directed, false)
	assert.True(t, n.IsDAG())

	n.AddLink("C", "A", "r", core.Directed, false)
	assert.False(t, n.IsDAG())
}

func TestIsBipartite(t *testing.T) {
	n := core.NewNetwork()
	n.AddLink("A", "X", "r", core.Unspecified, false)
	n.AddLink("B", "X", "r", core.Unspecified, false)
	assert.True(t, n.IsBipartite())

	n2 := triangle(t) // odd cycle
	assert.False(t, n2.IsBipartite())
}

func TestFirstNeighbors(t *testing.T) {
	n := triangle(t)
	n.AddLink("C", "D", "r", core.Unspecified, false)
	fn, err := n.FirstNeighbors([]string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, fn)
}

func TestNHopNeighborhood(t *testing.T) {
	n := core.NewNetwork()
	n.AddLink("A", "B", "r", core.Unspecified, false)
	n.AddLink("B", "C", "r", core.Unspecified, false)
	n.AddLink("C", "D", "r", core.Unspecified, false)

	one, err := n.NHopNeighborhood("A", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, one)

	two, err := n.NHopNeighborhood("A", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, two)
}
