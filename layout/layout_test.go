package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/layout"
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
	n.GenerateShadows()

	return n
}

func TestDefaultLayoutTriangleRows(t *testing.T) {
	n := triangle(t)
	order, _, err := layout.LayoutNodes(n, layout.KindDefault, layout.Params{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestEdgeLayoutTriangleColumnCounts(t *testing.T) {
	n := triangle(t)
	order, _, err := layout.LayoutNodes(n, layout.KindDefault, layout.Params{})
	require.NoError(t, err)

	nl, err := layout.LayoutEdges(n, order, layout.Params{})
	require.NoError(t, err)

	assert.Equal(t, 6, nl.ColumnCount)
	assert.Equal(t, 3, nl.ColumnCountNoShadows)
	assert.Len(t, nl.Links, 6)
}

func TestEdgeLayoutColumnBijection(t *testing.T) {
	n := triangle(t)
	order, _, err := layout.LayoutNodes(n, layout.KindDefault, layout.Params{})
	require.NoError(t, err)
	nl, err := layout.LayoutEdges(n, order, layout.Params{})
	require.NoError(t, err)

	seenShadow := make(map[int]bool)
	seenNoShadow := make(map[int]bool)
	for _, ll := range nl.Links {
		assert.False(t, seenShadow[ll.Column], "shadow-on column reused: %d", ll.Column)
		seenShadow[ll.Column] = true
		if ll.HasColumnNoShadow {
			assert.False(t, seenNoShadow[ll.ColumnNoShadow], "shadow-off column reused: %d", ll.ColumnNoShadow)
			seenNoShadow[ll.ColumnNoShadow] = true
		}
	}
	assert.Len(t, seenShadow, nl.ColumnCount)
	assert.Len(t, seenNoShadow, nl.ColumnCountNoShadows)
}

func TestEdgeLayoutSpanConsistency(t *testing.T) {
	n := triangle(t)
	order, _, err := layout.LayoutNodes(n, layout.KindDefault, layout.Params{})
	require.NoError(t, err)
	nl, err := layout.LayoutEdges(n, order, layout.Params{})
	require.NoError(t, err)

	minMax := make(map[string][2]int)
	for _, ll := range nl.Links {
		for _, id := range []string{ll.Source, ll.Target} {
			mm, ok := minMax[id]
			if !ok {
				mm = [2]int{ll.Column, ll.Column}
			}
			if ll.Column < mm[0] {
				mm[0] = ll.Column
			}
			if ll.Column > mm[1] {
				mm[1] = ll.Column
			}
			minMax[id] = mm
		}
	}
	for id, mm := range minMax {
		nd := nl.Nodes[id]
		assert.Equal(t, mm[0], nd.ColSpan.Start, "node %s min col", id)
		assert.Equal(t, mm[1], nd.ColSpan.End, "node %s max col", id)
	}
}

func TestSelfLoopOnlyLayout(t *testing.T) {
	n := core.NewNetwork()
	_, err := n.AddLink("A", "A", "r", core.Unspecified, false)
	require.NoError(t, err)
	n.GenerateShadows()

	order, _, err := layout.LayoutNodes(n, layout.KindDefault, layout.Params{})
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, order)

	nl, err := layout.LayoutEdges(n, order, layout.Params{})
	require.NoError(t, err)
	assert.Equal(t, 1, nl.ColumnCount)
	assert.Equal(t, 1, nl.ColumnCountNoShadows)

	nd := nl.Nodes["A"]
	assert.Equal(t, layout.ColumnRange{Start: 0, End: 0}, nd.ColSpan)
	assert.Equal(t, layout.ColumnRange{Start: 0, End: 0}, nd.ColSpanNoShadow)
}

func TestEmptyNetworkLayout(t *testing.T) {
	n := core.NewNetwork()
	order, _, err := layout.LayoutNodes(n, layout.KindDefault, layout.Params{})
	require.NoError(t, err)
	assert.Empty(t, order)

	nl, err := layout.LayoutEdges(n, order, layout.Params{})
	require.NoError(t, err)
	assert.Equal(t, 0, nl.ColumnCount)
	assert.Equal(t, 0, nl.RowCount)
}

func TestDefaultLayoutAppendsLoneNodesLast(t *testing.T) {
	n := core.NewNetwork()
	_, err := n.AddLink("A", "B", "r", core.Unspecified, false)
	require.NoError(t, err)
	n.AddLoneNode("Z")
	n.AddLoneNode("Y")

	order, _, err := layout.LayoutNodes(n, layout.KindDefault, layout.Params{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "Y", "Z"}, order)
}

func TestDefaultLayoutTwoComponentsSeedOrder(t *testing.T) {
	n := core.NewNetwork()
	_, err := n.AddLink("A", "B", "r", core.Unspecified, false)
	require.NoError(t, err)
	_, err = n.AddLink("X", "Y", "r", core.Unspecified, false)
	require.NoError(t, err)

	order, _, err := layout.LayoutNodes(n, layout.KindDefault, layout.Params{})
	require.NoError(t, err)
	// Both components have two degree-1 nodes; highest-degree-then-id
	// seeds the "A" component first since A < X.
	assert.Equal(t, []string{"A", "B", "X", "Y"}, order)
}

func TestHierDAGOrdersByLevel(t *testing.T) {
	n := core.NewNetwork()
	_, err := n.AddLink("A", "B", "r", core.Directed, false)
	require.NoError(t, err)
	_, err = n.AddLink("B", "C", "r", core.Directed, false)
	require.NoError(t, err)
	n.GenerateShadows()

	order, annotations, err := layout.LayoutNodes(n, layout.KindHierDAG, layout.Params{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
	assert.Len(t, annotations, 3)
}

func TestHierDAGRejectsCycle(t *testing.T) {
	n := core.NewNetwork()
	_, err := n.AddLink("A", "B", "r", core.Directed, false)
	require.NoError(t, err)
	_, err = n.AddLink("B", "A", "r", core.Directed, false)
	require.NoError(t, err)

	_, _, err = layout.LayoutNodes(n, layout.KindHierDAG, layout.Params{})
	assert.ErrorIs(t, err, layout.ErrNotDAG)
}

func TestWorldBankHubSpokeOrder(t *testing.T) {
	n := core.NewNetwork()
	_, err := n.AddLink("HUB", "S1", "r", core.Directed, false)
	require.NoError(t, err)
	_, err = n.AddLink("HUB", "S2", "r", core.Directed, false)
	require.NoError(t, err)
	n.GenerateShadows()

	order, _, err := layout.LayoutNodes(n, layout.KindWorldBank, layout.Params{})
	require.NoError(t, err)
	assert.Equal(t, "HUB", order[0])
}

func TestSetLayoutGroupsMembersBySet(t *testing.T) {
	n := core.NewNetwork()
	_, err := n.AddLink("M1", "SETA", "belongs", core.Unspecified, false)
	require.NoError(t, err)
	_, err = n.AddLink("M2", "SETA", "belongs", core.Unspecified, false)
	require.NoError(t, err)

	order, annotations, err := layout.LayoutNodes(n, layout.KindSet, layout.Params{
		Set: layout.SetConfig{Membership: layout.BelongsTo},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"SETA", "M1", "M2"}, order)
	require.Len(t, annotations, 2)
	assert.Equal(t, "SETA", annotations[0].Name)
}

func TestPerNodeEdgeLayoutLinkGroups(t *testing.T) {
	n := core.NewNetwork()
	_, err := n.AddLink("A", "B", "pp", core.Unspecified, false)
	require.NoError(t, err)
	_, err = n.AddLink("A", "C", "pd", core.Unspecified, false)
	require.NoError(t, err)
	n.GenerateShadows()

	order, _, err := layout.LayoutNodes(n, layout.KindDefault, layout.Params{})
	require.NoError(t, err)

	nl, err := layout.LayoutEdges(n, order, layout.Params{
		Mode:       layout.PerNode,
		LinkGroups: []string{"pp", "pd"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, nl.ColumnCount)
}
