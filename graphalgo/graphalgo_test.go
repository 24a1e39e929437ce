package graphalgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/graphalgo"
)

func TestNodesByDegree(t *testing.T) {
	n := core.NewNetwork()
	n.AddLink("A", "B", "r", core.Unspecified, false)
	n.AddLink("A", "C", "r", core.Unspecified, false)
	n.AddNode("D")

	ranked, err := graphalgo.NodesByDegree(n)
	require.NoError(t, err)
	assert.Equal(t, "A", ranked[0].ID)
	assert.Equal(t, 2, ranked[0].Degree)
	assert.Equal(t, "D", ranked[len(ranked)-1].ID)
}

func TestConnectedComponentsOrderedBySize(t *testing.T) {
	n := core.NewNetwork()
	n.AddLink("A", "B", "r", core.Unspecified, false)
	n.AddLink("B", "C", "r", core.Unspecified, false)
	n.AddLink("X", "Y", "r", core.Unspecified, false)

	comps, err := graphalgo.ConnectedComponents(n)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Len(t, comps[0].Nodes, 3)
	assert.Len(t, comps[1].Nodes, 2)
}
