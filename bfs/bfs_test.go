package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobiofabric/biofabric/bfs"
	"github.com/gobiofabric/biofabric/core"
)

func TestBFSLexicographicOrder(t *testing.T) {
	n := core.NewNetwork()
	n.AddLink("A", "C", "r", core.Unspecified, false)
	n.AddLink("A", "B", "r", core.Unspecified, false)

	res, err := bfs.BFS(n, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

func TestBFSOrderedByRank(t *testing.T) {
	n := core.NewNetwork()
	n.AddLink("A", "B", "r", core.Unspecified, false)
	n.AddLink("A", "C", "r", core.Unspecified, false)
	n.AddLink("C", "D", "r", core.Unspecified, false) // C has higher degree

	rank := func(id string) int {
		d, _ := n.DegreeNonShadow(id)
		return -d // want degree descending
	}
	res, err := bfs.BFSOrdered(n, "A", rank)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B", "D"}, res.Order)
}

func TestBFSStartNotFound(t *testing.T) {
	n := core.NewNetwork()
	n.AddNode("A")
	_, err := bfs.BFS(n, "Z")
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}
