package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/dfs"
)

func chain(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	n.AddLink("A", "B", "r", core.Directed, false)
	n.AddLink("B", "C", "r", core.Directed, false)

	return n
}

func TestTopologicalSortAcyclic(t *testing.T) {
	n := chain(t)
	order, err := dfs.TopologicalSort(n, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

func TestTopologicalSortCycle(t *testing.T) {
	n := chain(t)
	n.AddLink("C", "A", "r", core.Directed, false)
	order, err := dfs.TopologicalSort(n, false)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestFindCycle(t *testing.T) {
	n := chain(t)
	n.AddLink("C", "A", "r", core.Directed, false)
	cycle, err := dfs.FindCycle(n)
	require.NoError(t, err)
	require.NotNil(t, cycle)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
}

func TestFindCycleAcyclic(t *testing.T) {
	n := chain(t)
	cycle, err := dfs.FindCycle(n)
	require.NoError(t, err)
	assert.Nil(t, cycle)
}

func TestDagLevels(t *testing.T) {
	n := chain(t)
	levels, err := dfs.DagLevels(n)
	require.NoError(t, err)
	assert.Equal(t, 0, levels["A"])
	assert.Equal(t, 1, levels["B"])
	assert.Equal(t, 2, levels["C"])
}

func TestTopologicalSortCompressLevels(t *testing.T) {
	n := core.NewNetwork()
	n.AddLink("A", "C", "r", core.Directed, false)
	n.AddLink("B", "C", "r", core.Directed, false)
	order, err := dfs.TopologicalSort(n, true)
	require.NoError(t, err)
	require.Len(t, order, 3)
	assert.Equal(t, "C", order[2])
}
