package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/ioformat"
	"github.com/gobiofabric/biofabric/layout"
)

func TestParseSIFBasic(t *testing.T) {
	input := "A\tpp\tB\nB\tpp\tC\nA\tpp\tB\nB\tpp\tA\nD\n"
	net, stats, err := ioformat.ParseSIF(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 5, stats.LinesRead)

	nonShadow := 0
	for _, e := range net.Edges() {
		if !e.IsShadow {
			nonShadow++
		}
	}
	assert.Equal(t, 2, nonShadow)
	assert.True(t, net.ContainsNode("D"))
}

func TestParseSIFBadArityRecorded(t *testing.T) {
	input := "A\tB\tC\tD\n"
	_, stats, err := ioformat.ParseSIF(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, stats.BadLines, 1)
	assert.Equal(t, 1, stats.BadLines[0].Line)
}

func TestParseSIFQuotedTokens(t *testing.T) {
	input := "\"Gene A\"\tpp\t'Gene B'\n"
	net, _, err := ioformat.ParseSIF(strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, net.ContainsNode("Gene A"))
	assert.True(t, net.ContainsNode("Gene B"))
}

func TestParseGWRoundTrip(t *testing.T) {
	gw := "LEDA.GRAPH\nstring\nint\n-2\n2\n|{A}|\n|{B}|\n1\n1 2 1 |{pp}|\n"
	net, stats, err := ioformat.ParseGW(strings.NewReader(gw))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.NodesCreated)
	assert.Equal(t, 1, stats.EdgesCreated)

	var buf strings.Builder
	require.NoError(t, ioformat.WriteGW(net, &buf))
	assert.Contains(t, buf.String(), "LEDA.GRAPH")
}

func TestParseGWOutOfRangeIndexRecorded(t *testing.T) {
	gw := "LEDA.GRAPH\nstring\nint\n-2\n1\n|{A}|\n1\n1 2 1 |{pp}|\n"
	_, stats, err := ioformat.ParseGW(strings.NewReader(gw))
	require.NoError(t, err)
	require.Len(t, stats.BadLines, 1)
}

func TestParseAlignmentFileDuplicateKeyErrors(t *testing.T) {
	input := "A X\nA Y\n"
	_, _, err := ioformat.ParseAlignmentFile(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A")
}

func TestParseAlignmentFileSkipsComments(t *testing.T) {
	input := "# header\nA X\n\nB Y\n"
	pairs, stats, err := ioformat.ParseAlignmentFile(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "A", pairs[0].G1)
	assert.Equal(t, 4, stats.LinesRead)
}

func TestParseNOAContiguousPermutation(t *testing.T) {
	input := "Node Row\nA = 1\nB = 0\nC = 2\n"
	order, _, err := ioformat.ParseNOA(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, order)
}

func TestParseNOARejectsGap(t *testing.T) {
	input := "Node Row\nA = 0\nB = 2\n"
	_, _, err := ioformat.ParseNOA(strings.NewReader(input))
	require.Error(t, err)
}

func TestParseEDALinesAndFixedOrder(t *testing.T) {
	input := "Link Column\nA (pp) B = 0\nB shdw(pp) A = 1\n"
	entries, stats, err := ioformat.ParseEDA(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2, stats.EdgesCreated)
	assert.False(t, entries[0].IsShadow)
	assert.True(t, entries[1].IsShadow)

	nl, err := layout.FromFixedLinkOrder([]string{"A", "B"}, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, nl.ColumnCount)
}

func TestParseAttributeFileAppliesValuesAndSkipsEmptyCells(t *testing.T) {
	net := core.NewNetwork()
	net.AddLoneNode("Gene A")
	net.AddLoneNode("Gene B")

	input := "node_id\tweight\tcolor\nGene A\t1.5\t\nGene B\t\tblue\n"
	stats, err := ioformat.ParseAttributeFile(strings.NewReader(input), net)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.NodesCreated)

	a, err := net.GetNode("Gene A")
	require.NoError(t, err)
	assert.Equal(t, "1.5", a.Attrs["weight"])
	_, hasColor := a.Attrs["color"]
	assert.False(t, hasColor)

	b, err := net.GetNode("Gene B")
	require.NoError(t, err)
	assert.Equal(t, "blue", b.Attrs["color"])
}

func TestParseAttributeFileRejectsMissingNodeIDColumn(t *testing.T) {
	net := core.NewNetwork()
	input := "label\tweight\nA\t1\n"
	_, err := ioformat.ParseAttributeFile(strings.NewReader(input), net)
	assert.ErrorIs(t, err, ioformat.ErrNoNodeIDColumn)
}

func TestParseAnnotationFileSkipsCommentsAndBlank(t *testing.T) {
	input := "# comment\nCluster1\t0\t10\t0\t#FF0000FF\n\nCluster2\t11\t20\t1\t#00FF00FF\n"
	records, stats, err := ioformat.ParseAnnotationFile(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Cluster1", records[0].Name)
	assert.Equal(t, 10, records[0].End)
	assert.Equal(t, 4, stats.LinesRead)
}

func TestParseAnnotationFileBadArityRecorded(t *testing.T) {
	input := "Cluster1\t0\t10\n"
	_, stats, err := ioformat.ParseAnnotationFile(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, stats.BadLines, 1)
}
