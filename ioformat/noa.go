package ioformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gobiofabric/biofabric/layout"
)

// ParseNOA implements spec.md §4.3's NOA reader: header `Node Row`, then
// `name = row` lines in any order. The row numbers must form a contiguous
// 0..N-1 permutation; violations are a hard error since a gapped or
// duplicated row assignment cannot be turned into a row order at all.
func ParseNOA(r io.Reader) ([]string, ImportStats, error) {
	var stats ImportStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	header, ok := nextNonEmpty(scanner, &stats, &lineNo)
	if !ok {
		return nil, stats, ErrEmptyInput
	}
	if strings.TrimSpace(header) != "Node Row" {
		return nil, stats, &LineError{Line: lineNo, Text: header, Reason: "expected 'Node Row' header"}
	}

	byRow := make(map[int]string)
	for scanner.Scan() {
		lineNo++
		stats.LinesRead++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		idx := strings.LastIndex(trimmed, "=")
		if idx < 0 {
			stats.recordBad(lineNo, line, "expected 'name = row'")
			continue
		}
		name := strings.TrimSpace(trimmed[:idx])
		rowStr := strings.TrimSpace(trimmed[idx+1:])
		row, err := strconv.Atoi(rowStr)
		if name == "" || err != nil {
			stats.recordBad(lineNo, line, "malformed node row line")
			continue
		}
		if existing, dup := byRow[row]; dup {
			return nil, stats, &LineError{Line: lineNo, Text: line, Reason: "row " + rowStr + " already assigned to " + existing}
		}
		byRow[row] = name
		stats.NodesCreated++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	order := make([]string, len(byRow))
	for row, name := range byRow {
		if row < 0 || row >= len(byRow) {
			return nil, stats, ErrRowsNotContiguous
		}
		order[row] = name
	}

	return order, stats, nil
}

// nextNonEmpty scans forward to the first non-blank line, bumping
// stats.LinesRead and *lineNo for every line consumed (including blanks).
func nextNonEmpty(scanner *bufio.Scanner, stats *ImportStats, lineNo *int) (string, bool) {
	for scanner.Scan() {
		*lineNo++
		stats.LinesRead++
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}

	return "", false
}

// WriteNOA writes nl's row assignment as a NOA file: header `Node Row`
// followed by one `name = row` line per node in row order.
func WriteNOA(nl *layout.NetworkLayout, w io.Writer) error {
	if nl == nil {
		return ErrLayoutNil
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("Node Row\n"); err != nil {
		return err
	}
	for row, id := range nl.RowOrder {
		name := id
		if nd, ok := nl.Nodes[id]; ok && nd.DisplayName != "" {
			name = nd.DisplayName
		}
		if _, err := bw.WriteString(name + " = " + strconv.Itoa(row) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
