package ioformat

import (
	"bufio"
	"io"
	"strings"

	"github.com/gobiofabric/biofabric/alignment"
)

// ParseAlignmentFile implements spec.md §4.3's alignment-file reader: two
// whitespace-separated columns per non-empty, non-`#` line, first column
// (G1 id) unique across the file. A duplicate key is a hard error naming
// the offending key, since an alignment map with two targets for one G1
// node cannot be represented.
func ParseAlignmentFile(r io.Reader) ([]alignment.AlignPair, ImportStats, error) {
	var stats ImportStats
	var pairs []alignment.AlignPair
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		stats.LinesRead++
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			stats.recordBad(lineNo, line, "alignment line must have exactly two columns")
			continue
		}

		g1, g2 := fields[0], fields[1]
		key := strings.ToUpper(g1)
		if seen[key] {
			return nil, stats, &LineError{Line: lineNo, Text: line, Reason: "duplicate G1 key: " + g1}
		}
		seen[key] = true

		pairs = append(pairs, alignment.AlignPair{G1: g1, G2: g2})
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	return pairs, stats, nil
}

// WriteAlignmentFile writes pairs as a two-column alignment file, one
// `G1 G2` line per pair in the order provided.
func WriteAlignmentFile(pairs []alignment.AlignPair, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := bw.WriteString(p.G1 + "\t" + p.G2 + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
