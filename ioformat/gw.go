package ioformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gobiofabric/biofabric/core"
)

// ParseGW implements spec.md §4.3's GW (LEDA.GRAPH) reader: the
// `LEDA.GRAPH` header, two ignored type lines, a direction flag, an N
// label block, and an M edge block of 1-based `src tgt rev |{label}|`
// lines. Out-of-range indices are recorded as bad lines rather than
// aborting the parse; a missing `|{...}|` delimiter yields an empty label.
func ParseGW(r io.Reader) (*core.Network, ImportStats, error) {
	var stats ImportStats

	lines, err := readAllLines(r, &stats)
	if err != nil {
		return nil, stats, err
	}
	if len(lines) == 0 {
		return nil, stats, ErrEmptyInput
	}

	pos := 0
	next := func() (string, bool) {
		if pos >= len(lines) {
			return "", false
		}
		l := lines[pos]
		pos++

		return l, true
	}

	header, ok := next()
	if !ok || strings.TrimSpace(header) != "LEDA.GRAPH" {
		return nil, stats, &LineError{Line: 1, Text: header, Reason: "expected LEDA.GRAPH header"}
	}

	// Two type lines, ignored.
	if _, ok := next(); !ok {
		return nil, stats, &LineError{Line: pos, Reason: "missing first type line"}
	}
	if _, ok := next(); !ok {
		return nil, stats, &LineError{Line: pos, Reason: "missing second type line"}
	}

	dirLine, ok := next()
	if !ok {
		return nil, stats, &LineError{Line: pos, Reason: "missing direction flag"}
	}
	directed := strings.TrimSpace(dirLine) == "-1"

	nLine, ok := next()
	if !ok {
		return nil, stats, &LineError{Line: pos, Reason: "missing node count"}
	}
	n, err := strconv.Atoi(strings.TrimSpace(nLine))
	if err != nil || n < 0 {
		return nil, stats, &LineError{Line: pos, Text: nLine, Reason: "node count is not a non-negative integer"}
	}

	net := core.NewNetwork()
	labels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line, ok := next()
		if !ok {
			stats.recordBad(pos, "", "truncated node label block")
			break
		}
		label := gwLabel(line)
		net.AddLoneNode(label)
		stats.NodesCreated++
		labels = append(labels, label)
	}

	mLine, ok := next()
	if !ok {
		return nil, stats, &LineError{Line: pos, Reason: "missing edge count"}
	}
	m, err := strconv.Atoi(strings.TrimSpace(mLine))
	if err != nil || m < 0 {
		return nil, stats, &LineError{Line: pos, Text: mLine, Reason: "edge count is not a non-negative integer"}
	}

	directedness := core.Undirected
	if directed {
		directedness = core.Directed
	}

	for i := 0; i < m; i++ {
		lineNo := pos + 1
		line, ok := next()
		if !ok {
			stats.recordBad(lineNo, "", "truncated edge block")
			break
		}

		fields := strings.SplitN(strings.TrimSpace(line), " ", 3)
		if len(fields) < 2 {
			stats.recordBad(lineNo, line, "edge line needs at least source and target indices")
			continue
		}
		srcIdx, errSrc := strconv.Atoi(fields[0])
		tgtIdx, errTgt := strconv.Atoi(fields[1])
		if errSrc != nil || errTgt != nil {
			stats.recordBad(lineNo, line, "edge source/target index is not an integer")
			continue
		}
		if srcIdx < 1 || srcIdx > n || tgtIdx < 1 || tgtIdx > n {
			stats.recordBad(lineNo, line, "edge index out of range")
			continue
		}

		relation := "default"
		if len(fields) == 3 {
			if label := gwLabel(fields[2]); label != "" {
				relation = label
			}
		}

		src, tgt := labels[srcIdx-1], labels[tgtIdx-1]
		if _, err := net.AddLink(src, tgt, relation, directedness, false); err == nil {
			stats.EdgesCreated++
		}
	}

	net.GenerateShadows()

	return net, stats, nil
}

// gwLabel extracts the label text from a GW `|{label}|` delimiter,
// returning an empty string when the delimiters are missing.
func gwLabel(s string) string {
	start := strings.Index(s, "|{")
	end := strings.LastIndex(s, "}|")
	if start < 0 || end < start+2 {
		return ""
	}

	return s[start+2 : end]
}

// readAllLines reads every line of r and bumps stats.LinesRead per line.
func readAllLines(r io.Reader, stats *ImportStats) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		stats.LinesRead++
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

// WriteGW writes net in LEDA.GRAPH form: direction flag -1 when any
// non-shadow edge is directed, else -2; node labels in network node
// order; non-shadow edges in edge order, each with its own 1-based position
// in that edge list as the reversal index (shadow edges are not written).
func WriteGW(net *core.Network, w io.Writer) error {
	if net == nil {
		return ErrNetworkNil
	}

	bw := bufio.NewWriter(w)
	nodes := net.NodeOrder()
	indexOf := make(map[string]int, len(nodes))
	for i, id := range nodes {
		indexOf[id] = i + 1
	}

	direction := "-2"
	for _, e := range net.Edges() {
		if !e.IsShadow && e.Directed == core.Directed {
			direction = "-1"
			break
		}
	}

	lines := []string{"LEDA.GRAPH", "string", "int", direction, strconv.Itoa(len(nodes))}
	for _, id := range nodes {
		lines = append(lines, "|{"+displayOf(net, id)+"}|")
	}

	nonShadow := make([]*core.Edge, 0, net.EdgeCount())
	for _, e := range net.Edges() {
		if !e.IsShadow {
			nonShadow = append(nonShadow, e)
		}
	}
	lines = append(lines, strconv.Itoa(len(nonShadow)))
	for i, e := range nonShadow {
		rev := i + 1
		lines = append(lines, strconv.Itoa(indexOf[e.Source])+" "+strconv.Itoa(indexOf[e.Target])+" "+strconv.Itoa(rev)+" |{"+e.Relation+"}|")
	}

	for _, l := range lines {
		if _, err := bw.WriteString(l + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
