package ioformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gobiofabric/biofabric/layout"
)

// ParseEDA implements spec.md §4.3's EDA reader: header `Link Column`,
// then one line per edge, either `SRC (REL) TGT = COL` (non-shadow) or
// `SRC shdw(REL) TGT = COL` (shadow).
func ParseEDA(r io.Reader) ([]layout.FixedEdgeColumn, ImportStats, error) {
	var stats ImportStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	header, ok := nextNonEmpty(scanner, &stats, &lineNo)
	if !ok {
		return nil, stats, ErrEmptyInput
	}
	if strings.TrimSpace(header) != "Link Column" {
		return nil, stats, &LineError{Line: lineNo, Text: header, Reason: "expected 'Link Column' header"}
	}

	var entries []layout.FixedEdgeColumn
	for scanner.Scan() {
		lineNo++
		stats.LinesRead++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		entry, ok := parseEDALine(trimmed)
		if !ok {
			stats.recordBad(lineNo, line, "expected 'SRC (REL) TGT = COL' or 'SRC shdw(REL) TGT = COL'")
			continue
		}
		entries = append(entries, entry)
		stats.EdgesCreated++
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	return entries, stats, nil
}

func parseEDALine(line string) (layout.FixedEdgeColumn, bool) {
	open := strings.Index(line, "(")
	closeParen := strings.Index(line, ")")
	eq := strings.LastIndex(line, "=")
	if open < 0 || closeParen < open || eq < closeParen {
		return layout.FixedEdgeColumn{}, false
	}

	prefix := strings.TrimSpace(line[:open])
	relation := line[open+1 : closeParen]
	target := strings.TrimSpace(line[closeParen+1 : eq])
	colStr := strings.TrimSpace(line[eq+1:])

	col, err := strconv.Atoi(colStr)
	if err != nil || target == "" || prefix == "" {
		return layout.FixedEdgeColumn{}, false
	}

	isShadow := false
	source := prefix
	if strings.HasSuffix(prefix, "shdw") {
		isShadow = true
		source = strings.TrimSpace(strings.TrimSuffix(prefix, "shdw"))
	}
	if source == "" {
		return layout.FixedEdgeColumn{}, false
	}

	return layout.FixedEdgeColumn{
		Source:   source,
		Target:   target,
		Relation: relation,
		IsShadow: isShadow,
		Column:   col,
	}, true
}

// WriteEDA writes nl's link column assignment as an EDA file: header
// `Link Column` followed by one formatted line per link, in link order.
func WriteEDA(nl *layout.NetworkLayout, w io.Writer) error {
	if nl == nil {
		return ErrLayoutNil
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("Link Column\n"); err != nil {
		return err
	}
	name := func(id string) string {
		if nd, ok := nl.Nodes[id]; ok && nd.DisplayName != "" {
			return nd.DisplayName
		}

		return id
	}
	for _, ll := range nl.Links {
		rel := "(" + ll.Relation + ")"
		if ll.IsShadow {
			rel = "shdw" + rel
		}
		line := name(ll.Source) + " " + rel + " " + name(ll.Target) + " = " + strconv.Itoa(ll.Column)
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
