package ioformat

import (
	"bufio"
	"io"
	"strings"

	"github.com/gobiofabric/biofabric/core"
)

const utf8BOM = "﻿"

// ParseAttributeFile implements spec.md §4.3's attribute-file reader: a
// BOM-tolerant header row whose first column is `node_id` / `node` / `id`
// (case-insensitive) naming the remaining columns as unique attribute
// keys, then one data row per node. Rows may be TAB- or
// whitespace-delimited; values may be quoted; an empty cell leaves the
// attribute absent rather than setting it to "". Rows naming a node not
// present in net are recorded as bad lines, not fatal.
func ParseAttributeFile(r io.Reader, net *core.Network) (ImportStats, error) {
	var stats ImportStats
	if net == nil {
		return stats, ErrNetworkNil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	headerLine, ok := nextNonEmpty(scanner, &stats, &lineNo)
	if !ok {
		return stats, ErrEmptyInput
	}
	headerLine = strings.TrimPrefix(headerLine, utf8BOM)

	headerFields := attributeTokenize(headerLine)
	if len(headerFields) == 0 {
		return stats, ErrBadHeader
	}
	switch strings.ToLower(headerFields[0]) {
	case "node_id", "node", "id":
	default:
		return stats, ErrNoNodeIDColumn
	}

	attrNames := headerFields[1:]
	seenName := make(map[string]bool, len(attrNames))
	for _, name := range attrNames {
		key := strings.ToLower(name)
		if seenName[key] {
			return stats, ErrBadHeader
		}
		seenName[key] = true
	}

	for scanner.Scan() {
		lineNo++
		stats.LinesRead++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := attributeTokenizeRaw(line)
		if len(fields) == 0 {
			continue
		}
		nodeID := strings.TrimSpace(stripQuotes(strings.TrimSpace(fields[0])))
		node, err := net.GetNode(nodeID)
		if err != nil {
			stats.recordBad(lineNo, line, "unknown node: "+nodeID)
			continue
		}

		values := fields[1:]
		if len(values) > len(attrNames) {
			stats.recordBad(lineNo, line, "more value columns than attribute names")
			values = values[:len(attrNames)]
		}
		if node.Attrs == nil {
			node.Attrs = make(map[string]string)
		}
		for i, raw := range values {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" {
				continue
			}
			node.Attrs[attrNames[i]] = stripQuotes(trimmed)
		}
		stats.NodesCreated++
	}
	if err := scanner.Err(); err != nil {
		return stats, err
	}

	return stats, nil
}

// attributeTokenize splits a header line the same way attributeTokenizeRaw
// does, but additionally trims and quote-strips each resulting token since
// header names never carry meaningful surrounding whitespace.
func attributeTokenize(line string) []string {
	raw := attributeTokenizeRaw(line)
	out := make([]string, len(raw))
	for i, tok := range raw {
		out[i] = stripQuotes(strings.TrimSpace(tok))
	}

	return out
}

// attributeTokenizeRaw splits on TAB when present (preserving empty cells
// between consecutive TABs), else falls back to whitespace splitting
// (which cannot represent empty cells, since there are no TABs to anchor
// them).
func attributeTokenizeRaw(line string) []string {
	if strings.Contains(line, "\t") {
		return strings.Split(line, "\t")
	}

	return strings.Fields(line)
}

// WriteAttributeFile writes one attribute file from net: header row
// `node_id` followed by the given attribute names in order, then one
// TAB-delimited row per node in network node order. Nodes missing a
// given attribute emit an empty cell.
func WriteAttributeFile(net *core.Network, attrNames []string, w io.Writer) error {
	if net == nil {
		return ErrNetworkNil
	}

	bw := bufio.NewWriter(w)
	header := append([]string{"node_id"}, attrNames...)
	if _, err := bw.WriteString(strings.Join(header, "\t") + "\n"); err != nil {
		return err
	}

	for _, id := range net.NodeOrder() {
		node, err := net.GetNode(id)
		if err != nil {
			continue
		}
		row := make([]string, 0, len(attrNames)+1)
		row = append(row, node.Display)
		for _, name := range attrNames {
			row = append(row, node.Attrs[name])
		}
		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
