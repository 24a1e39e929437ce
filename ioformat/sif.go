package ioformat

import (
	"bufio"
	"io"
	"strings"

	"github.com/gobiofabric/biofabric/core"
)

// ParseSIF implements spec.md §4.3's SIF reader: TAB-first tokenization
// falling back to whitespace, lone-node and source/relation/target line
// shapes, quote stripping, and the dual dedup rule (exact triple, then
// undirected canonical pair).
func ParseSIF(r io.Reader) (*core.Network, ImportStats, error) {
	net := core.NewNetwork()
	var stats ImportStats

	seenExact := make(map[[3]string]bool)
	seenCanonical := make(map[[3]string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		stats.LinesRead++
		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens := sifTokenize(line)
		switch len(tokens) {
		case 1:
			net.AddLoneNode(tokens[0])
			stats.NodesCreated++

		case 3:
			src, rel, tgt := tokens[0], tokens[1], tokens[2]
			id1, id2 := core.NormalizeID(src), core.NormalizeID(tgt)

			exactKey := [3]string{id1, id2, rel}
			if seenExact[exactKey] {
				continue
			}
			seenExact[exactKey] = true

			if id1 != id2 {
				a, b := id1, id2
				if a > b {
					a, b = b, a
				}
				canonKey := [3]string{a, b, rel}
				if seenCanonical[canonKey] {
					continue
				}
				seenCanonical[canonKey] = true
			}

			if _, err := net.AddLink(src, tgt, rel, core.Unspecified, false); err == nil {
				stats.EdgesCreated++
			}

		default:
			stats.recordBad(lineNo, line, "SIF line must have exactly one or three tokens")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}

	net.GenerateShadows()

	return net, stats, nil
}

// sifTokenize splits one SIF line first on TAB; if that yields a single
// token (no TAB present), it re-splits on whitespace. Matching outer
// quotes (" or ') are stripped from each token.
func sifTokenize(line string) []string {
	var raw []string
	if strings.Contains(line, "\t") {
		raw = strings.Split(line, "\t")
	} else {
		raw = strings.Fields(line)
	}

	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, stripQuotes(tok))
	}

	return out
}

func stripQuotes(tok string) string {
	if len(tok) >= 2 {
		first, last := tok[0], tok[len(tok)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return tok[1 : len(tok)-1]
		}
	}

	return tok
}

// WriteSIF writes net's non-shadow edges and lone nodes as SIF, one line
// per edge (TAB-separated) and one per lone node.
func WriteSIF(net *core.Network, w io.Writer) error {
	if net == nil {
		return ErrNetworkNil
	}
	bw := bufio.NewWriter(w)
	for _, e := range net.Edges() {
		if e.IsShadow {
			continue
		}
		src, tgt := displayOf(net, e.Source), displayOf(net, e.Target)
		if _, err := bw.WriteString(src + "\t" + e.Relation + "\t" + tgt + "\n"); err != nil {
			return err
		}
	}
	for _, id := range net.LoneNodes() {
		if _, err := bw.WriteString(displayOf(net, id) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
