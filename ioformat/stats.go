package ioformat

// BadLine records one line a parser could not interpret, without
// aborting the rest of the parse.
type BadLine struct {
	Line   int
	Text   string
	Reason string
}

// ImportStats summarizes what a parse pass did: how much it consumed
// successfully and which lines it had to skip.
type ImportStats struct {
	LinesRead    int
	NodesCreated int
	EdgesCreated int
	BadLines     []BadLine
}

func (s *ImportStats) recordBad(line int, text, reason string) {
	s.BadLines = append(s.BadLines, BadLine{Line: line, Text: text, Reason: reason})
}
