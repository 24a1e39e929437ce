package ioformat

import (
	"errors"
	"strconv"
)

var (
	ErrEmptyInput        = errors.New("ioformat: input is empty")
	ErrBadHeader         = errors.New("ioformat: unrecognized header line")
	ErrDuplicateKey      = errors.New("ioformat: duplicate key column value")
	ErrRowsNotContiguous = errors.New("ioformat: row assignments are not a contiguous 0..N-1 permutation")
	ErrNoNodeIDColumn    = errors.New("ioformat: attribute file header has no node_id column")
	ErrNetworkNil        = errors.New("ioformat: network is nil")
	ErrLayoutNil         = errors.New("ioformat: layout is nil")
)

// LineError describes one malformed line encountered while parsing. It
// implements error so it can also be returned directly when a format's
// header or structural framing (not just a data line) is broken.
type LineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *LineError) Error() string {
	return "ioformat: line " + strconv.Itoa(e.Line) + ": " + e.Reason
}
