package session

import "errors"

var (
	ErrNetworkNil     = errors.New("session: network is nil")
	ErrEmptyNodeSet   = errors.New("session: extraction node set is empty")
	ErrBadBIFRoot     = errors.New("session: root element is not <network>")
	ErrUnknownBIFNode = errors.New("session: link references a node id not present in <nodes>")
)
