package alignment

import "errors"

var (
	ErrNetworkNil        = errors.New("alignment: network is nil")
	ErrEmptyAlignment    = errors.New("alignment: alignment map is empty")
	ErrNodeNotMerged     = errors.New("alignment: node is not present in the merged network")
	ErrNoPerfectMap      = errors.New("alignment: operation requires a perfect map")
	ErrVectorLenMismatch = errors.New("alignment: ratio vectors must have equal length")
)
