package cli

import (
	"errors"
	"os"

	"github.com/gobiofabric/biofabric/alignment"
	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/ioformat"
	"github.com/gobiofabric/biofabric/layout"
	"github.com/gobiofabric/biofabric/progress"
	"github.com/gobiofabric/biofabric/session"
)

// ErrRenderUnsupported is returned by the render command: raster rendering
// is on spec.md's explicit non-goal list, so render is a documented
// external-collaborator stub rather than a partial implementation.
var ErrRenderUnsupported = errors.New("cli: render is not implemented (raster rendering is out of scope)")

// ErrUsage is returned by a command's own flag/argument validation (not
// from any library sentinel), classified the same as a user error.
var ErrUsage = errors.New("cli: invalid command usage")

// internalSentinels are library errors documented as programming errors
// (reaching a state a correct caller never reaches), not user-facing
// mistakes, so they map to exit code 2 rather than 1.
var internalSentinels = []error{
	layout.ErrMissingRow,
	core.ErrDuplicateEdge,
}

// userSentinels are every other documented library sentinel: malformed
// input, unmet layout preconditions, inconsistent alignment maps. All map
// to exit code 1 per spec.md §7.
var userSentinels = []error{
	core.ErrEmptyNodeID, core.ErrNodeNotFound, core.ErrSelfLoopShadow, core.ErrNegativeHops,
	layout.ErrNetworkNil, layout.ErrNotDAG, layout.ErrMissingClusterAssignment,
	layout.ErrEmptyControlSet, layout.ErrUnknownNode,
	alignment.ErrNetworkNil, alignment.ErrEmptyAlignment, alignment.ErrNodeNotMerged,
	alignment.ErrNoPerfectMap, alignment.ErrVectorLenMismatch,
	ioformat.ErrEmptyInput, ioformat.ErrBadHeader, ioformat.ErrDuplicateKey,
	ioformat.ErrRowsNotContiguous, ioformat.ErrNoNodeIDColumn, ioformat.ErrNetworkNil,
	ioformat.ErrLayoutNil,
	session.ErrNetworkNil, session.ErrEmptyNodeSet, session.ErrBadBIFRoot, session.ErrUnknownBIFNode,
	progress.ErrCancelled,
	ErrRenderUnsupported, ErrUsage,
}

// ExitCode classifies err into spec.md §6's three exit codes: 0 (success),
// 1 (user error: malformed input, unmet preconditions, bad flags), 2
// (internal: an invariant a correct caller never violates, or an error
// this CLI has no classification for).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	for _, s := range internalSentinels {
		if errors.Is(err, s) {
			return 2
		}
	}
	for _, s := range userSentinels {
		if errors.Is(err, s) {
			return 1
		}
	}

	var lineErr *ioformat.LineError
	if errors.As(err, &lineErr) {
		return 1
	}

	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return 1
	}

	return 2
}
