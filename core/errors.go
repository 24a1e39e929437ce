package core

import "errors"

// Sentinel errors for Network operations. All are Internal/Parse-kind per
// spec.md §7 except where noted; callers should use errors.Is to test them.
var (
	// ErrEmptyNodeID indicates an empty node identifier was supplied.
	ErrEmptyNodeID = errors.New("core: node id is empty")

	// ErrNodeNotFound indicates an operation referenced a node absent from the Network.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateEdge indicates an edge with the same canonical (source, target, relation)
	// key as an existing edge was added. Parsers are expected to deduplicate before this
	// point; reaching AddLink with a duplicate is an internal-error condition.
	ErrDuplicateEdge = errors.New("core: duplicate edge under canonical key")

	// ErrSelfLoopShadow indicates an attempt to generate a shadow for a self-loop,
	// which is never valid: self-loops never receive shadows.
	ErrSelfLoopShadow = errors.New("core: self-loops never receive shadow edges")

	// ErrNegativeHops indicates a negative hop count was passed to NHopNeighborhood.
	ErrNegativeHops = errors.New("core: hop count must be non-negative")
)
