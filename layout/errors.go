package layout

import "errors"

var (
	// ErrNetworkNil is returned when a nil *core.Network is passed to a
	// node or edge layout.
	ErrNetworkNil = errors.New("layout: network is nil")

	// ErrNotDAG is returned by HierDAG when the network's directed,
	// non-shadow sub-graph contains a cycle.
	ErrNotDAG = errors.New("layout: hierarchical DAG layout requires an acyclic graph")

	// ErrMissingClusterAssignment is returned by Cluster when a node has
	// no cluster tag.
	ErrMissingClusterAssignment = errors.New("layout: node has no cluster assignment")

	// ErrEmptyControlSet is returned by ControlTop when no control nodes
	// can be identified and none were supplied explicitly.
	ErrEmptyControlSet = errors.New("layout: control-top layout found no control nodes")

	// ErrUnknownNode is returned when a row order or fixed-link-order
	// input references a node id absent from the network.
	ErrUnknownNode = errors.New("layout: unknown node id")

	// ErrMissingRow is returned by edge layout when an edge endpoint has
	// no row assignment; §4.5 treats this as a programming error.
	ErrMissingRow = errors.New("layout: edge endpoint missing from row assignment")
)
