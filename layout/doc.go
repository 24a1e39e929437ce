// Package layout computes node row orders and edge column assignments for
// a core.Network (spec.md §4.4, §4.5). A layout is purely a function of its
// inputs: same network, same parameters, same layout kind always produce
// the same NetworkLayout, which is what lets sessions round-trip through
// NOA/EDA and BIF byte-for-byte.
//
// Node layouts (Default, HierDAG, Cluster, ControlTop, Set, WorldBank,
// Similarity) all implement the same shape: network + params + progress
// monitor in, a row order out. They are dispatched through NodeLayoutKind
// rather than an interface, per the reference design's note that the
// variant set is closed and dispatch should stay a switch, not a v-table.
//
// Edge layout is a single algorithm (LayoutEdges) that consumes a row
// order and produces column assignments, span intervals, drain zones and
// link-group annotations for every edge and node.
package layout
