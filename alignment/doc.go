// Package alignment implements network-alignment merge, scoring, grouping,
// cycle classification, and the three alignment-specific node/edge layouts.
// Every layout in this package is exposed through the same
// layout.NodeLayoutKind / layout.LayoutEdges interfaces used for the plain
// graph layouts; alignment only supplies the merged network and the extra
// per-node classification (colour, group tag) those layouts key off.
package alignment
