// Package graphalgo provides the two network-level analyses of spec.md §4.2
// that don't belong in bfs or dfs: degree-ordered node enumeration and
// connected-component discovery. Both are allocation-bounded and leave the
// input core.Network unmodified.
package graphalgo
