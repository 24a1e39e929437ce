// Package bfs provides breadth-first traversal over a core.Network.
//
// BFS expands neighbors in lexicographic ascending order by node ID
// (spec.md §4.2). BFSOrdered instead expands them in the order of a
// caller-supplied rank function, ties broken by ID ascending; the default
// node layout uses it for degree-descending expansion.
package bfs
