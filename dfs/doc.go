// Package dfs provides depth-first traversal and analysis of a
// core.Network: a generic smallest-first DFS paired with bfs.BFS, plus
// directed-subgraph-only cycle detection, Kahn's-algorithm topological
// sort, and longest-path DAG leveling. The latter three ignore undirected,
// unspecified, and shadow edges, per spec.md §4.2.
package dfs
