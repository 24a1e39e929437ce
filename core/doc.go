// Package core defines the BioFabric graph model: Node, Edge, and Network,
// plus the invariants that every public mutation must preserve.
//
// A Network owns an insertion-ordered set of Nodes, an insertion-ordered
// list of Edges (original edges, optionally followed by their generated
// shadow twins), and an insertion-ordered set of "lone" node IDs — nodes
// with no incident edge.
//
// Node identity is case-normalized (uppercase, spaces stripped) so that
// "Gene A" and "GENE A" and "GENEA" all refer to the same Node; the first
// spelling seen is kept as the Node's Display name.
//
// Adjacency is indexed lazily: any mutation flips a dirty bit, and the next
// read that needs the index rebuilds it from the edge list in O(E). This
// keeps construction O(E) overall and avoids maintaining half-stale state
// across every Add call.
//
//	go get github.com/gobiofabric/biofabric/core
package core
