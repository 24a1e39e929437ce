package layout

import "github.com/gobiofabric/biofabric/core"

// NodeLayoutKind selects which node-layout algorithm LayoutNodes runs.
// This mirrors the reference design's closed sum type (spec.md §9):
// a single switch over a fixed set of variants, rather than an interface
// with one implementation per type, since the variant set never grows at
// runtime and a v-table buys nothing here.
type NodeLayoutKind int

const (
	KindDefault NodeLayoutKind = iota
	KindHierDAG
	KindCluster
	KindControlTop
	KindSet
	KindWorldBank
	KindSimilarity
)

// LayoutNodes runs the node layout selected by kind and returns its row
// order, along with any node annotations the layout produces (HierDAG's
// level bands, Cluster's cluster bands, Set's per-member set labels).
func LayoutNodes(net *core.Network, kind NodeLayoutKind, params Params) ([]string, AnnotationSet, error) {
	if net == nil {
		return nil, nil, ErrNetworkNil
	}

	switch kind {
	case KindDefault:
		order, err := defaultNodeLayout(net, params)
		return order, nil, err

	case KindHierDAG:
		return hierDAGNodeLayout(net, params)

	case KindCluster:
		return clusterNodeLayout(net, params)

	case KindControlTop:
		order, err := controlTopNodeLayout(net, params)
		return order, nil, err

	case KindSet:
		return setNodeLayout(net, params)

	case KindWorldBank:
		order, err := worldBankNodeLayout(net)
		return order, nil, err

	case KindSimilarity:
		seed, err := defaultNodeLayout(net, params)
		if err != nil {
			return nil, nil, err
		}
		order, err := similarityNodeLayout(net, seed, params.Similarity)
		return order, nil, err

	default:
		order, err := defaultNodeLayout(net, params)
		return order, nil, err
	}
}
