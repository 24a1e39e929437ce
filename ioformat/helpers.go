package ioformat

import "github.com/gobiofabric/biofabric/core"

// displayOf returns the original-casing spelling for a normalized node id,
// falling back to the id itself if the node is somehow absent (writers
// always walk ids Network itself produced, so this is defensive only).
func displayOf(net *core.Network, id string) string {
	node, err := net.GetNode(id)
	if err != nil {
		return id
	}

	return node.Display
}
