package cli

import (
	"fmt"
	"strings"

	"github.com/gobiofabric/biofabric/layout"
)

// parseKind maps a --kind flag value (also the config file's layout_kind)
// onto a layout.NodeLayoutKind.
func parseKind(name string) (layout.NodeLayoutKind, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return layout.KindDefault, nil
	case "hierdag":
		return layout.KindHierDAG, nil
	case "cluster":
		return layout.KindCluster, nil
	case "controltop":
		return layout.KindControlTop, nil
	case "set":
		return layout.KindSet, nil
	case "worldbank":
		return layout.KindWorldBank, nil
	case "similarity":
		return layout.KindSimilarity, nil
	default:
		return 0, fmt.Errorf("%w: unknown layout kind %q", ErrUsage, name)
	}
}

// splitCSV splits a comma-separated flag value into a trimmed, non-empty
// slice, or nil if s is empty.
func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
