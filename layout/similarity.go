package layout

import "github.com/gobiofabric/biofabric/core"

// similarityNodeLayout implements spec.md §4.4.7: starting from seedOrder
// (the Default layout's output), repeatedly look for a swap, within a
// bounded forward window, that pulls a more similar node next to its
// predecessor, and keep passing until improvement falls under tolerance
// or pass_count is exhausted.
//
// "Distance" between two nodes is 1 - Jaccard(neighbours), so pulling a
// high-Jaccard node adjacent lowers it. Ties in swap choice prefer the
// lower node id, per spec.
func similarityNodeLayout(net *core.Network, seedOrder []string, cfg SimConfig) ([]string, error) {
	order := append([]string(nil), seedOrder...)
	passCount, tolerance, chainLength := cfg.resolve(len(order))

	cache := make(map[[2]string]float64)
	dist := func(a, b string) (float64, error) {
		key := [2]string{a, b}
		if a > b {
			key = [2]string{b, a}
		}
		if d, ok := cache[key]; ok {
			return d, nil
		}
		cmp, err := net.CompareNodes(a, b)
		if err != nil {
			return 0, err
		}
		d := 1 - cmp.Jaccard
		cache[key] = d

		return d, nil
	}

	for pass := 0; pass < passCount; pass++ {
		totalImprovement := 0.0
		for i := 0; i < len(order)-1; i++ {
			cur, err := dist(order[i], order[i+1])
			if err != nil {
				return nil, err
			}
			bestJ := i + 1
			bestDist := cur

			end := i + 1 + chainLength
			if end > len(order) {
				end = len(order)
			}
			for j := i + 2; j < end; j++ {
				d, err := dist(order[i], order[j])
				if err != nil {
					return nil, err
				}
				if d < bestDist || (d == bestDist && order[j] < order[bestJ]) {
					bestDist = d
					bestJ = j
				}
			}

			if bestJ != i+1 {
				improvement := cur - bestDist
				if improvement > 0 {
					order[i+1], order[bestJ] = order[bestJ], order[i+1]
					totalImprovement += improvement
				}
			}
		}
		if totalImprovement < tolerance {
			break
		}
	}

	return order, nil
}
