package layout

import (
	"sort"
	"strconv"

	"github.com/gobiofabric/biofabric/core"
	"github.com/gobiofabric/biofabric/dfs"
	"github.com/gobiofabric/biofabric/progress"
)

// hierDAGNodeLayout implements spec.md §4.4.2: order nodes by
// (level, degree-within-level descending, id ascending), where level is
// the longest-path level over the directed, non-shadow sub-graph.
// PointUp reverses the level axis (roots bottom vs top).
func hierDAGNodeLayout(net *core.Network, params Params) ([]string, AnnotationSet, error) {
	if net == nil {
		return nil, nil, ErrNetworkNil
	}
	reporter := progress.NewLoopReporter(params.monitor(), "", net.NodeCount(), 0)

	levels, err := dfs.DagLevels(net)
	if err != nil {
		return nil, nil, err
	}
	if levels == nil {
		return nil, nil, ErrNotDAG
	}

	maxLevel := 0
	for _, l := range levels {
		if l > maxLevel {
			maxLevel = l
		}
	}

	ids := net.NodeOrder()
	degree := make(map[string]int, len(ids))
	for _, id := range ids {
		d, err := net.DegreeNonShadow(id)
		if err != nil {
			return nil, nil, err
		}
		degree[id] = d
	}

	axis := func(l int) int {
		if params.PointUp {
			return maxLevel - l
		}

		return l
	}

	sort.Slice(ids, func(i, j int) bool {
		li, lj := axis(levels[ids[i]]), axis(levels[ids[j]])
		if li != lj {
			return li < lj
		}
		if degree[ids[i]] != degree[ids[j]] {
			return degree[ids[i]] > degree[ids[j]]
		}

		return ids[i] < ids[j]
	})

	// Build one annotation per level, in row-contiguous blocks.
	byAxis := make(map[int][]string)
	for _, id := range ids {
		a := axis(levels[id])
		byAxis[a] = append(byAxis[a], id)
	}
	var annotations AnnotationSet
	row := 0
	for a := 0; a <= maxLevel; a++ {
		members := byAxis[a]
		if len(members) == 0 {
			continue
		}
		annotations = append(annotations, Annotation{
			Name:  levelName(a),
			Start: row,
			End:   row + len(members) - 1,
		})
		row += len(members)
	}

	for i := range ids {
		if err := reporter.Tick(i + 1); err != nil {
			return nil, nil, err
		}
	}

	return ids, annotations, nil
}

func levelName(level int) string {
	return "level" + strconv.Itoa(level)
}
