package layout

import (
	"sort"
	"strings"

	"github.com/gobiofabric/biofabric/core"
)

// setNodeLayout implements spec.md §4.4.5: sets first (by membership
// count descending, id ascending), then members (grouped by the set they
// first belong to, in set order). Returns the row order and one
// Annotation per member listing its sets as an `&`-joined string, keyed
// by the member's assigned row via the annotation's Name (set membership
// is a node-label concern, not a row-range one, so Start == End for each
// member annotation).
func setNodeLayout(net *core.Network, params Params) ([]string, AnnotationSet, error) {
	if net == nil {
		return nil, nil, ErrNetworkNil
	}
	cfg := params.Set
	mon := params.monitor()
	mon.SetTotal(net.NodeCount())

	setOf := func(e *core.Edge) (setID, memberID string) {
		if cfg.Membership == Contains {
			return e.Source, e.Target
		}

		return e.Target, e.Source
	}

	memberSets := make(map[string][]string) // member -> sets it belongs to, first-seen order
	setMembers := make(map[string]map[string]bool)
	isSet := make(map[string]bool)
	for _, e := range net.Edges() {
		if e.IsShadow {
			continue
		}
		s, m := setOf(e)
		isSet[s] = true
		if setMembers[s] == nil {
			setMembers[s] = make(map[string]bool)
		}
		if !setMembers[s][m] {
			setMembers[s][m] = true
			memberSets[m] = append(memberSets[m], s)
		}
	}

	sets := make([]string, 0, len(isSet))
	for s := range isSet {
		sets = append(sets, s)
	}
	sort.Slice(sets, func(i, j int) bool {
		ci, cj := len(setMembers[sets[i]]), len(setMembers[sets[j]])
		if ci != cj {
			return ci > cj
		}

		return sets[i] < sets[j]
	})

	setIndex := make(map[string]int, len(sets))
	for i, s := range sets {
		setIndex[s] = i
	}
	// Re-order each member's set list to match the final set order (the
	// annotation text lists sets "in set-order", per spec.md §4.4.5).
	for m, ss := range memberSets {
		ordered := append([]string(nil), ss...)
		sort.SliceStable(ordered, func(i, j int) bool { return setIndex[ordered[i]] < setIndex[ordered[j]] })
		memberSets[m] = ordered
	}

	var order []string
	order = append(order, sets...)

	placed := make(map[string]bool, len(order))
	for _, s := range sets {
		placed[s] = true
	}

	var annotations AnnotationSet
	row := len(order)
	for _, s := range sets {
		members := make([]string, 0, len(setMembers[s]))
		for m := range setMembers[s] {
			members = append(members, m)
		}
		sort.Strings(members)
		for _, m := range members {
			if placed[m] {
				continue
			}
			placed[m] = true
			order = append(order, m)
			annotations = append(annotations, Annotation{
				Name:  strings.Join(memberSets[m], "&"),
				Start: row,
				End:   row,
			})
			row++
		}
	}

	mon.Update(len(order))

	return order, annotations, nil
}
