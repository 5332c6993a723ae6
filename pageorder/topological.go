package pageorder

import (
	"fmt"
	"slices"
)

// Visitation states for the depth-first sort.
const (
	white = iota // not visited
	gray         // on the recursion stack
	black        // fully explored
)

// topoSorter holds state for one topological sort over an update's pages.
type topoSorter struct {
	succ  map[int][]int // applicable successors per page
	state map[int]int   // white/gray/black
	order []int         // post-order
}

// Repair returns update reordered to satisfy every applicable rule.
// An update with no applicable rules comes back in its original order.
// The input slice is not modified.
// Returns ErrCycleDetected if the applicable rules are cyclic.
// Complexity: O(P + R).
func (m *Manual) Repair(update []int) ([]int, error) {
	// 1. Restrict rules to pages present in the update
	pos := positions(update)
	succ := make(map[int][]int, len(update))
	for _, p := range update {
		for _, q := range m.succ[p] {
			if _, ok := pos[q]; ok {
				succ[p] = append(succ[p], q)
			}
		}
		// visit successors in a stable order
		slices.Sort(succ[p])
	}
	// 2. Initialise sorter state
	t := &topoSorter{
		succ:  succ,
		state: make(map[int]int, len(update)),
		order: make([]int, 0, len(update)),
	}
	// 3. Drive DFS from every unvisited page, last to first so that the
	// reversal in step 4 keeps unconstrained pages in update order
	for i := len(update) - 1; i >= 0; i-- {
		if p := update[i]; t.state[p] == white {
			if err := t.visit(p); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order gives the topological order
	slices.Reverse(t.order)
	return t.order, nil
}

// visit performs a DFS from p, marking states and detecting back-edges.
func (t *topoSorter) visit(p int) error {
	switch t.state[p] {
	case gray:
		return fmt.Errorf("%w: at page %d", ErrCycleDetected, p)
	case black:
		return nil
	}
	t.state[p] = gray
	for _, q := range t.succ[p] {
		if err := t.visit(q); err != nil {
			return err
		}
	}
	t.state[p] = black
	t.order = append(t.order, p)
	return nil
}
