// SPDX-License-Identifier: MIT

package einsum

import (
	"fmt"
	"math"
)

// Step names two positions in the current operand list. Both are removed and
// their contraction is appended at the end of the list.
type Step [2]int

// Optimizer chooses the pairwise contraction order.
//
// Path receives the labels of each operand, the output labels, and the size
// of every label; for n operands it must return exactly n-1 steps.
type Optimizer interface {
	Name() string
	Path(inputs [][]string, output []string, sizes map[string]int) ([]Step, error)
}

// Greedy picks, at every step, the pair whose contraction minimizes
// size(result) - size(a) - size(b). Pairs sharing at least one label are
// preferred; when none remain the two smallest operands are joined.
// Ties are broken by the lowest (i, j), which keeps paths deterministic.
type Greedy struct{}

// Name implements Optimizer.
func (Greedy) Name() string { return "greedy" }

// Path implements Optimizer.
// Complexity: O(n³ · r) for n operands of rank ≤ r.
func (Greedy) Path(inputs [][]string, output []string, sizes map[string]int) ([]Step, error) {
	live := cloneAxes(inputs)
	path := make([]Step, 0, len(inputs))

	for len(live) > 1 {
		bestI, bestJ := -1, -1
		bestCost := math.MaxInt
		for i := 0; i < len(live); i++ {
			for j := i + 1; j < len(live); j++ {
				if !sharesAxis(live[i], live[j]) {
					continue
				}
				res := pairAxes(live[i], live[j], keepSet(live, i, j, output))
				cost := volume(res, sizes) - volume(live[i], sizes) - volume(live[j], sizes)
				if cost < bestCost {
					bestI, bestJ, bestCost = i, j, cost
				}
			}
		}
		if bestI < 0 {
			// Only outer products remain: join the two smallest operands.
			bestI, bestJ = twoSmallest(live, sizes)
		}

		res := pairAxes(live[bestI], live[bestJ], keepSet(live, bestI, bestJ, output))
		live = advance(live, bestI, bestJ, res)
		path = append(path, Step{bestI, bestJ})
	}

	return path, nil
}

// Sequential folds operands left-to-right: ((0·1)·2)·3 ...
type Sequential struct{}

// Name implements Optimizer.
func (Sequential) Name() string { return "sequential" }

// Path implements Optimizer.
// Complexity: O(n).
func (Sequential) Path(inputs [][]string, _ []string, _ map[string]int) ([]Step, error) {
	n := len(inputs)
	if n < 2 {
		return nil, nil
	}
	path := []Step{{0, 1}}
	// The running product sits at the end; the next original operand at 0.
	for live := n - 1; live > 1; live-- {
		path = append(path, Step{0, live - 1})
	}

	return path, nil
}

// Cost estimates the multiply-add count of following path: for each step,
// the volume of the union of both operands' labels. It validates the path.
func Cost(inputs [][]string, output []string, sizes map[string]int, path []Step) (int, error) {
	if err := checkPath(len(inputs), path); err != nil {
		return 0, err
	}

	live := cloneAxes(inputs)
	total := 0
	for _, st := range path {
		i, j := order(st)
		total += volume(union(live[i], live[j]), sizes)
		res := pairAxes(live[i], live[j], keepSet(live, i, j, output))
		live = advance(live, i, j, res)
	}

	return total, nil
}

// checkPath verifies that path has n-1 steps, each naming two distinct
// in-range positions of the list as it stands at that step.
func checkPath(n int, path []Step) error {
	want := n - 1
	if n == 0 {
		want = 0
	}
	if len(path) != want {
		return fmt.Errorf("%d steps for %d operands: %w", len(path), n, ErrBadPath)
	}

	live := n
	for k, st := range path {
		if st[0] == st[1] || st[0] < 0 || st[1] < 0 || st[0] >= live || st[1] >= live {
			return fmt.Errorf("step %d %v with %d operands: %w", k, st, live, ErrBadPath)
		}
		live--
	}

	return nil
}

// order returns the step positions ascending.
func order(st Step) (int, int) {
	if st[0] < st[1] {
		return st[0], st[1]
	}

	return st[1], st[0]
}

// keepSet returns labels that must survive contracting live[i] with live[j]:
// the output labels plus every label of the other live operands.
func keepSet(live [][]string, i, j int, output []string) map[string]bool {
	keep := make(map[string]bool, len(output))
	for _, ax := range output {
		keep[ax] = true
	}
	for k, axes := range live {
		if k == i || k == j {
			continue
		}
		for _, ax := range axes {
			keep[ax] = true
		}
	}

	return keep
}

// pairAxes returns the labels of the contraction of a and b: kept labels of a
// in a's order, then kept labels of b not already in a.
func pairAxes(a, b []string, keep map[string]bool) []string {
	out := make([]string, 0, len(a)+len(b))
	inA := make(map[string]bool, len(a))
	for _, ax := range a {
		inA[ax] = true
		if keep[ax] {
			out = append(out, ax)
		}
	}
	for _, ax := range b {
		if !inA[ax] && keep[ax] {
			out = append(out, ax)
		}
	}

	return out
}

// advance removes positions i<j from live and appends res.
func advance(live [][]string, i, j int, res []string) [][]string {
	next := make([][]string, 0, len(live)-1)
	for k, axes := range live {
		if k != i && k != j {
			next = append(next, axes)
		}
	}

	return append(next, res)
}

func sharesAxis(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}

	return false
}

func union(a, b []string) []string {
	out := append([]string(nil), a...)
	for _, y := range b {
		found := false
		for _, x := range a {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			out = append(out, y)
		}
	}

	return out
}

func volume(axes []string, sizes map[string]int) int {
	v := 1
	for _, ax := range axes {
		v *= sizes[ax]
	}

	return v
}

// twoSmallest returns the positions (ascending) of the two smallest operands.
func twoSmallest(live [][]string, sizes map[string]int) (int, int) {
	a, b := -1, -1
	for k := range live {
		switch {
		case a < 0 || volume(live[k], sizes) < volume(live[a], sizes):
			a, b = k, a
		case b < 0 || volume(live[k], sizes) < volume(live[b], sizes):
			b = k
		}
	}

	return order(Step{a, b})
}

func cloneAxes(in [][]string) [][]string {
	out := make([][]string, len(in))
	for i, axes := range in {
		out[i] = append([]string(nil), axes...)
	}

	return out
}
