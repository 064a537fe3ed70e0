// Package optimize picks one slide candidate per note so that the summed
// transition cost of the whole sequence is minimal.
//
// Algorithm (shortest path over a layered DAG):
//  1. One layer per note; nodes are (candidate, incoming direction).
//     First-order methods use a single direction slot, so the layer is
//     just the candidate list. cost.Direction uses Down, Still and Up.
//  2. Layer 0 nodes start at cost zero. Their incoming direction is
//     cost.None, so the first transition never counts as a reversal.
//  3. For each node of layer i and each candidate of layer i+1, relax
//     cost(node) + cost.Step(method, dir, from, to).
//  4. Pick the cheapest node of the last layer and follow predecessor
//     pointers back to layer 0.
//
// Costs compare lexicographically as (method cost, slide travel), so among
// equally good solutions the one that moves the slide least wins. Remaining
// ties go to the earliest node in generation order (lower position, then
// lower partial, then Down < Still < Up): relaxation keeps the first
// predecessor found and the final scan keeps the first minimum.
//
// Complexity:
//
//   - Time:   O(N · C² · D), N notes, C candidates per note, D = 1 or 3.
//   - Memory: O(N · C · D) for the predecessor table.
package optimize

import (
	"fmt"

	"github.com/katalvlaran/slidepath/cost"
	"github.com/katalvlaran/slidepath/pitch"
	"github.com/katalvlaran/slidepath/slide"
)

// Solve returns the minimum-cost Solution for slots.
//
// Preconditions, checked in order before any DP work:
//  1. len(slots) > 0 (ErrNoSlots).
//  2. the method is one of cost.Methods() (cost.ErrInvalidMethod).
//  3. every slot has at least one candidate (slide.ErrUnreachablePitch).
//
// A single slot costs zero and yields its first candidate.
func Solve(slots []Slot, opts ...Option) (Solution, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(slots) == 0 {
		return Solution{}, ErrNoSlots
	}
	if cfg.Method < cost.Distance || cfg.Method > cost.Legato {
		return Solution{}, fmt.Errorf("%w: %s", cost.ErrInvalidMethod, cfg.Method)
	}
	for i, s := range slots {
		if len(s.Candidates) == 0 {
			return Solution{}, fmt.Errorf("note %d (%s): %w", i+1, s.Pitch, slide.ErrUnreachablePitch)
		}
	}

	r := &runner{slots: slots, method: cfg.Method}
	r.init()
	r.process()

	return r.backtrack(), nil
}

// Plan generates candidates for every pitch on inst and solves the sequence.
// Generation errors are wrapped with the 1-based note number.
func Plan(inst slide.Instrument, ps []pitch.Pitch, opts ...Option) (Solution, error) {
	if len(ps) == 0 {
		return Solution{}, ErrNoSlots
	}
	slots := make([]Slot, len(ps))
	for i, p := range ps {
		cs, err := inst.Candidates(p)
		if err != nil {
			return Solution{}, fmt.Errorf("note %d: %w", i+1, err)
		}
		slots[i] = Slot{Pitch: p, Candidates: cs}
	}

	return Solve(slots, opts...)
}

// score is a lexicographic (primary, travel) cost.
type score struct {
	primary int
	travel  int
}

func (a score) less(b score) bool {
	if a.primary != b.primary {
		return a.primary < b.primary
	}

	return a.travel < b.travel
}

// node is one DP cell: best score reaching (candidate, incoming dir) and
// the flat index of its predecessor in the previous layer.
type node struct {
	score   score
	reached bool
	prev    int
}

// runner holds the mutable state of one Solve call.
type runner struct {
	slots  []Slot
	method cost.Method
	width  int      // directions per candidate: 1 or 3
	layers [][]node // layers[i][j*width+d]
}

// dirAt maps direction slot d of layer i to the cost.Dir that arrived there.
func (r *runner) dirAt(i, d int) cost.Dir {
	if i == 0 {
		return cost.None
	}
	if r.width == 1 {
		return cost.Still
	}

	return cost.Dirs[d]
}

// slotOf maps a cost.Dir to its direction slot.
func (r *runner) slotOf(d cost.Dir) int {
	if r.width == 1 {
		return 0
	}

	return d.Index()
}

// init allocates the layers and seeds layer 0 with zero-cost nodes. Layer 0
// uses the Still slot of each candidate; dirAt reports it as cost.None.
func (r *runner) init() {
	r.width = 1
	if r.method.Order() == 2 {
		r.width = len(cost.Dirs)
	}

	r.layers = make([][]node, len(r.slots))
	for i, s := range r.slots {
		r.layers[i] = make([]node, len(s.Candidates)*r.width)
	}
	for j := range r.slots[0].Candidates {
		r.layers[0][j*r.width+r.slotOf(cost.Still)] = node{reached: true, prev: -1}
	}
}

// process relaxes every edge between consecutive layers.
func (r *runner) process() {
	for i := 1; i < len(r.slots); i++ {
		from, to := r.slots[i-1].Candidates, r.slots[i].Candidates
		prevLayer, layer := r.layers[i-1], r.layers[i]

		for u, pn := range prevLayer {
			if !pn.reached {
				continue
			}
			src := from[u/r.width]
			dir := r.dirAt(i-1, u%r.width)

			for j, dst := range to {
				next := score{
					primary: pn.score.primary + cost.Step(r.method, dir, src, dst),
					travel:  pn.score.travel + cost.Travel(src, dst),
				}
				v := j*r.width + r.slotOf(cost.Move(src, dst))
				if !layer[v].reached || next.less(layer[v].score) {
					layer[v] = node{score: next, reached: true, prev: u}
				}
			}
		}
	}
}

// backtrack picks the best node of the last layer and walks predecessors.
func (r *runner) backtrack() Solution {
	last := len(r.slots) - 1
	best := -1
	for v, n := range r.layers[last] {
		if !n.reached {
			continue
		}
		if best < 0 || n.score.less(r.layers[last][best].score) {
			best = v
		}
	}

	sol := Solution{
		Method:  r.method,
		Choices: make([]slide.Candidate, len(r.slots)),
		Cost:    r.layers[last][best].score.primary,
		Travel:  r.layers[last][best].score.travel,
	}
	for i, v := last, best; i >= 0; i-- {
		sol.Choices[i] = r.slots[i].Candidates[v/r.width]
		v = r.layers[i][v].prev
	}

	return sol
}
