package optimize

import (
	"errors"

	"github.com/katalvlaran/slidepath/cost"
	"github.com/katalvlaran/slidepath/pitch"
	"github.com/katalvlaran/slidepath/slide"
)

// ErrNoSlots indicates that Solve was given an empty sequence.
var ErrNoSlots = errors.New("optimize: no notes to solve")

// Slot is one note of the input sequence with its admissible candidates,
// in generation order (position, then partial, ascending).
type Slot struct {
	Pitch      pitch.Pitch
	Candidates []slide.Candidate
}

// Solution is the chosen candidate per slot and its cost.
//
//   - Choices - one candidate per input slot, in input order.
//   - Cost    - total transition cost under Method.
//   - Travel  - total slide movement in position units; the tie-breaker
//     between solutions of equal Cost.
type Solution struct {
	Method  cost.Method
	Choices []slide.Candidate
	Cost    int
	Travel  int
}

// Options configures Solve.
//
// Method – objective function to minimize (default cost.Distance).
type Options struct {
	Method cost.Method
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMethod selects the objective function.
func WithMethod(m cost.Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns Options with Method = cost.Distance.
func DefaultOptions() Options {
	return Options{Method: cost.Distance}
}
