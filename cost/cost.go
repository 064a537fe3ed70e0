// Package cost defines the objective functions the optimizer can minimize
// over a sequence of slide candidates.
//
// Every method is a per-transition cost summed over the sequence:
//
//	distance  |pos_i − pos_{i+1}|                    total slide travel
//	direction 1 when the move's sign differs         needs the move into i
//	gliss     1 when the partial changes             favors slide glissando
//	legato    1 when the partial stays the same      favors lip slurs
//
// Direction is the only second-order method: its cost at i→i+1 depends on
// the move i−1→i, so the optimizer carries the incoming Dir in its state.
// The sign of a move is one of Down, Still or Up, and a change of sign costs
// 1: Up then Still is a change, as is Still then Up. Only the first
// transition, which has no incoming move (None), is free.
package cost

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slidepath/slide"
)

// ErrInvalidMethod indicates an unrecognized method name.
var ErrInvalidMethod = errors.New("cost: invalid method")

// Method selects the objective function.
type Method int

const (
	// Distance minimizes total slide travel. It is the default.
	Distance Method = iota
	// Direction minimizes slide direction reversals.
	Direction
	// Gliss minimizes partial changes.
	Gliss
	// Legato minimizes repeated partials, i.e. maximizes partial changes.
	Legato
)

var methodNames = [...]string{
	Distance:  "distance",
	Direction: "direction",
	Gliss:     "gliss",
	Legato:    "legato",
}

// Methods returns every method in declaration order.
func Methods() []Method {
	return []Method{Distance, Direction, Gliss, Legato}
}

// ParseMethod maps a method name to its Method.
func ParseMethod(s string) (Method, error) {
	for m, name := range methodNames {
		if name == s {
			return Method(m), nil
		}
	}

	return Distance, fmt.Errorf("%w %q: want one of distance, direction, gliss, legato", ErrInvalidMethod, s)
}

// String returns the method name as accepted by ParseMethod.
func (m Method) String() string {
	if m < Distance || m > Legato {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// Order is 2 for methods whose cost depends on the previous move, else 1.
func (m Method) Order() int {
	if m == Direction {
		return 2
	}

	return 1
}

// Dir is the sign of a slide movement.
type Dir int8

const (
	Down  Dir = -1 // toward 1st position
	Still Dir = 0  // slide held in place
	Up    Dir = 1  // toward 7th position

	// None is the incoming direction of the first note, which has no
	// previous move. It is never returned by Move.
	None Dir = 2
)

// Dirs lists the move directions in ascending order. None is not a move.
var Dirs = [...]Dir{Down, Still, Up}

// Index maps a move direction to 0..2 for table lookups.
func (d Dir) Index() int { return int(d) + 1 }

// Move returns the direction of the slide movement from → to.
func Move(from, to slide.Candidate) Dir {
	switch {
	case to.Position > from.Position:
		return Up
	case to.Position < from.Position:
		return Down
	default:
		return Still
	}
}

// Step returns the cost of moving from → to under m, where prev is the
// direction of the move that arrived at from (None for the first note).
func Step(m Method, prev Dir, from, to slide.Candidate) int {
	switch m {
	case Direction:
		if prev == None || Move(from, to) == prev {
			return 0
		}

		return 1
	case Gliss:
		if from.Partial == to.Partial {
			return 0
		}

		return 1
	case Legato:
		if from.Partial != to.Partial {
			return 0
		}

		return 1
	default:
		return Travel(from, to)
	}
}

// Travel is the slide distance between two candidates in position units.
func Travel(from, to slide.Candidate) int {
	d := int(to.Position - from.Position)
	if d < 0 {
		return -d
	}

	return d
}

// Total evaluates a complete assignment under m.
// It returns the summed method cost and the summed slide travel.
func Total(m Method, cs []slide.Candidate) (total, travel int) {
	prev := None
	for i := 1; i < len(cs); i++ {
		total += Step(m, prev, cs[i-1], cs[i])
		travel += Travel(cs[i-1], cs[i])
		prev = Move(cs[i-1], cs[i])
	}

	return total, travel
}

// PartialChanges counts transitions whose partial differs.
func PartialChanges(cs []slide.Candidate) int {
	n := 0
	for i := 1; i < len(cs); i++ {
		if cs[i].Partial != cs[i-1].Partial {
			n++
		}
	}

	return n
}
