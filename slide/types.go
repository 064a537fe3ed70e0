// Package slide models a slide trombone and generates, for a target pitch,
// every (slide position, partial) pair that sounds it.
//
// Model:
//
//	Position p ∈ [1, Positions] lowers the open fundamental by p−1
//	semitones. Partial k of that position sounds
//
//	    Open − (p−1) + harmonic.Interval(k)
//
//	in whole equal-tempered semitones, and needs harmonic.Deviation(k)
//	semitones of embouchure correction to be played in tune.
//
// Because the harmonic series overlaps across positions, one pitch usually
// has several candidates (Bb3 is 1st position 4th partial and 5th position
// 5th partial). Candidates enumerates all of them; choosing between them is
// the optimizer's job.
package slide

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/slidepath/harmonic"
	"github.com/katalvlaran/slidepath/pitch"
)

// MaxPositions is the number of slide positions on a trombone.
const MaxPositions = 7

// Sentinel errors returned by the slide package.
var (
	// ErrUnreachablePitch indicates that no (position, partial) pair of the
	// instrument sounds the requested pitch.
	ErrUnreachablePitch = errors.New("slide: pitch unreachable on instrument")

	// ErrBadInstrument indicates an Instrument whose bounds are invalid.
	ErrBadInstrument = errors.New("slide: invalid instrument")
)

// Position is a 1-based slide position.
type Position int

// Candidate is one way to play a note: a slide position, the partial
// sounded there, and the just-intonation correction in semitones.
type Candidate struct {
	Position Position
	Partial  harmonic.Partial
	Offset   float64
}

// String renders c as "pos/partial±offset", for debugging.
func (c Candidate) String() string {
	return fmt.Sprintf("%d/%d%+g", c.Position, c.Partial, c.Offset)
}

// Instrument describes the playable grid.
//
// Fields:
//   - Name       - free-form label.
//   - Open       - pitch of the first-position fundamental (partial 1).
//   - Positions  - usable slide positions, 1..MaxPositions.
//   - MinPartial, MaxPartial - inclusive partial range, within the harmonic table.
type Instrument struct {
	Name       string
	Open       pitch.Pitch
	Positions  int
	MinPartial harmonic.Partial
	MaxPartial harmonic.Partial
}

// Tenor returns the Bb tenor trombone: open fundamental Bb1, seven
// positions, partials 1 (pedal) through 7.
func Tenor() Instrument {
	return Instrument{
		Name:       "tenor",
		Open:       pitch.New(pitch.Bb, 1),
		Positions:  MaxPositions,
		MinPartial: harmonic.MinPartial,
		MaxPartial: harmonic.MaxPartial,
	}
}

// Validate checks the instrument bounds.
func (in Instrument) Validate() error {
	if in.Positions < 1 || in.Positions > MaxPositions {
		return fmt.Errorf("%w: positions %d outside [1, %d]", ErrBadInstrument, in.Positions, MaxPositions)
	}
	if !harmonic.Valid(in.MinPartial) || !harmonic.Valid(in.MaxPartial) {
		return fmt.Errorf("%w: partial range [%d, %d] outside harmonic table [%d, %d]",
			ErrBadInstrument, in.MinPartial, in.MaxPartial, harmonic.MinPartial, harmonic.MaxPartial)
	}
	if in.MinPartial > in.MaxPartial {
		return fmt.Errorf("%w: min partial %d above max partial %d", ErrBadInstrument, in.MinPartial, in.MaxPartial)
	}

	return nil
}
