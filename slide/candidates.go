package slide

import (
	"fmt"

	"github.com/katalvlaran/slidepath/harmonic"
	"github.com/katalvlaran/slidepath/pitch"
)

// Candidates returns every candidate that sounds p on the instrument.
//
// The result is ordered by position ascending, then partial ascending.
// That order carries no preference; it only makes downstream tie-breaks
// reproducible. Each call returns a fresh slice.
//
// Errors:
//   - ErrBadInstrument    - the instrument fails Validate.
//   - ErrUnreachablePitch - no (position, partial) pair sounds p.
func (in Instrument) Candidates(p pitch.Pitch) ([]Candidate, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var out []Candidate
	for pos := Position(1); int(pos) <= in.Positions; pos++ {
		for k := in.MinPartial; k <= in.MaxPartial; k++ {
			if in.nominal(pos, k) != p {
				continue
			}
			out = append(out, Candidate{
				Position: pos,
				Partial:  k,
				Offset:   harmonic.Deviation(k),
			})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnreachablePitch, p)
	}

	return out, nil
}

// Sounding returns the rounded equal-tempered pitch that c produces.
func (in Instrument) Sounding(c Candidate) pitch.Pitch {
	return in.nominal(c.Position, c.Partial)
}

// Tuning returns the exact pitch of c in fractional semitones relative to
// A4: the sounding pitch plus the partial's deviation.
func (in Instrument) Tuning(c Candidate) float64 {
	return float64(in.Sounding(c)) + harmonic.Deviation(c.Partial)
}

// Range returns the lowest and highest pitch reachable on the instrument.
// The instrument must be valid.
func (in Instrument) Range() (lo, hi pitch.Pitch) {
	lo = in.nominal(Position(in.Positions), in.MinPartial)
	hi = in.nominal(1, in.MaxPartial)

	return lo, hi
}

// Octaves returns the lowest and highest octave number holding at least one
// pitch of Range. The instrument must be valid.
func (in Instrument) Octaves() (lo, hi int) {
	low, high := in.Range()

	return low.Octave(), high.Octave()
}

// ParsePitch is pitch.Parse restricted to the instrument's octaves. A token
// whose octave lies outside Octaves fails with pitch.ErrInvalidPitch; a
// pitch inside those octaves that no pair sounds is left to Candidates.
func (in Instrument) ParsePitch(s string) (pitch.Pitch, error) {
	p, err := pitch.Parse(s)
	if err != nil {
		return 0, err
	}
	if err := in.Validate(); err != nil {
		return 0, err
	}
	lo, hi := in.Octaves()
	if oct := p.Octave(); oct < lo || oct > hi {
		return 0, fmt.Errorf("%w %q: octave %d outside %s range [%d, %d]",
			pitch.ErrInvalidPitch, s, oct, in.Name, lo, hi)
	}

	return p, nil
}

// nominal is the whole-semitone pitch of partial k at position pos.
func (in Instrument) nominal(pos Position, k harmonic.Partial) pitch.Pitch {
	return in.Open - pitch.Pitch(pos-1) + pitch.Pitch(harmonic.Interval(k))
}
