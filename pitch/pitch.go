package pitch

import (
	"fmt"
	"math"
	"strconv"
)

// New returns the pitch of note n in the given octave.
// No range check is made; Parse is the validating entry point.
func New(n Note, octave int) Pitch {
	return Pitch(int(n-A) + (octave-ReferenceOctave)*SemitonesPerOctave)
}

// Parse reads scientific pitch notation: one letter A–G, an optional
// single accidental ('#' or 'b') and an integer octave ("Bb3", "C#4", "E-1").
//
// Errors wrap ErrInvalidPitch and quote the offending token.
func Parse(s string) (Pitch, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty token", ErrInvalidPitch)
	}

	// 1) Note letter.
	n, ok := naturals[s[0]]
	if !ok {
		return 0, fmt.Errorf("%w %q: unknown note letter %q", ErrInvalidPitch, s, s[0])
	}
	rest := s[1:]

	// 2) At most one accidental. A second one is left in rest and
	//    rejected by the octave check below.
	shift := 0
	if rest != "" {
		switch rest[0] {
		case '#':
			shift = 1
			rest = rest[1:]
		case 'b':
			shift = -1
			rest = rest[1:]
		}
	}

	// 3) Octave: optional minus sign followed by digits only.
	if !isOctave(rest) {
		return 0, fmt.Errorf("%w %q: octave must be an integer", ErrInvalidPitch, s)
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidPitch, s, err)
	}
	if octave < MinOctave || octave > MaxOctave {
		return 0, fmt.Errorf("%w %q: octave %d outside [%d, %d]",
			ErrInvalidPitch, s, octave, MinOctave, MaxOctave)
	}

	return New(n, octave) + Pitch(shift), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level tables.
func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return p
}

// isOctave reports whether s is an optionally negative run of ASCII digits.
func isOctave(s string) bool {
	if s != "" && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// fromC0 returns the number of semitones from C0 up to p.
func (p Pitch) fromC0() int {
	return int(p) + int(A) + ReferenceOctave*SemitonesPerOctave
}

// Note returns the pitch class of p.
func (p Pitch) Note() Note {
	return Note(floorMod(p.fromC0(), SemitonesPerOctave))
}

// Octave returns the scientific octave number of p (C4 is middle C).
func (p Pitch) Octave() int {
	return floorDiv(p.fromC0(), SemitonesPerOctave)
}

// String returns p in flat spelling, e.g. "Bb3".
func (p Pitch) String() string {
	return p.Note().String() + strconv.Itoa(p.Octave())
}

// Hertz returns the equal-tempered frequency of p.
func (p Pitch) Hertz() float64 {
	return ReferenceHertz * math.Pow(2, float64(p)/SemitonesPerOctave)
}

// FromHertz returns the pitch nearest to hz.
func FromHertz(hz float64) (Pitch, error) {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return 0, fmt.Errorf("%w: %v", ErrBadFrequency, hz)
	}
	semis := SemitonesPerOctave * math.Log2(hz/ReferenceHertz)

	return Pitch(math.Round(semis)), nil
}

// MIDI returns the MIDI key number of p (A4 = 69). The result may fall
// outside 0..127 for extreme pitches.
func (p Pitch) MIDI() int {
	return int(p) + referenceMIDI
}

// FromMIDI converts a MIDI key number to a Pitch.
func FromMIDI(key int) (Pitch, error) {
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("%w: %d", ErrBadMIDIKey, key)
	}

	return Pitch(key - referenceMIDI), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}

	return m
}
