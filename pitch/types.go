package pitch

import "errors"

// Reference tuning: A4 sounds at 440 Hz and is Pitch(0).
const (
	SemitonesPerOctave = 12
	ReferenceOctave    = 4
	ReferenceHertz     = 440.0

	// referenceMIDI is the MIDI key number of A4.
	referenceMIDI = 69

	// MinOctave and MaxOctave bound the octave accepted by Parse; they
	// match the MIDI key range C-1..G9. Instrument octaves are narrower.
	MinOctave = -1
	MaxOctave = 9
)

// Sentinel errors returned by the pitch package.
var (
	// ErrInvalidPitch indicates a malformed pitch token: unknown letter,
	// double accidental, missing or non-integer octave, or an octave
	// outside [MinOctave, MaxOctave].
	ErrInvalidPitch = errors.New("pitch: invalid pitch")

	// ErrBadFrequency indicates a non-positive, NaN or infinite frequency.
	ErrBadFrequency = errors.New("pitch: frequency must be positive and finite")

	// ErrBadMIDIKey indicates a MIDI key outside 0..127.
	ErrBadMIDIKey = errors.New("pitch: MIDI key out of range 0..127")
)

// Note is a pitch class. Values are semitones above C.
type Note int

// Pitch classes, spelled with flats.
const (
	C Note = iota
	Db
	D
	Eb
	E
	F
	Gb
	G
	Ab
	A
	Bb
	B
)

var noteNames = [SemitonesPerOctave]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// naturals maps a note letter to its natural pitch class.
var naturals = map[byte]Note{
	'C': C, 'D': D, 'E': E, 'F': F, 'G': G, 'A': A, 'B': B,
}

// String returns the flat spelling of n ("Bb", "C", ...).
func (n Note) String() string {
	if n < C || n > B {
		return "Note(?)"
	}

	return noteNames[n]
}

// Pitch is an absolute pitch in semitones relative to A4.
type Pitch int
