// Package harmonic holds the static harmonic-series table used to turn a
// (fundamental, partial) pair into an equal-tempered pitch and its
// just-intonation deviation.
//
// Partial k sounds 12·log2(k) semitones above its fundamental. The table
// stores that interval split into the nearest whole semitone (Interval)
// and the signed remainder (Deviation), in fractional semitones:
//
//	k  interval  deviation
//	1     0        0
//	2    12        0
//	3    19       +0.0196
//	4    24        0
//	5    28       −0.137
//	6    31       +0.0196
//	7    34       −0.312
//
// The table is read-only and safe to share between goroutines.
package harmonic

import (
	"errors"
	"fmt"
)

// Partial is a 1-based harmonic index.
type Partial int

// Bounds of the table.
const (
	MinPartial Partial = 1
	MaxPartial Partial = 7
)

// ErrUnknownPartial indicates a partial outside [MinPartial, MaxPartial].
var ErrUnknownPartial = errors.New("harmonic: partial not in table")

// Harmonic describes one partial of the series.
type Harmonic struct {
	Partial   Partial
	Interval  int     // whole semitones above the fundamental
	Deviation float64 // just-intonation departure from Interval, in semitones
}

// series is indexed by partial; index 0 is unused.
var series = [...]Harmonic{
	{},
	{Partial: 1, Interval: 0, Deviation: 0},
	{Partial: 2, Interval: 12, Deviation: 0},
	{Partial: 3, Interval: 19, Deviation: 0.0196},
	{Partial: 4, Interval: 24, Deviation: 0},
	{Partial: 5, Interval: 28, Deviation: -0.137},
	{Partial: 6, Interval: 31, Deviation: 0.0196},
	{Partial: 7, Interval: 34, Deviation: -0.312},
}

// Lookup returns the table row for k.
func Lookup(k Partial) (Harmonic, error) {
	if !Valid(k) {
		return Harmonic{}, fmt.Errorf("%w: %d", ErrUnknownPartial, k)
	}

	return series[k], nil
}

// Valid reports whether k has a table row.
func Valid(k Partial) bool {
	return k >= MinPartial && k <= MaxPartial
}

// Interval returns the whole-semitone interval of k above the fundamental.
// It panics if k is not Valid.
func Interval(k Partial) int {
	return mustRow(k).Interval
}

// Deviation returns the just-intonation deviation of k in semitones.
// It panics if k is not Valid.
func Deviation(k Partial) float64 {
	return mustRow(k).Deviation
}

// Partials returns every partial in the table, ascending. The slice is a
// fresh copy.
func Partials() []Partial {
	out := make([]Partial, 0, MaxPartial-MinPartial+1)
	for k := MinPartial; k <= MaxPartial; k++ {
		out = append(out, k)
	}

	return out
}

func mustRow(k Partial) Harmonic {
	h, err := Lookup(k)
	if err != nil {
		panic(err)
	}

	return h
}
