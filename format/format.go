// Package format renders optimizer solutions as text lines:
//
//	<pitch text>\t<ordinal position><signed offset>
//
// e.g. "Bb3\t5th-0.137" or "D4\t4th+0.0196".
package format

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/slidepath/optimize"
	"github.com/katalvlaran/slidepath/slide"
)

// ErrLengthMismatch indicates that the labels and the solution differ in length.
var ErrLengthMismatch = errors.New("format: labels and choices differ in length")

// Ordinal renders n as "1st", "2nd", "3rd", "4th", ...
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}

// Offset renders x in the shortest decimal form with the sign always shown.
func Offset(x float64) string {
	switch {
	case x == 0: // -0 included
		return "+0"
	case x > 0:
		return "+" + strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
}

// Candidate renders c as "<ordinal><offset>", e.g. "5th-0.137".
func Candidate(c slide.Candidate) string {
	return Ordinal(int(c.Position)) + Offset(c.Offset)
}

// Line renders one output line without the trailing newline.
func Line(label string, c slide.Candidate) string {
	return label + "\t" + Candidate(c)
}

// Write prints one line per choice of sol, labelled by labels in order.
func Write(w io.Writer, labels []string, sol optimize.Solution) error {
	if len(labels) != len(sol.Choices) {
		return fmt.Errorf("%w: %d labels, %d choices", ErrLengthMismatch, len(labels), len(sol.Choices))
	}
	for i, c := range sol.Choices {
		if _, err := fmt.Fprintln(w, Line(labels[i], c)); err != nil {
			return err
		}
	}

	return nil
}
