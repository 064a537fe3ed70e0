// Package config loads instrument profiles from YAML and process settings
// from the environment.
//
// Profile file:
//
//	name: bass-trombone
//	open: Bb1        # first-position fundamental
//	positions: 7
//	min_partial: 2   # drop pedal tones
//	max_partial: 7
//
// Missing keys fall back to the Bb tenor trombone (slide.Tenor).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slidepath/harmonic"
	"github.com/katalvlaran/slidepath/pitch"
	"github.com/katalvlaran/slidepath/slide"
)

// ErrBadProfile indicates an unreadable or invalid instrument profile.
var ErrBadProfile = errors.New("config: invalid instrument profile")

// Profile is the YAML shape of an instrument.
type Profile struct {
	Name       string `yaml:"name"`
	Open       string `yaml:"open"`
	Positions  int    `yaml:"positions"`
	MinPartial int    `yaml:"min_partial"`
	MaxPartial int    `yaml:"max_partial"`
}

// DefaultProfile mirrors slide.Tenor.
func DefaultProfile() Profile {
	t := slide.Tenor()

	return Profile{
		Name:       t.Name,
		Open:       t.Open.String(),
		Positions:  t.Positions,
		MinPartial: int(t.MinPartial),
		MaxPartial: int(t.MaxPartial),
	}
}

// Instrument converts p into a validated slide.Instrument.
func (p Profile) Instrument() (slide.Instrument, error) {
	open, err := pitch.Parse(p.Open)
	if err != nil {
		return slide.Instrument{}, fmt.Errorf("%w: open: %w", ErrBadProfile, err)
	}
	in := slide.Instrument{
		Name:       p.Name,
		Open:       open,
		Positions:  p.Positions,
		MinPartial: harmonic.Partial(p.MinPartial),
		MaxPartial: harmonic.Partial(p.MaxPartial),
	}
	if err := in.Validate(); err != nil {
		return slide.Instrument{}, fmt.Errorf("%w: %w", ErrBadProfile, err)
	}

	return in, nil
}

// ParseProfile decodes a YAML profile. Unknown keys are rejected; empty
// input yields the default instrument.
func ParseProfile(data []byte) (slide.Instrument, error) {
	p := DefaultProfile()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return slide.Instrument{}, fmt.Errorf("%w: %w", ErrBadProfile, err)
	}

	return p.Instrument()
}

// LoadProfile reads and decodes the profile at path.
func LoadProfile(path string) (slide.Instrument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return slide.Instrument{}, fmt.Errorf("%w: %w", ErrBadProfile, err)
	}
	in, err := ParseProfile(data)
	if err != nil {
		return slide.Instrument{}, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}
