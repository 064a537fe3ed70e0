// Package midifile extracts a monophonic pitch sequence from a Standard
// MIDI File.
//
// Note-on events (velocity > 0) of every track are merged by absolute tick
// and returned in time order. Overlapping notes are accepted as long as no
// two notes start on the same tick; a shared start tick is a chord and is
// rejected with ErrPolyphonic.
package midifile

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/katalvlaran/slidepath/pitch"
)

// Sentinel errors returned by the midifile package.
var (
	// ErrNoNotes indicates that the file holds no note-on events.
	ErrNoNotes = errors.New("midifile: no notes found")

	// ErrPolyphonic indicates two notes starting on the same tick.
	ErrPolyphonic = errors.New("midifile: simultaneous notes are not supported")
)

// AllChannels disables channel filtering.
const AllChannels = -1

// Options configures Read.
//
// Channel – only keep notes on this MIDI channel (0..15); AllChannels keeps all.
type Options struct {
	Channel int
}

// Option represents a functional option for configuring Read.
type Option func(*Options)

// WithChannel keeps only notes on channel ch.
func WithChannel(ch int) Option {
	return func(o *Options) {
		o.Channel = ch
	}
}

// DefaultOptions keeps every channel.
func DefaultOptions() Options {
	return Options{Channel: AllChannels}
}

// onset is one note start at an absolute tick.
type onset struct {
	tick  uint64
	track int
	key   uint8
}

// Read decodes an SMF from r and returns its notes in time order.
func Read(r io.Reader, opts ...Option) ([]pitch.Pitch, error) {
	file, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("midifile: %w", err)
	}

	return notes(file, opts...)
}

// ReadFile is Read on the file at path.
func ReadFile(path string, opts ...Option) ([]pitch.Pitch, error) {
	file, err := smf.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("midifile: %s: %w", path, err)
	}

	return notes(file, opts...)
}

func notes(file *smf.SMF, opts ...Option) ([]pitch.Pitch, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Collect note starts with absolute ticks.
	var starts []onset
	for ti, track := range file.Tracks {
		var tick uint64
		for _, ev := range track {
			tick += uint64(ev.Delta)

			var ch, key, vel uint8
			if !midi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
				continue
			}
			if cfg.Channel != AllChannels && int(ch) != cfg.Channel {
				continue
			}
			starts = append(starts, onset{tick: tick, track: ti, key: key})
		}
	}
	if len(starts) == 0 {
		return nil, ErrNoNotes
	}

	// 2) Merge tracks by time; track order keeps the sort stable.
	sort.SliceStable(starts, func(i, j int) bool {
		return starts[i].tick < starts[j].tick
	})

	// 3) Reject chords and convert.
	out := make([]pitch.Pitch, len(starts))
	for i, s := range starts {
		if i > 0 && starts[i-1].tick == s.tick {
			return nil, fmt.Errorf("%w: tick %d", ErrPolyphonic, s.tick)
		}
		p, err := pitch.FromMIDI(int(s.key))
		if err != nil {
			return nil, err
		}
		out[i] = p
	}

	return out, nil
}
