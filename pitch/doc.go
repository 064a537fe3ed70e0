// Package pitch models absolute musical pitches as signed semitone offsets
// from concert A (A4 = 440 Hz).
//
// 🚀 What is a Pitch?
//
//	A Pitch is an int: 0 is A4, +1 is Bb4, −12 is A3. Every other view
//	(note name + octave, frequency in hertz, MIDI key number) is derived
//	from that single integer, so two pitches compare with == and order
//	with <.
//
// ✨ Key features:
//   - Parse scientific pitch notation: "Bb3", "C#4", "E-1".
//   - Flat spelling on output (Db, Eb, Gb, Ab, Bb), sharps accepted on input.
//   - Frequency round-trip: Hertz and FromHertz (nearest semitone).
//   - MIDI round-trip: MIDI and FromMIDI (A4 = key 69).
//
// ⚙️ Usage:
//
//	p, err := pitch.Parse("Bb3")
//	if err != nil {
//	  // errors.Is(err, pitch.ErrInvalidPitch)
//	}
//	fmt.Println(p, p.Hertz()) // Bb3 233.08...
//
// Parse only bounds the octave to [MinOctave, MaxOctave], the MIDI range.
// Rejecting octaves a particular instrument cannot reach is done by
// slide.Instrument.ParsePitch, which the CLI and the HTTP API use.
//
// All functions are pure and safe for concurrent use.
package pitch
