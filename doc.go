// Package slidepath turns a melody into trombone slide positions and lip
// corrections, choosing for every note the (position, partial) pair that
// makes the whole passage cheapest under a selectable objective.
//
// 🚀 What is slidepath?
//
//	Most notes on a trombone can be played in more than one slide
//	position, on different partials of the harmonic series, each needing
//	its own small embouchure correction. slidepath enumerates every option
//	per note and runs a dynamic program over the sequence to pick one.
//
// ✨ Objectives:
//   - distance  – least total slide travel (default)
//   - direction – fewest slide direction reversals
//   - gliss     – fewest partial changes (slide glissandi)
//   - legato    – fewest repeated partials (lip slurs)
//
// Under the hood:
//
//	pitch/     - semitone pitch model, note names, Hz and MIDI conversion
//	harmonic/  - static harmonic-series table (interval + deviation per partial)
//	slide/     - instrument model and candidate generator
//	cost/      - objective functions
//	optimize/  - layered-DAG dynamic program with predecessor backtracking
//	format/    - "<pitch>\t<ordinal><offset>" output
//	config/    - YAML instrument profiles, environment settings
//	midifile/  - Standard MIDI File input
//	server/    - HTTP JSON API
//	cmd/slidepath - command line
//
// Quick example:
//
//	$ slidepath Bb3 B3 C4 D4
//	Bb3	5th-0.137
//	B3	4th-0.137
//	C4	3rd-0.137
//	D4	4th+0.0196
package slidepath
