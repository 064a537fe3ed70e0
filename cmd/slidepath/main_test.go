package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// invoke runs the command with a clean method/instrument environment.
func invoke(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("SLIDEPATH_METHOD", "")
	t.Setenv("SLIDEPATH_INSTRUMENT", "")

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Scenarios(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{
			[]string{"Bb3", "B3", "C4", "D4"},
			"Bb3\t5th-0.137\nB3\t4th-0.137\nC4\t3rd-0.137\nD4\t4th+0.0196\n",
		},
		{
			[]string{"-m", "direction", "C#4", "D4", "C#4"},
			"C#4\t5th+0.0196\nD4\t4th+0.0196\nC#4\t2nd-0.137\n",
		},
		{
			[]string{"-m", "gliss", "C#4", "F4", "C4"},
			"C#4\t5th+0.0196\nF4\t1st+0.0196\nC4\t6th+0.0196\n",
		},
		{
			[]string{"-m", "legato", "C4", "D4", "E4", "D4", "C4"},
			"C4\t3rd-0.137\nD4\t4th+0.0196\nE4\t5th-0.312\nD4\t4th+0.0196\nC4\t3rd-0.137\n",
		},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			code, stdout, stderr := invoke(t, tc.args...)
			require.Equal(t, exitOK, code, stderr)
			assert.Equal(t, tc.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestRun_Deterministic(t *testing.T) {
	args := []string{"-m", "direction", "F3", "Bb3", "D4", "F4", "D4", "Bb3"}
	_, first, _ := invoke(t, args...)
	for i := 0; i < 10; i++ {
		_, again, _ := invoke(t, args...)
		require.Equal(t, first, again)
	}
}

func TestRun_InvalidPitch(t *testing.T) {
	code, stdout, stderr := invoke(t, "C4", "H4")
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `"H4"`)
}

// TestRun_InvalidMethod fails before looking at the pitches.
func TestRun_InvalidMethod(t *testing.T) {
	code, stdout, stderr := invoke(t, "-m", "fastest", "H4")
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `"fastest"`)
	assert.NotContains(t, stderr, "H4")
}

func TestRun_NoPitches(t *testing.T) {
	code, stdout, stderr := invoke(t)
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "usage:")
}

func TestRun_Unreachable(t *testing.T) {
	// Bb4 lies in the tenor's top octave but above its highest partial.
	code, stdout, stderr := invoke(t, "C4", "D4", "Bb4")
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "note 3")

	// C2 falls in the gap between the pedal tones and the 2nd partial.
	code, _, _ = invoke(t, "C2")
	assert.Equal(t, exitError, code)
}

// TestRun_OctaveOutOfRange rejects octaves the instrument cannot reach as
// malformed input.
func TestRun_OctaveOutOfRange(t *testing.T) {
	for _, tok := range []string{"C9", "C6", "C5", "B0"} {
		code, stdout, stderr := invoke(t, "C4", tok)
		assert.Equal(t, exitUsage, code, tok)
		assert.Empty(t, stdout, tok)
		assert.Contains(t, stderr, `"`+tok+`"`)
		assert.Contains(t, stderr, "outside tenor range [1, 4]")
	}
}

func TestRun_MethodFromEnv(t *testing.T) {
	t.Setenv("SLIDEPATH_INSTRUMENT", "")
	t.Setenv("SLIDEPATH_METHOD", "gliss")
	var out, errOut bytes.Buffer
	code := run([]string{"C#4", "F4", "C4"}, &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())
	assert.Equal(t, "C#4\t5th+0.0196\nF4\t1st+0.0196\nC4\t6th+0.0196\n", out.String())
}

func TestRun_InstrumentProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nopedal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: no-pedal\nmin_partial: 2\n"), 0o600))

	// the profile starts at E2, so octave 1 is out of range
	code, _, _ := invoke(t, "-instrument", path, "Bb1")
	assert.Equal(t, exitUsage, code)

	code, _, _ = invoke(t, "-instrument", path, "D2")
	assert.Equal(t, exitError, code)

	code, stdout, _ := invoke(t, "-instrument", path, "Bb2")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "Bb2\t1st+0\n", stdout)

	code, _, _ = invoke(t, "-instrument", filepath.Join(t.TempDir(), "nope.yaml"), "C4")
	assert.Equal(t, exitError, code)
}

func TestRun_MIDI(t *testing.T) {
	var tr smf.Track
	for _, key := range []uint8{58, 59, 60, 62} {
		tr.Add(0, midi.NoteOn(0, key, 90))
		tr.Add(240, midi.NoteOff(0, key))
	}
	tr.Close(0)
	s := smf.New()
	require.NoError(t, s.Add(tr))
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "line.mid")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	code, stdout, stderr := invoke(t, "-midi", path)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "Bb3\t5th-0.137\nB3\t4th-0.137\nC4\t3rd-0.137\nD4\t4th+0.0196\n", stdout)

	code, _, _ = invoke(t, "-midi", path, "C4")
	assert.Equal(t, exitUsage, code)
}
