package harmonic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slidepath/harmonic"
)

// TestTable_MatchesSeries checks every row against 12·log2(k): the interval
// is the rounded value and the deviation is the remainder to within the
// precision the table is written with.
func TestTable_MatchesSeries(t *testing.T) {
	for _, k := range harmonic.Partials() {
		h, err := harmonic.Lookup(k)
		require.NoError(t, err)

		exact := 12 * math.Log2(float64(k))
		assert.Equal(t, int(math.Round(exact)), h.Interval, "interval of partial %d", k)
		assert.InDelta(t, exact-float64(h.Interval), h.Deviation, 0.001, "deviation of partial %d", k)
	}
}

// TestTable_Literals pins the values that show up in formatted output.
func TestTable_Literals(t *testing.T) {
	assert.Equal(t, 0.0, harmonic.Deviation(2))
	assert.Equal(t, 0.0196, harmonic.Deviation(3))
	assert.Equal(t, -0.137, harmonic.Deviation(5))
	assert.Equal(t, 0.0196, harmonic.Deviation(6))
	assert.Equal(t, -0.312, harmonic.Deviation(7))
	assert.Equal(t, 34, harmonic.Interval(7))
}

func TestLookup_OutOfRange(t *testing.T) {
	_, err := harmonic.Lookup(0)
	assert.ErrorIs(t, err, harmonic.ErrUnknownPartial)
	_, err = harmonic.Lookup(8)
	assert.ErrorIs(t, err, harmonic.ErrUnknownPartial)

	assert.Panics(t, func() { harmonic.Deviation(8) })
}

// TestPartials_IsCopy makes sure callers cannot alter the table through the slice.
func TestPartials_IsCopy(t *testing.T) {
	ps := harmonic.Partials()
	require.Len(t, ps, 7)
	ps[0] = 99
	assert.Equal(t, harmonic.Partial(1), harmonic.Partials()[0])
}
