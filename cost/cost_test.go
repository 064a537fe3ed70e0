package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/slidepath/cost"
	"github.com/katalvlaran/slidepath/harmonic"
	"github.com/katalvlaran/slidepath/slide"
)

func cand(pos slide.Position, k harmonic.Partial) slide.Candidate {
	return slide.Candidate{Position: pos, Partial: k, Offset: harmonic.Deviation(k)}
}

func TestParseMethod(t *testing.T) {
	for _, m := range cost.Methods() {
		got, err := cost.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := cost.ParseMethod("Distance")
	assert.ErrorIs(t, err, cost.ErrInvalidMethod)
	_, err = cost.ParseMethod("")
	assert.ErrorIs(t, err, cost.ErrInvalidMethod)
	_, err = cost.ParseMethod("shortest")
	require.ErrorIs(t, err, cost.ErrInvalidMethod)
	assert.Contains(t, err.Error(), `"shortest"`)
}

func TestOrder(t *testing.T) {
	assert.Equal(t, 2, cost.Direction.Order())
	for _, m := range []cost.Method{cost.Distance, cost.Gliss, cost.Legato} {
		assert.Equal(t, 1, m.Order(), m.String())
	}
}

func TestStep_Distance(t *testing.T) {
	assert.Equal(t, 3, cost.Step(cost.Distance, cost.Still, cand(5, 5), cand(2, 5)))
	assert.Equal(t, 3, cost.Step(cost.Distance, cost.Up, cand(2, 5), cand(5, 6)))
	assert.Equal(t, 0, cost.Step(cost.Distance, cost.Down, cand(4, 6), cand(4, 5)))
}

func TestStep_Direction(t *testing.T) {
	at := func(pos slide.Position) slide.Candidate { return cand(pos, 5) }
	cases := []struct {
		name     string
		prev     cost.Dir
		from, to slide.Position
		want     int
	}{
		{"first transition down", cost.None, 2, 1, 0},
		{"first transition up", cost.None, 1, 2, 0},
		{"first transition still", cost.None, 3, 3, 0},
		{"down, down", cost.Down, 2, 1, 0},
		{"up, up", cost.Up, 1, 2, 0},
		{"still, still", cost.Still, 3, 3, 0},
		{"up, down", cost.Up, 2, 1, 1},
		{"down, up", cost.Down, 1, 2, 1},
		{"up, still", cost.Up, 3, 3, 1},
		{"down, still", cost.Down, 3, 3, 1},
		{"still, up", cost.Still, 3, 4, 1},
		{"still, down", cost.Still, 3, 2, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cost.Step(cost.Direction, tc.prev, at(tc.from), at(tc.to)), tc.name)
	}
}

func TestStep_GlissLegato(t *testing.T) {
	same := [2]slide.Candidate{cand(1, 6), cand(4, 6)}
	diff := [2]slide.Candidate{cand(1, 6), cand(4, 7)}

	assert.Equal(t, 0, cost.Step(cost.Gliss, cost.Still, same[0], same[1]))
	assert.Equal(t, 1, cost.Step(cost.Gliss, cost.Still, diff[0], diff[1]))
	assert.Equal(t, 1, cost.Step(cost.Legato, cost.Still, same[0], same[1]))
	assert.Equal(t, 0, cost.Step(cost.Legato, cost.Still, diff[0], diff[1]))
}

func TestMove(t *testing.T) {
	assert.Equal(t, cost.Up, cost.Move(cand(1, 4), cand(5, 5)))
	assert.Equal(t, cost.Down, cost.Move(cand(5, 5), cand(1, 4)))
	assert.Equal(t, cost.Still, cost.Move(cand(3, 4), cand(3, 5)))
	assert.Equal(t, []int{0, 1, 2}, []int{cost.Down.Index(), cost.Still.Index(), cost.Up.Index()})
	assert.NotContains(t, cost.Dirs[:], cost.None)
}

func TestTotal(t *testing.T) {
	seq := []slide.Candidate{cand(5, 5), cand(4, 5), cand(3, 5), cand(4, 6)}

	total, travel := cost.Total(cost.Distance, seq)
	assert.Equal(t, 3, total)
	assert.Equal(t, 3, travel)

	total, _ = cost.Total(cost.Direction, seq)
	assert.Equal(t, 1, total, "down, down, up reverses once")

	total, _ = cost.Total(cost.Gliss, seq)
	assert.Equal(t, 1, total)

	total, _ = cost.Total(cost.Legato, seq)
	assert.Equal(t, 2, total)

	assert.Equal(t, 1, cost.PartialChanges(seq))

	// up, then held: the held note changes the sign once
	held := []slide.Candidate{cand(1, 5), cand(4, 6), cand(4, 5), cand(4, 6)}
	total, travel = cost.Total(cost.Direction, held)
	assert.Equal(t, 1, total)
	assert.Equal(t, 3, travel)

	total, travel = cost.Total(cost.Legato, seq[:1])
	assert.Zero(t, total)
	assert.Zero(t, travel)
}
