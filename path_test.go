package plango

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/plango/space"
	"github.com/hupe1980/plango/testutil"
)

func TestPath(t *testing.T) {
	sp := testutil.Box2D(0, 10, nil, 1)

	a := sp.MustState(0, 0)
	b := sp.MustState(3, 0)
	c := sp.MustState(3, 4)

	p := NewPath(sp, a, b, c)

	// The path owns clones; the inputs stay with the caller.
	sp.Free(a)
	sp.Free(b)
	sp.Free(c)
	assert.EqualValues(t, 3, sp.LiveStates())

	require.Equal(t, 3, p.Len())
	assert.Equal(t, []float64{3, 0}, p.State(1).(*space.RealVectorState).Values())
	assert.InDelta(t, 7.0, p.Cost(), 1e-9)
	assert.True(t, p.Valid())

	states := p.States()
	require.Len(t, states, 3)
	assert.Same(t, p.State(0), states[0])

	clone := p.Clone()
	assert.Equal(t, 3, clone.Len())
	assert.InDelta(t, p.Cost(), clone.Cost(), 1e-9)
	assert.NotSame(t, p.State(0), clone.State(0))

	p.Free()
	clone.Free()
	assert.EqualValues(t, 0, sp.LiveStates())
}

func TestPathValid(t *testing.T) {
	// Vertical wall over x in [4, 6].
	sp := testutil.Box2D(0, 10, func(x, y float64) bool {
		return x < 4 || x > 6
	}, 1)

	t.Run("Empty", func(t *testing.T) {
		p := NewPath(sp)
		defer p.Free()
		assert.False(t, p.Valid())
	})

	t.Run("SingleState", func(t *testing.T) {
		st := sp.MustState(1, 5)
		defer sp.Free(st)

		p := NewPath(sp, st)
		defer p.Free()
		assert.True(t, p.Valid())
	})

	t.Run("SingleInvalidState", func(t *testing.T) {
		st := sp.MustState(5, 5)
		defer sp.Free(st)

		p := NewPath(sp, st)
		defer p.Free()
		assert.False(t, p.Valid())
	})

	t.Run("MotionThroughWall", func(t *testing.T) {
		a := sp.MustState(1, 5)
		b := sp.MustState(9, 5)
		defer sp.Free(a)
		defer sp.Free(b)

		p := NewPath(sp, a, b)
		defer p.Free()
		assert.False(t, p.Valid())
	})
}

func TestPathRemoveBetween(t *testing.T) {
	sp := testutil.Box2D(0, 10, nil, 1)

	newPath := func() *Path {
		states := make([]space.State, 5)
		for i := range states {
			states[i] = sp.MustState(float64(i), 0)
		}
		p := NewPath(sp, states...)
		for _, st := range states {
			sp.Free(st)
		}
		return p
	}

	t.Run("RemovesInterior", func(t *testing.T) {
		p := newPath()
		defer p.Free()

		p.RemoveBetween(1, 3)
		require.Equal(t, 4, p.Len())
		assert.Equal(t, []float64{1, 0}, p.State(1).(*space.RealVectorState).Values())
		assert.Equal(t, []float64{3, 0}, p.State(2).(*space.RealVectorState).Values())
		assert.EqualValues(t, 4, sp.LiveStates())
	})

	t.Run("SwappedIndices", func(t *testing.T) {
		p := newPath()
		defer p.Free()

		p.RemoveBetween(4, 0)
		require.Equal(t, 2, p.Len())
		assert.Equal(t, []float64{0, 0}, p.State(0).(*space.RealVectorState).Values())
		assert.Equal(t, []float64{4, 0}, p.State(1).(*space.RealVectorState).Values())
	})

	t.Run("NoInterior", func(t *testing.T) {
		p := newPath()
		defer p.Free()

		p.RemoveBetween(2, 3)
		assert.Equal(t, 5, p.Len())
	})

	t.Run("FreeReleasesAll", func(t *testing.T) {
		p := newPath()
		p.RemoveBetween(0, 4)
		p.Free()
		assert.EqualValues(t, 0, sp.LiveStates())
	})
}
