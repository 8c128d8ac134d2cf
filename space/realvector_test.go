package space

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRealVectorInvalidBounds(t *testing.T) {
	_, err := NewRealVector(Bounds{Low: []float64{0, 0}, High: []float64{1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = NewRealVector(Bounds{Low: []float64{2}, High: []float64{1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = NewRealVector(Bounds{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestNewStateDimensionMismatch(t *testing.T) {
	rv, err := NewRealVector(NewBounds(2, 0, 1))
	require.NoError(t, err)

	_, err = rv.NewState(1, 2, 3)
	require.Error(t, err)

	var dm *ErrDimensionMismatch
	require.True(t, errors.As(err, &dm))
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)

	assert.Panics(t, func() { rv.MustState(1) })
}

func TestSampleUniformWithinBounds(t *testing.T) {
	rv, err := NewRealVector(NewBounds(3, -2, 5))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		s := rv.SampleUniform()
		require.True(t, rv.IsValid(s))
		rv.Free(s)
	}
	assert.Equal(t, int64(0), rv.LiveStates())
}

func TestSampleUniformNear(t *testing.T) {
	rv, err := NewRealVector(NewBounds(2, 0, 10))
	require.NoError(t, err)

	center := rv.MustState(5, 5)
	for i := 0; i < 100; i++ {
		s := rv.SampleUniformNear(center, 0.5)
		for j, v := range s.(*RealVectorState).Values() {
			assert.InDelta(t, center.(*RealVectorState).At(j), v, 0.5)
		}
		rv.Free(s)
	}
	rv.Free(center)
	assert.Equal(t, int64(0), rv.LiveStates())
}

func TestDistance(t *testing.T) {
	rv, err := NewRealVector(NewBounds(2, -10, 10))
	require.NoError(t, err)

	a := rv.MustState(0, 0)
	b := rv.MustState(3, 4)
	assert.InDelta(t, 5.0, rv.Distance(a, b), 1e-12)
	assert.InDelta(t, 5.0, rv.Distance(b, a), 1e-12)
	assert.Zero(t, rv.Distance(a, a))
	rv.Free(a)
	rv.Free(b)
}

func TestCloneFreeAccounting(t *testing.T) {
	rv, err := NewRealVector(NewBounds(2, 0, 1))
	require.NoError(t, err)

	a := rv.MustState(0.25, 0.75)
	assert.Equal(t, int64(1), rv.LiveStates())

	b := rv.Clone(a)
	assert.Equal(t, int64(2), rv.LiveStates())
	assert.Zero(t, rv.Distance(a, b))

	// The clone is independent of the original.
	rv.Free(a)
	assert.Equal(t, int64(1), rv.LiveStates())
	assert.InDelta(t, 0.25, b.(*RealVectorState).At(0), 1e-12)

	rv.Free(b)
	assert.Equal(t, int64(0), rv.LiveStates())
}

func TestFreeMisuse(t *testing.T) {
	rv, err := NewRealVector(NewBounds(1, 0, 1))
	require.NoError(t, err)

	assert.NotPanics(t, func() { rv.Free(nil) })

	s := rv.MustState(0.5)
	rv.Free(s)
	assert.Panics(t, func() { rv.Free(s) })
	assert.Panics(t, func() { rv.IsValid(s) })
	assert.Panics(t, func() { rv.Free("not a state") })
}

func TestCheckMotion(t *testing.T) {
	// A vertical wall at x in [4, 6] blocks every crossing motion.
	wall := func(q []float64) bool {
		return q[0] < 4 || q[0] > 6
	}
	rv, err := NewRealVector(NewBounds(2, 0, 10), func(o *RealVectorOptions) {
		o.Checker = wall
	})
	require.NoError(t, err)

	left := rv.MustState(1, 5)
	right := rv.MustState(9, 5)
	up := rv.MustState(1, 9)

	assert.False(t, rv.CheckMotion(left, right))
	assert.True(t, rv.CheckMotion(left, up))

	// Invalid endpoints fail immediately.
	blocked := rv.MustState(5, 5)
	assert.False(t, rv.CheckMotion(left, blocked))

	for _, s := range []State{left, right, up, blocked} {
		rv.Free(s)
	}
}

func TestCheckMotionResolution(t *testing.T) {
	// A thin slit is only detected when the resolution is fine enough.
	slit := func(q []float64) bool {
		return math.Abs(q[0]-5) > 0.05
	}

	coarse, err := NewRealVector(NewBounds(1, 0, 10), func(o *RealVectorOptions) {
		o.Checker = slit
		o.CheckResolution = 3
	})
	require.NoError(t, err)

	fine, err := NewRealVector(NewBounds(1, 0, 10), func(o *RealVectorOptions) {
		o.Checker = slit
		o.CheckResolution = 0.01
	})
	require.NoError(t, err)

	a := coarse.MustState(1)
	b := coarse.MustState(9)
	assert.True(t, coarse.CheckMotion(a, b))

	c := fine.MustState(1)
	d := fine.MustState(9)
	assert.False(t, fine.CheckMotion(c, d))

	coarse.Free(a)
	coarse.Free(b)
	fine.Free(c)
	fine.Free(d)
}
