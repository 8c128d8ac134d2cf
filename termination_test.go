package plango

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNever(t *testing.T) {
	cond := Never()

	assert.False(t, cond())
	assert.False(t, cond())
}

func TestAfter(t *testing.T) {
	t.Run("NotYetElapsed", func(t *testing.T) {
		cond := After(time.Hour)
		assert.False(t, cond())
	})

	t.Run("AlreadyElapsed", func(t *testing.T) {
		cond := After(-time.Millisecond)
		assert.True(t, cond())
	})

	t.Run("Elapses", func(t *testing.T) {
		cond := After(5 * time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		assert.True(t, cond())
	})
}

func TestAnyOf(t *testing.T) {
	assert.False(t, AnyOf()())
	assert.False(t, AnyOf(nil, Never())())
	assert.True(t, AnyOf(Never(), After(-time.Millisecond))())
}
