package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair(t *testing.T) {
	p := NewPair(1, 2.5)

	assert.Equal(t, 1, p.First())
	assert.Equal(t, 2.5, p.Second())

	a, b := p.Values()
	assert.Equal(t, 1, a)
	assert.Equal(t, 2.5, b)
	assert.Equal(t, "(1, 2.5)", p.String())
}

func TestPair_Comparable(t *testing.T) {
	assert.True(t, NewPair(1, 2) == NewPair(1, 2))
	assert.False(t, NewPair(1, 2) == NewPair(2, 1))
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, NopLogger{}, OrNop(nil))

	var l Logger = NopLogger{}
	assert.Equal(t, l, OrNop(l))

	// NopLogger must stay usable through chaining.
	OrNop(nil).WithField("k", "v").WithFields(map[string]interface{}{"a": 1}).Warn("ignored")
}
