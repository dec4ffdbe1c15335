package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/value"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	e := NewGlobal()
	e.Define("a", value.Number(1))
	v, ok := e.Get("a")
	assert.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestEnvironment_GetUnboundFails(t *testing.T) {
	e := NewGlobal()
	_, ok := e.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_ChildShadowsParentButParentSurvives(t *testing.T) {
	outer := NewGlobal()
	outer.Define("a", value.Number(1))

	inner := NewChild(outer)
	inner.Define("a", value.Number(2))

	v, ok := inner.Get("a")
	assert.True(t, ok)
	assert.Equal(t, value.Number(2), v)

	v, ok = outer.Get("a")
	assert.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestEnvironment_AssignUpdatesNearestBinding(t *testing.T) {
	outer := NewGlobal()
	outer.Define("a", value.Number(1))
	inner := NewChild(outer)

	ok := inner.Assign("a", value.Number(9))
	assert.True(t, ok)

	v, _ := outer.Get("a")
	assert.Equal(t, value.Number(9), v)
}

func TestEnvironment_AssignUnboundFails(t *testing.T) {
	e := NewGlobal()
	ok := e.Assign("missing", value.Number(1))
	assert.False(t, ok)
}
