package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntern(t *testing.T) {
	a := Intern("symbol-test-a")
	b := Intern("symbol-test-b")
	assert.NotEqual(t, ID(0), a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Intern("symbol-test-a"))

	s, ok := Name(b)
	assert.True(t, ok)
	assert.Equal(t, "symbol-test-b", s)
}

func TestInternAll(t *testing.T) {
	ids := InternAll("symbol-test-c", "symbol-test-d", "symbol-test-c")
	if assert.Len(t, ids, 3) {
		assert.Equal(t, ids[0], ids[2])
		assert.NotEqual(t, ids[0], ids[1])
		assert.Equal(t, Intern("symbol-test-d"), ids[1])
	}
}

func TestUnknownID(t *testing.T) {
	_, ok := Name(0)
	assert.False(t, ok)
	_, ok = Name(0xfffffff0)
	assert.False(t, ok)
	assert.Equal(t, "#<SYMBOL 0xfffffff0>", ID(0xfffffff0).String())
	assert.Equal(t, "lambda", Intern("lambda").String())
}
