package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	some := Some(3)
	value, exists := some.Unpack()
	assert.True(t, exists)
	assert.Equal(t, 3, value)
	assert.True(t, some.Exists())
	assert.Equal(t, 3, some.Or(7))
	assert.Equal(t, "3", some.String())

	none := None[int]()
	_, exists = none.Unpack()
	assert.False(t, exists)
	assert.False(t, none.Exists())
	assert.Equal(t, 7, none.Or(7))
	assert.Equal(t, AbsentText, none.String())

	var zero Optional[string]
	assert.Equal(t, None[string](), zero)
}
