package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsV7(t *testing.T) {
	id := New()
	assert.NotEqual(t, Nil, id)
	assert.True(t, IsUUIDv7(id))
}

func TestParseRoundTrip(t *testing.T) {
	id := New()
	parsed, err := Parse(id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = Parse("not-a-uuid")
	assert.Error(t, err)
}
