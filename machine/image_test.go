package machine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errors.New("broken")
}

func TestLoadImage(t *testing.T) {
	assert := assert.New(t)

	state := NewStateSize(0, 0x20)

	count, err := LoadImage(state, bytes.NewReader([]byte{0xa9, 0x12, 0x00}), 0x10)
	assert.NoError(err)
	assert.Equal(3, count)
	assert.Equal([]uint8{0xa9, 0x12, 0x00}, state.Memory[0x10:0x13])

	count, err = LoadImage(state, bytes.NewReader(make([]byte, 0x11)), 0x10)
	assert.ErrorIs(err, ErrOutOfBounds)
	assert.Equal(0, count)

	_, err = LoadImage(state, failReader{}, 0)
	assert.EqualError(err, "broken")
}
