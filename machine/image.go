package machine

import (
	"io"
)

// LoadImage copies a raw memory image into memory, starting at base.
// It returns the number of bytes loaded.
func LoadImage(state *State, input io.Reader, base Address) (count int, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	err = state.Write(base, data...)
	if err != nil {
		return
	}

	count = len(data)
	return
}
