package caret

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chanmix51/lepr/condition"
)

type location struct {
	start, end int
	hints      []string
}

func (loc location) Location() (int, int) {
	return loc.start, loc.end
}

func (loc location) Hints() []string {
	return loc.hints
}

func TestMarkers(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name     string
		line     string
		loc      location
		expected string
	}{
		{"position", "A 0x12", location{2, 2, nil}, "  ↑"},
		{"start", "= 0x12", location{0, 0, nil}, "↑"},
		{"eol", "A =", location{3, 3, nil}, "   ↑"},
		{"span", "A = 0x1", location{4, 7, nil}, "    ↑ ↑"},
		{"span_two", "AX = 0x12", location{0, 2, nil}, "↑↑"},
		{"span_one", "B = 0x12", location{0, 1, nil}, "↑"},
		{"clamped", "A", location{5, 9, nil}, " ↑"},
		{"unicode", "é = 0x1", location{4, 7, nil}, "   ↑ ↑"},
	}

	for _, entry := range table {
		assert.Equal(entry.expected, Markers(entry.line, entry.loc), entry.name)
	}
}

func TestMessage(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("at position 2", Message("A 0x12", location{2, 2, nil}))
	assert.Equal("at position 2, expected comparator",
		Message("A 0x12", location{2, 2, []string{"comparator"}}))
	assert.Equal("somewhere between position 0 and 2, expected register8 or memory_address",
		Message("AX = 0x12", location{0, 2, []string{"register8", "memory_address"}}))
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	line := "A = 0x1"
	_, err := condition.Parse(line)
	loc, ok := err.(Locator)
	if !assert.True(ok) {
		return
	}

	var out bytes.Buffer
	assert.NoError(Render(&out, line, loc))
	assert.Equal("Syntax error:\n"+
		"A = 0x1\n"+
		"    ↑ ↑\n"+
		"somewhere between position 4 and 7, expected value8\n", out.String())

	line = "A >= 0x12 junk"
	_, err = condition.Parse(line)
	loc, ok = err.(Locator)
	if assert.True(ok) {
		assert.Equal("Syntax error:\n"+
			"A >= 0x12 junk\n"+
			"          ↑\n"+
			"at position 10, expected end of input\n", Sprint(line, loc))
	}
}
