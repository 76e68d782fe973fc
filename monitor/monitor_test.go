package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chanmix51/lepr/condition"
	"github.com/chanmix51/lepr/machine"
)

func newMonitor() *Monitor {
	state := machine.NewState(0x0400)
	state.Accumulator = 0x12
	state.Memory[0x1234] = 0x55

	return NewMonitor(state)
}

func TestMonitor_Conditions(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()

	table := []struct {
		line     string
		expected string
	}{
		{"A = 0x12", "A = 0x12 => true\n"},
		{"A != 0x12", "A != 0x12 => false\n"},
		{"A > 0x11", "A > 0x11 => true\n"},
		{"#0x1234 >= 0x50", "#0x1234 >= 0x50 => true\n"},
		{"#0x1234<0x50", "#0x1234 < 0x50 => false\n"},
		{"  true", "true => true\n"},
		{"false", "false => false\n"},
	}

	for _, entry := range table {
		out, quit, err := mon.Execute(entry.line)
		assert.NoError(err, entry.line)
		assert.False(quit, entry.line)
		assert.Equal(entry.expected, out, entry.line)
	}
}

func TestMonitor_ConditionErrors(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()

	_, _, err := mon.Execute("B = 0x12")
	var syntax *condition.ErrSyntax
	assert.ErrorAs(err, &syntax)

	_, _, err = mon.Execute("A = 0xZZ")
	assert.ErrorIs(err, condition.ErrHex)

	mon.State.Memory = mon.State.Memory[:0x100]
	_, _, err = mon.Execute("#0x1234 = 0x55")
	assert.ErrorIs(err, machine.ErrOutOfBounds)
}

func TestMonitor_Evaluate(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()
	mon.Verbose = true

	cond, result, err := mon.Evaluate("SP = 0x00")
	assert.NoError(err)
	assert.True(result)
	assert.Equal(condition.Comparison{Op: condition.OP_EQUAL, Source: condition.Source{Kind: condition.SOURCE_STACK_POINTER}}, cond)
}

func TestMonitor_Commands(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()

	out, quit, err := mon.Execute("registers")
	assert.NoError(err)
	assert.False(quit)
	assert.Equal(mon.State.String(), out)

	out, _, err = mon.Execute("memory 0x1230 8")
	assert.NoError(err)
	assert.Equal("0x1230: 00 00 00 00 55 00 00 00\n", out)

	out, _, err = mon.Execute("memory #0x1234 1")
	assert.NoError(err)
	assert.Equal("0x1234: 55\n", out)

	out, _, err = mon.Execute("memory 0x1234")
	assert.NoError(err)
	assert.Equal("0x1234: 55 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00\n", out)

	out, _, err = mon.Execute("help")
	assert.NoError(err)
	assert.Contains(out, "registers")
	assert.Contains(out, "#0xHHHH OP 0xHH")

	out, quit, err = mon.Execute("")
	assert.NoError(err)
	assert.False(quit)
	assert.Empty(out)

	for _, line := range []string{"quit", " exit "} {
		_, quit, err = mon.Execute(line)
		assert.NoError(err, line)
		assert.True(quit, line)
	}
}

func TestMonitor_CommandErrors(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()

	table := []struct {
		line     string
		expected error
	}{
		{"help me", ErrCommandSyntax},
		{"registers A", ErrCommandSyntax},
		{"memory", ErrCommandSyntax},
		{"memory 1 2 3", ErrCommandSyntax},
		{"memory zz", ErrParseNumber("zz")},
		{"memory 0x10 0x10000", ErrParseNumber("0x10000")},
		{"memory 0xffff 2", machine.ErrOutOfBounds},
	}

	for _, entry := range table {
		_, quit, err := mon.Execute(entry.line)
		assert.False(quit, entry.line)
		assert.ErrorIs(err, entry.expected, entry.line)

		var cmd *ErrCommand
		assert.ErrorAs(err, &cmd, entry.line)
	}
}
