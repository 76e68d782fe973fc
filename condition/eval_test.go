package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chanmix51/lepr/machine"
)

func evaluate(t *testing.T, text string, state *machine.State) (result bool, err error) {
	cond, err := Parse(text)
	if err != nil {
		t.Fatalf("%v: %v", text, err)
		return
	}

	return Evaluate(cond, state)
}

func TestEvaluate_Registers(t *testing.T) {
	assert := assert.New(t)

	state := machine.NewState(0x0400)
	state.Accumulator = 0x12
	state.X = 0x01
	state.Y = 0xfe
	state.StackPointer = 0xfd

	table := []struct {
		text     string
		expected bool
	}{
		{"A = 0x12", true},
		{"A != 0x12", false},
		{"A > 0x11", true},
		{"A > 0x12", false},
		{"A >= 0x12", true},
		{"A < 0x12", false},
		{"A <= 0x12", true},
		{"A < 0x13", true},
		{"X = 0x01", true},
		{"Y > 0x7f", true}, // unsigned
		{"Y < 0x01", false},
		{"S = 0x30", true},
		{"SP = 0xfd", true},
		{"SP = 0x30", false},
		{"true", true},
		{"false", false},
	}

	for _, entry := range table {
		result, err := evaluate(t, entry.text, state)
		assert.NoError(err, entry.text)
		assert.Equal(entry.expected, result, entry.text)
	}
}

func TestEvaluate_Memory(t *testing.T) {
	assert := assert.New(t)

	state := machine.NewState(0)
	state.Memory[0x1234] = 0x55

	result, err := evaluate(t, "#0x1234 >= 0x50", state)
	assert.NoError(err)
	assert.True(result)

	result, err = evaluate(t, "#0x1234 < 0x50", state)
	assert.NoError(err)
	assert.False(result)

	result, err = evaluate(t, "#0x1235 = 0x00", state)
	assert.NoError(err)
	assert.True(result)

	result, err = evaluate(t, "#0xffff = 0x00", state)
	assert.NoError(err)
	assert.True(result)
}

func TestEvaluate_OutOfBounds(t *testing.T) {
	assert := assert.New(t)

	state := machine.NewStateSize(0, 0x100)

	for _, text := range []string{"#0x0100 = 0x00", "#0x010000 != 0x00", "#0xffffffff < 0xff"} {
		result, err := evaluate(t, text, state)
		assert.False(result, text)
		assert.ErrorIs(err, machine.ErrOutOfBounds, text)

		var evaluation *ErrEvaluation
		if assert.ErrorAs(err, &evaluation, text) {
			cond, _ := Parse(text)
			assert.Equal(cond, evaluation.Condition, text)
		}
	}

	// 0x0100 does not wrap onto 0x00.
	state.Memory[0] = 0x42
	_, err := evaluate(t, "#0x0100 = 0x42", state)
	assert.Error(err)
}

func TestEvaluate_Literal(t *testing.T) {
	assert := assert.New(t)

	for _, state := range []*machine.State{nil, machine.NewStateSize(0, 0), machine.NewState(0)} {
		result, err := Evaluate(Literal(true), state)
		assert.NoError(err)
		assert.True(result)

		result, err = Evaluate(Literal(false), state)
		assert.NoError(err)
		assert.False(result)
	}
}

func TestEvaluate_ReadOnly(t *testing.T) {
	assert := assert.New(t)

	state := machine.NewState(0x0400)
	state.Accumulator = 0x12
	state.Memory[0x1234] = 0x55

	before := *state
	before.Memory = append([]uint8(nil), state.Memory...)

	for _, text := range []string{"A = 0x12", "#0x1234 >= 0x50", "true"} {
		_, err := evaluate(t, text, state)
		assert.NoError(err)
	}

	assert.Equal(&before, state)
}

func TestEvaluate_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Evaluate(nil, machine.NewState(0))
	assert.ErrorIs(err, ErrConditionInvalid)

	_, err = Evaluate(Comparison{Source: Source{Kind: SourceKind(42)}}, machine.NewState(0))
	assert.ErrorIs(err, ErrConditionInvalid)
}

func TestOperator_Compare(t *testing.T) {
	assert := assert.New(t)

	for a := range 256 {
		for _, b := range []uint8{0x00, 0x7f, 0x80, 0xff} {
			a := uint8(a)
			assert.Equal(a == b, OP_EQUAL.Compare(a, b))
			assert.Equal(a >= b, OP_GREATER_OR_EQUAL.Compare(a, b))
			assert.Equal(a > b, OP_STRICTLY_GREATER.Compare(a, b))
			assert.Equal(a <= b, OP_LESSER_OR_EQUAL.Compare(a, b))
			assert.Equal(a < b, OP_STRICTLY_LESSER.Compare(a, b))
			assert.Equal(a != b, OP_DIFFERENT.Compare(a, b))
		}
	}

	assert.False(Operator(42).Compare(1, 1))
}
