package condition

import (
	"github.com/chanmix51/lepr/machine"
)

// Evaluate reduces a condition to a boolean against the machine state.
// The state is only read.
func Evaluate(cond Condition, state *machine.State) (result bool, err error) {
	switch c := cond.(type) {
	case Literal:
		result = bool(c)
	case Comparison:
		var value uint8
		value, err = c.Source.Value(state)
		if err != nil {
			err = &ErrEvaluation{Condition: c, Err: err}
			return
		}
		result = c.Op.Compare(value, c.Value)
	default:
		err = ErrConditionInvalid
	}

	return
}
