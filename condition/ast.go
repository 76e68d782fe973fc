package condition

import (
	"fmt"
)

// Operator is a comparison operator.
type Operator int

//go:generate go tool stringer -linecomment -type=Operator
const (
	OP_EQUAL            = Operator(0) // =
	OP_GREATER_OR_EQUAL = Operator(1) // >=
	OP_STRICTLY_GREATER = Operator(2) // >
	OP_LESSER_OR_EQUAL  = Operator(3) // <=
	OP_STRICTLY_LESSER  = Operator(4) // <
	OP_DIFFERENT        = Operator(5) // !=
)

// comparatorMap maps comparator tokens to operators.
var comparatorMap = map[string]Operator{
	"=":  OP_EQUAL,
	">=": OP_GREATER_OR_EQUAL,
	">":  OP_STRICTLY_GREATER,
	"<=": OP_LESSER_OR_EQUAL,
	"<":  OP_STRICTLY_LESSER,
	"!=": OP_DIFFERENT,
}

// Compare applies the operator to a and b, unsigned.
func (op Operator) Compare(a, b uint8) bool {
	switch op {
	case OP_EQUAL:
		return a == b
	case OP_GREATER_OR_EQUAL:
		return a >= b
	case OP_STRICTLY_GREATER:
		return a > b
	case OP_LESSER_OR_EQUAL:
		return a <= b
	case OP_STRICTLY_LESSER:
		return a < b
	case OP_DIFFERENT:
		return a != b
	}

	return false
}

// Condition is a parsed boolean condition.
// It is implemented by Comparison and Literal only.
type Condition interface {
	fmt.Stringer
	isCondition()
}

// Comparison compares a value source against a byte.
type Comparison struct {
	Op     Operator
	Source Source
	Value  uint8
}

func (Comparison) isCondition() {}

// String returns the comparison as condition text.
func (cmp Comparison) String() string {
	return fmt.Sprintf("%v %v 0x%02X", cmp.Source, cmp.Op, cmp.Value)
}

// Literal is a constant condition.
type Literal bool

func (Literal) isCondition() {}

func (lit Literal) String() string {
	if lit {
		return "true"
	}
	return "false"
}
