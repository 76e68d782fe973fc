package condition

import (
	"encoding/hex"
	"strings"

	"github.com/chanmix51/lepr/machine"
)

// decodeHex strictly decodes the payload of a prefixed hexadecimal token.
func decodeHex(text string, prefix string) (data []byte, err error) {
	data, err = hex.DecodeString(strings.TrimPrefix(text, prefix))
	if err != nil {
		err = &ErrMalformedHex{Text: text, Err: err}
		data = nil
	}
	return
}

// buildMemory decodes a memory_address, most significant byte first.
func buildMemory(node *Node) (src Source, err error) {
	data, err := decodeHex(node.Text, MEMORY_PREFIX)
	if err != nil {
		return
	}

	var addr machine.Address
	for _, b := range data {
		addr = addr<<8 | machine.Address(b)
	}

	src = Memory(addr)
	return
}

// buildValue8 decodes a value8 into exactly one byte.
func buildValue8(node *Node) (value uint8, err error) {
	data, err := decodeHex(node.Text, VALUE8_PREFIX)
	if err != nil {
		return
	}

	if len(data) != 1 {
		err = &ErrInternal{Rule: node.Rule, Text: node.Text}
		return
	}

	value = data[0]
	return
}

// buildOperation converts an operation node into a Comparison.
func buildOperation(node *Node) (cond Condition, err error) {
	if len(node.Children) != 3 {
		err = &ErrInternal{Rule: node.Rule, Text: node.Text}
		return
	}

	lhs, middle, rhs := node.Children[0], node.Children[1], node.Children[2]

	var src Source
	switch lhs.Rule {
	case RULE_REGISTER8:
		src, err = Register(lhs.Text)
	case RULE_MEMORY_ADDRESS:
		src, err = buildMemory(lhs)
	default:
		err = &ErrInternal{Rule: lhs.Rule, Text: lhs.Text}
	}
	if err != nil {
		return
	}

	op, ok := comparatorMap[middle.Text]
	if middle.Rule != RULE_COMPARATOR || !ok {
		err = &ErrInternal{Rule: middle.Rule, Text: middle.Text}
		return
	}

	if rhs.Rule != RULE_VALUE8 {
		err = &ErrInternal{Rule: rhs.Rule, Text: rhs.Text}
		return
	}

	value, err := buildValue8(rhs)
	if err != nil {
		return
	}

	cond = Comparison{Op: op, Source: src, Value: value}
	return
}

// Build converts a parse tree into a Condition.
func Build(tree *Node) (cond Condition, err error) {
	if tree == nil || tree.Rule != RULE_BOOLEAN_EXPRESSION || len(tree.Children) != 1 {
		err = &ErrInternal{Rule: RULE_BOOLEAN_EXPRESSION}
		if tree != nil {
			err = &ErrInternal{Rule: tree.Rule, Text: tree.Text}
		}
		return
	}

	node := tree.Children[0]
	switch node.Rule {
	case RULE_BOOLEAN:
		cond = Literal(node.Text == "true")
	case RULE_OPERATION:
		cond, err = buildOperation(node)
	default:
		err = &ErrInternal{Rule: node.Rule, Text: node.Text}
	}

	return
}

// Parse parses text into a Condition.
func Parse(text string) (cond Condition, err error) {
	tree, err := ParseTree(text)
	if err != nil {
		return
	}

	return Build(tree)
}
