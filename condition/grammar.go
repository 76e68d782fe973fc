// Copyright 2025, The lepr Authors

package condition

import (
	"fmt"
	"strings"
)

// Rule is a grammar rule, tagging the nodes of a parse tree.
type Rule int

//go:generate go tool stringer -linecomment -type=Rule
const (
	RULE_BOOLEAN_EXPRESSION = Rule(0) // boolean_expression
	RULE_BOOLEAN            = Rule(1) // boolean
	RULE_OPERATION          = Rule(2) // operation
	RULE_REGISTER8          = Rule(3) // register8
	RULE_MEMORY_ADDRESS     = Rule(4) // memory_address
	RULE_COMPARATOR         = Rule(5) // comparator
	RULE_VALUE8             = Rule(6) // value8
	RULE_EOI                = Rule(7) // end of input
)

const (
	MEMORY_PREFIX     = "#0x" // Prefix of a memory_address.
	MEMORY_DIGITS_MAX = 8     // Maximum payload length of a memory_address.
	VALUE8_PREFIX     = "0x"  // Prefix of a value8.
	VALUE8_DIGITS     = 2     // Payload length of a value8.
)

// comparators, longest first so that ">=" is not read as ">".
var comparators = []string{">=", "<=", "!=", "=", ">", "<"}

// operandRules are the rules accepted at the start of a sentence.
var operandRules = []Rule{RULE_BOOLEAN, RULE_REGISTER8, RULE_MEMORY_ADDRESS}

// Node is a parse tree node. Start and End are byte offsets into the parsed
// text, and Text is the slice between them.
type Node struct {
	Rule     Rule
	Start    int
	End      int
	Text     string
	Children []*Node
}

// String returns the node and its children, for diagnostics.
func (node *Node) String() string {
	if len(node.Children) == 0 {
		return fmt.Sprintf("%v(%q)", node.Rule, node.Text)
	}

	children := make([]string, len(node.Children))
	for n, child := range node.Children {
		children[n] = child.String()
	}

	return fmt.Sprintf("%v(%v)", node.Rule, strings.Join(children, ", "))
}

// parser is the state of a single ParseTree call.
type parser struct {
	input string
	pos   int
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isWord(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_'
}

// skipSpace moves past any whitespace.
func (p *parser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

// word returns the length of the word characters run at offset.
func (p *parser) word(offset int) (length int) {
	for offset+length < len(p.input) && isWord(p.input[offset+length]) {
		length++
	}
	return
}

// fail builds a syntax error over [start, end).
func (p *parser) fail(start, end int, expected ...Rule) error {
	return &ErrSyntax{
		Input:    p.input,
		Start:    start,
		End:      end,
		Expected: expected,
	}
}

// leaf consumes length bytes as a node of the given rule.
func (p *parser) leaf(rule Rule, length int) (node *Node) {
	node = &Node{
		Rule:  rule,
		Start: p.pos,
		End:   p.pos + length,
		Text:  p.input[p.pos : p.pos+length],
	}
	p.pos += length
	return
}

// booleanExpression := boolean | operation
func (p *parser) booleanExpression() (node *Node, err error) {
	p.skipSpace()

	node = &Node{Rule: RULE_BOOLEAN_EXPRESSION, Start: p.pos}

	var child *Node
	if strings.HasPrefix(p.input[p.pos:], "#") {
		child, err = p.operation()
	} else {
		length := p.word(p.pos)
		text := p.input[p.pos : p.pos+length]
		_, is_register := registerMap[text]
		switch {
		case text == "true" || text == "false":
			child = p.leaf(RULE_BOOLEAN, length)
		case is_register:
			child, err = p.operation()
		case length == 0:
			err = p.fail(p.pos, p.pos, operandRules...)
		default:
			err = p.fail(p.pos, p.pos+length, operandRules...)
		}
	}
	if err != nil {
		node = nil
		return
	}

	node.Children = []*Node{child}
	node.End = child.End
	node.Text = p.input[node.Start:node.End]

	return
}

// operation := operand comparator value8
func (p *parser) operation() (node *Node, err error) {
	node = &Node{Rule: RULE_OPERATION, Start: p.pos}

	var operand, comparator, value *Node

	defer func() {
		if err != nil {
			node = nil
			return
		}
		node.Children = []*Node{operand, comparator, value}
		node.End = value.End
		node.Text = p.input[node.Start:node.End]
	}()

	if operand, err = p.operand(); err != nil {
		return
	}

	p.skipSpace()
	if comparator, err = p.comparator(); err != nil {
		return
	}

	p.skipSpace()
	value, err = p.value8()

	return
}

// operand := register8 | memory_address
func (p *parser) operand() (node *Node, err error) {
	if !strings.HasPrefix(p.input[p.pos:], "#") {
		length := p.word(p.pos)
		if _, ok := registerMap[p.input[p.pos:p.pos+length]]; !ok {
			err = p.fail(p.pos, p.pos+length, RULE_REGISTER8, RULE_MEMORY_ADDRESS)
			return
		}
		node = p.leaf(RULE_REGISTER8, length)
		return
	}

	// '#' and the word run behind it.
	length := 1 + p.word(p.pos+1)
	token := p.input[p.pos : p.pos+length]
	digits := len(token) - len(MEMORY_PREFIX)
	if !strings.HasPrefix(token, MEMORY_PREFIX) || digits < 1 {
		err = p.fail(p.pos, p.pos+length, RULE_MEMORY_ADDRESS)
		return
	}

	node = p.leaf(RULE_MEMORY_ADDRESS, len(MEMORY_PREFIX)+min(digits, MEMORY_DIGITS_MAX))
	return
}

// comparator := "=" | ">=" | ">" | "<=" | "<" | "!="
func (p *parser) comparator() (node *Node, err error) {
	for _, cmp := range comparators {
		if strings.HasPrefix(p.input[p.pos:], cmp) {
			node = p.leaf(RULE_COMPARATOR, len(cmp))
			return
		}
	}

	err = p.fail(p.pos, p.pos, RULE_COMPARATOR)
	return
}

// value8 := "0x" hex_digit{2}
func (p *parser) value8() (node *Node, err error) {
	length := p.word(p.pos)
	token := p.input[p.pos : p.pos+length]
	if length == 0 {
		err = p.fail(p.pos, p.pos, RULE_VALUE8)
		return
	}

	digits := len(token) - len(VALUE8_PREFIX)
	if !strings.HasPrefix(token, VALUE8_PREFIX) || digits < VALUE8_DIGITS {
		err = p.fail(p.pos, p.pos+length, RULE_VALUE8)
		return
	}

	node = p.leaf(RULE_VALUE8, len(VALUE8_PREFIX)+VALUE8_DIGITS)
	return
}

// ParseTree parses text into a parse tree rooted at a boolean_expression.
//
// Whitespace around tokens is ignored, and the whole text must be consumed.
// The hexadecimal payloads of memory_address and value8 are scanned as word
// characters; their decoding is left to Build.
func ParseTree(text string) (tree *Node, err error) {
	p := &parser{input: text}

	tree, err = p.booleanExpression()
	if err != nil {
		return
	}

	p.skipSpace()
	if p.pos < len(p.input) {
		tree = nil
		err = p.fail(p.pos, p.pos, RULE_EOI)
		return
	}

	return
}
