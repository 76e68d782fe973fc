package condition

import (
	"errors"
	"strings"

	"github.com/chanmix51/lepr/translate"
)

var f = translate.From

var (
	// Builder errors
	ErrHex = errors.New(f("malformed hex"))

	// Evaluation errors
	ErrConditionInvalid = errors.New(f("condition invalid"))
)

// ErrSyntax reports text that does not match the condition grammar.
// Start == End designates a single position, otherwise the span [Start, End).
type ErrSyntax struct {
	Input    string // Text that was parsed.
	Start    int    // Byte offset of the error.
	End      int    // Byte offset past the error span.
	Expected []Rule // Rules that would have been accepted at Start.
}

func (err *ErrSyntax) Error() (text string) {
	if err.Start == err.End {
		text = f("syntax error at position %d", err.Start)
	} else {
		text = f("syntax error between position %d and %d", err.Start, err.End)
	}

	if len(err.Expected) != 0 {
		text += f(", expected %v", strings.Join(err.Hints(), f(" or ")))
	}

	return
}

// Location returns the offending span, start == end for a single position.
func (err *ErrSyntax) Location() (start, end int) {
	return err.Start, err.End
}

// Hints returns the names of the expected rules.
func (err *ErrSyntax) Hints() (hints []string) {
	for _, rule := range err.Expected {
		hints = append(hints, rule.String())
	}
	return
}

// ErrMalformedHex reports a hexadecimal payload that fails strict decoding.
type ErrMalformedHex struct {
	Text string // Full token text, prefix included.
	Err  error  // Decoding error.
}

func (err *ErrMalformedHex) Error() string {
	return f("'%v' %v: %v", err.Text, ErrHex, err.Err)
}

func (err *ErrMalformedHex) Unwrap() error {
	return err.Err
}

func (err *ErrMalformedHex) Is(target error) bool {
	return target == ErrHex
}

// ErrUnknownRegister reports a register name with no value source.
type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("unknown register '%v'", string(err))
}

// ErrInternal reports a parse tree the builder does not know how to handle.
type ErrInternal struct {
	Rule Rule
	Text string
}

func (err *ErrInternal) Error() string {
	return f("internal error: unexpected %v node '%v'", err.Rule, err.Text)
}

// ErrEvaluation reports a fault while evaluating a condition.
type ErrEvaluation struct {
	Condition Condition
	Err       error
}

func (err *ErrEvaluation) Error() string {
	return f("%v: %v", err.Condition, err.Err)
}

func (err *ErrEvaluation) Unwrap() error {
	return err.Err
}
