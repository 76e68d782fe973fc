package monitor

import (
	"errors"

	"github.com/chanmix51/lepr/translate"
)

var f = translate.From

var (
	// Command errors
	ErrCommandSyntax = errors.New(f("command syntax"))
)

// ErrParseNumber reports a command argument that is not a number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrCommand indicates the command that failed.
type ErrCommand struct {
	Command string
	Err     error
}

func (err *ErrCommand) Error() string {
	return f("%v: %v", err.Command, err.Err)
}

func (err *ErrCommand) Unwrap() error {
	return err.Err
}
