package machine

import (
	"errors"

	"github.com/chanmix51/lepr/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrOutOfBounds = errors.New(f("memory access out of bounds"))
	ErrMemorySize  = errors.New(f("invalid memory size"))

	// Script errors
	ErrScriptPoke = errors.New(f("poke expects an address and at least one byte"))
)

// ErrMemoryAccess reports an access at or beyond the end of memory.
type ErrMemoryAccess struct {
	Address Address // Faulting address.
	Size    int     // Size of the memory that was accessed.
}

func (err *ErrMemoryAccess) Error() string {
	return f("address %#04x is outside of %#x bytes of memory", uint32(err.Address), err.Size)
}

func (err *ErrMemoryAccess) Is(target error) bool {
	return target == ErrOutOfBounds
}

// ErrMemorySizeRange reports a requested memory size outside of
// [1, MEMORY_SIZE_MAX].
type ErrMemorySizeRange uint64

func (err ErrMemorySizeRange) Error() string {
	return f("memory size %#x is not between 1 and %#x bytes", uint64(err), MEMORY_SIZE_MAX)
}

func (err ErrMemorySizeRange) Is(target error) bool {
	return target == ErrMemorySize
}

// ErrScriptValue reports a setup script global that does not fit its register.
type ErrScriptValue struct {
	Name  string
	Value string
}

func (err *ErrScriptValue) Error() string {
	return f("script value %v = %v does not fit register", err.Name, err.Value)
}
