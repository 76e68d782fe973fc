package condition

import (
	"fmt"

	"github.com/chanmix51/lepr/machine"
)

// SourceKind is the origin of an 8-bit value.
type SourceKind int

//go:generate go tool stringer -linecomment -type=SourceKind
const (
	SOURCE_ACCUMULATOR   = SourceKind(0) // A
	SOURCE_X             = SourceKind(1) // X
	SOURCE_Y             = SourceKind(2) // Y
	SOURCE_STATUS        = SourceKind(3) // S
	SOURCE_STACK_POINTER = SourceKind(4) // SP
	SOURCE_MEMORY        = SourceKind(5) // memory
)

// registerMap maps register names to their value sources.
var registerMap = map[string]SourceKind{
	"A":  SOURCE_ACCUMULATOR,
	"X":  SOURCE_X,
	"Y":  SOURCE_Y,
	"S":  SOURCE_STATUS,
	"SP": SOURCE_STACK_POINTER,
}

// Source designates a register, or a memory byte at Address.
type Source struct {
	Kind    SourceKind
	Address machine.Address // Only meaningful for SOURCE_MEMORY.
}

// Register returns the value source for a named register.
func Register(name string) (src Source, err error) {
	kind, ok := registerMap[name]
	if !ok {
		err = ErrUnknownRegister(name)
		return
	}

	src = Source{Kind: kind}
	return
}

// Memory returns the value source for a memory byte.
func Memory(addr machine.Address) Source {
	return Source{Kind: SOURCE_MEMORY, Address: addr}
}

// Value resolves the source against the machine state.
func (src Source) Value(state *machine.State) (value uint8, err error) {
	switch src.Kind {
	case SOURCE_ACCUMULATOR:
		value = state.Accumulator
	case SOURCE_X:
		value = state.X
	case SOURCE_Y:
		value = state.Y
	case SOURCE_STATUS:
		value = state.Status
	case SOURCE_STACK_POINTER:
		value = state.StackPointer
	case SOURCE_MEMORY:
		value, err = state.Read(src.Address)
	default:
		err = ErrConditionInvalid
	}

	return
}

// String returns the source as condition text.
func (src Source) String() string {
	if src.Kind != SOURCE_MEMORY {
		return src.Kind.String()
	}

	// An even number of digits, so the text decodes back to the address.
	if src.Address > 0xffff {
		return fmt.Sprintf("#0x%08X", uint32(src.Address))
	}
	return fmt.Sprintf("#0x%04X", uint32(src.Address))
}
