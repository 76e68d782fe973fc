// Copyright 2025, The lepr Authors

package machine

import (
	"fmt"
	"iter"
	"strings"
)

// Address is an index into the machine memory.
type Address uint32

const (
	MEMORY_SIZE     = 0x1_0000   // Default memory size, 64KiB.
	MEMORY_SIZE_MAX = 0x100_0000 // Largest memory size, 16MiB.
)

// Status register flags.
const (
	STATUS_CARRY     = uint8(1 << 0) // C
	STATUS_ZERO      = uint8(1 << 1) // Z
	STATUS_INTERRUPT = uint8(1 << 2) // I
	STATUS_DECIMAL   = uint8(1 << 3) // D
	STATUS_BREAK     = uint8(1 << 4) // B
	STATUS_RESERVED  = uint8(1 << 5) // -
	STATUS_OVERFLOW  = uint8(1 << 6) // V
	STATUS_NEGATIVE  = uint8(1 << 7) // N

	STATUS_RESET = STATUS_RESERVED | STATUS_BREAK // Status after construction.
)

// State is the register file and memory of the simulated processor.
type State struct {
	Accumulator    uint8   // A
	X              uint8   // X index register.
	Y              uint8   // Y index register.
	Status         uint8   // S, processor status flags.
	StackPointer   uint8   // SP
	CommandPointer Address // CP, address of the next instruction.

	Memory []uint8 // Addressable memory.
}

// NewState creates a machine with MEMORY_SIZE bytes of memory, starting at
// the given address.
func NewState(start Address) (state *State) {
	return NewStateSize(start, MEMORY_SIZE)
}

// CheckSize verifies that size is usable with NewStateSize.
func CheckSize(size uint64) (err error) {
	if size == 0 || size > MEMORY_SIZE_MAX {
		err = ErrMemorySizeRange(size)
	}
	return
}

// NewStateSize creates a machine with a specifically sized memory.
func NewStateSize(start Address, size int) (state *State) {
	state = &State{
		Status:         STATUS_RESET,
		CommandPointer: start,
		Memory:         make([]uint8, size),
	}

	return
}

// Read returns the byte stored at addr.
func (state *State) Read(addr Address) (value uint8, err error) {
	if uint64(addr) >= uint64(len(state.Memory)) {
		err = &ErrMemoryAccess{Address: addr, Size: len(state.Memory)}
		return
	}

	value = state.Memory[addr]
	return
}

// Write stores bytes into memory, starting at addr.
// Nothing is written if any byte would land outside of memory.
func (state *State) Write(addr Address, data ...uint8) (err error) {
	if len(data) == 0 {
		return
	}

	end := uint64(addr) + uint64(len(data))
	if end > uint64(len(state.Memory)) {
		err = &ErrMemoryAccess{Address: Address(max(uint64(addr), uint64(len(state.Memory)))), Size: len(state.Memory)}
		return
	}

	copy(state.Memory[addr:], data)
	return
}

// Registers iterates over the register names and values, in display order.
func (state *State) Registers() iter.Seq2[string, uint32] {
	return func(yield func(name string, value uint32) bool) {
		regs := []struct {
			name  string
			value uint32
		}{
			{"A", uint32(state.Accumulator)},
			{"X", uint32(state.X)},
			{"Y", uint32(state.Y)},
			{"S", uint32(state.Status)},
			{"SP", uint32(state.StackPointer)},
			{"CP", uint32(state.CommandPointer)},
		}
		for _, reg := range regs {
			if !yield(reg.name, reg.value) {
				return
			}
		}
	}
}

// Flags returns the status register as NV-BDIZC, upper case when set.
func (state *State) Flags() string {
	const names = "NV-BDIZC"

	var text strings.Builder
	for n := range len(names) {
		bit := uint8(0x80 >> n)
		ch := names[n]
		switch {
		case ch == '-':
		case state.Status&bit == 0:
			ch += 'a' - 'A'
		}
		text.WriteByte(ch)
	}

	return text.String()
}

// String returns the register file as a table.
func (state *State) String() (text string) {
	for name, value := range state.Registers() {
		var strval string
		switch name {
		case "CP":
			strval = fmt.Sprintf("0x%04X", value)
		case "S":
			strval = fmt.Sprintf("0x%02X %v", value, state.Flags())
		default:
			strval = fmt.Sprintf("0x%02X", value)
		}
		text += fmt.Sprintf("% 3s: %v\n", name, strval)
	}

	return
}

// Dump returns a hex dump of count bytes of memory starting at addr, 16 bytes
// per line.
func (state *State) Dump(addr Address, count int) (text string, err error) {
	if count <= 0 {
		return
	}

	end := uint64(addr) + uint64(count)
	if end > uint64(len(state.Memory)) {
		err = &ErrMemoryAccess{Address: Address(max(uint64(addr), uint64(len(state.Memory)))), Size: len(state.Memory)}
		return
	}

	data := state.Memory[addr:end]
	for n := 0; n < len(data); n += 16 {
		row := data[n:min(n+16, len(data))]
		words := make([]string, len(row))
		for i, value := range row {
			words[i] = fmt.Sprintf("%02X", value)
		}
		text += fmt.Sprintf("0x%04X: %v\n", uint64(addr)+uint64(n), strings.Join(words, " "))
	}

	return
}
