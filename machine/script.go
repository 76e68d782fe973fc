// Copyright 2025, The lepr Authors

package machine

import (
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// scriptRegisters maps script globals to the 8-bit registers they set.
var scriptRegisters = []struct {
	name string
	reg  func(state *State) *uint8
}{
	{"A", func(state *State) *uint8 { return &state.Accumulator }},
	{"X", func(state *State) *uint8 { return &state.X }},
	{"Y", func(state *State) *uint8 { return &state.Y }},
	{"S", func(state *State) *uint8 { return &state.Status }},
	{"SP", func(state *State) *uint8 { return &state.StackPointer }},
}

// poke is the Starlark builtin poke(addr, value...) writing bytes to memory.
// Each value is either an int or a bytes string.
func poke(state *State) *starlark.Builtin {
	return starlark.NewBuiltin("poke", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(args) < 2 || len(kwargs) != 0 {
			return nil, ErrScriptPoke
		}

		var addr uint32
		err := starlark.AsInt(args[0], &addr)
		if err != nil {
			return nil, &ErrScriptValue{Name: "addr", Value: args[0].String()}
		}

		var data []uint8
		for _, arg := range args[1:] {
			if bytes, ok := arg.(starlark.Bytes); ok {
				data = append(data, []uint8(bytes)...)
				continue
			}
			var value uint8
			err = starlark.AsInt(arg, &value)
			if err != nil {
				return nil, &ErrScriptValue{Name: "value", Value: arg.String()}
			}
			data = append(data, value)
		}

		err = state.Write(Address(addr), data...)
		if err != nil {
			return nil, err
		}

		return starlark.None, nil
	})
}

// LoadScript runs a Starlark setup script against the machine state.
//
// The script sees MEMORY_SIZE and the poke(addr, value...) builtin. Once it
// has run, the globals A, X, Y, S, SP and CP it defines are copied into the
// registers. src is as for starlark.ExecFileOptions: nil reads filename.
//
// The script runs against a copy of the state, which replaces state only
// when the whole script succeeded. A failing script leaves state untouched.
func LoadScript(state *State, filename string, src any) (err error) {
	scratch := *state
	scratch.Memory = slices.Clone(state.Memory)

	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"MEMORY_SIZE": starlark.MakeInt(len(scratch.Memory)),
		"poke":        poke(&scratch),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	for _, sr := range scriptRegisters {
		value, ok := globals[sr.name]
		if !ok {
			continue
		}
		err = starlark.AsInt(value, sr.reg(&scratch))
		if err != nil {
			err = &ErrScriptValue{Name: sr.name, Value: value.String()}
			return
		}
	}

	if value, ok := globals["CP"]; ok {
		var cp uint32
		err = starlark.AsInt(value, &cp)
		if err != nil {
			err = &ErrScriptValue{Name: "CP", Value: value.String()}
			return
		}
		scratch.CommandPointer = Address(cp)
	}

	copy(state.Memory, scratch.Memory)
	scratch.Memory = state.Memory
	*state = scratch

	return
}
