// Copyright 2025, The lepr Authors

// Package monitor implements the debugger command layer: a few inspection
// commands, with any other line evaluated as a condition against the
// machine state.
package monitor

import (
	"log"
	"strconv"
	"strings"

	"github.com/chanmix51/lepr/condition"
	"github.com/chanmix51/lepr/machine"
)

const (
	DUMP_COUNT = 16 // Default byte count of the memory command.
)

// Monitor state. Machine state + command dispatch.
type Monitor struct {
	Verbose        bool // If set, enables verbose logging.
	*machine.State      // Reference to the inspected machine.
}

// NewMonitor creates a monitor over a machine state.
func NewMonitor(state *machine.State) (mon *Monitor) {
	mon = &Monitor{
		State: state,
	}

	return
}

// command is a monitor command handler, given the words following its name.
type command func(mon *Monitor, args []string) (out string, err error)

// commandMap maps command names to their handlers.
var commandMap = map[string]command{
	"help":      (*Monitor).help,
	"registers": (*Monitor).registers,
	"memory":    (*Monitor).memory,
}

// quitMap holds the commands leaving the monitor.
var quitMap = map[string]bool{
	"quit": true,
	"exit": true,
}

// valueOf parses a command argument. Memory addresses may be written as in
// conditions, with a leading '#'.
func valueOf(word string, bits int) (value uint64, err error) {
	value, err = strconv.ParseUint(strings.TrimPrefix(word, "#"), 0, bits)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

func (mon *Monitor) help(args []string) (out string, err error) {
	if len(args) != 0 {
		err = ErrCommandSyntax
		return
	}

	out = f(`Commands:
  help                  this help
  registers             show the registers
  memory ADDR [COUNT]   dump COUNT bytes of memory, %d by default
  quit                  leave the debugger

Any other line is a condition, evaluated against the machine:
  true | false
  REG OP 0xHH           REG is one of A X Y S SP
  #0xHHHH OP 0xHH       memory byte at address 0xHHHH
  OP is one of = != > >= < <=, comparisons are unsigned.
`, DUMP_COUNT)
	return
}

func (mon *Monitor) registers(args []string) (out string, err error) {
	if len(args) != 0 {
		err = ErrCommandSyntax
		return
	}

	out = mon.State.String()
	return
}

func (mon *Monitor) memory(args []string) (out string, err error) {
	if len(args) < 1 || len(args) > 2 {
		err = ErrCommandSyntax
		return
	}

	addr, err := valueOf(args[0], 32)
	if err != nil {
		return
	}

	count := uint64(DUMP_COUNT)
	if len(args) == 2 {
		count, err = valueOf(args[1], 16)
		if err != nil {
			return
		}
	}

	return mon.State.Dump(machine.Address(addr), int(count))
}

// Evaluate parses a condition and evaluates it against the machine state.
func (mon *Monitor) Evaluate(line string) (cond condition.Condition, result bool, err error) {
	tree, err := condition.ParseTree(line)
	if err != nil {
		return
	}

	if mon.Verbose {
		log.Printf("tree: %v", tree)
	}

	cond, err = condition.Build(tree)
	if err != nil {
		return
	}

	if mon.Verbose {
		log.Printf("condition: %#v", cond)
	}

	result, err = condition.Evaluate(cond, mon.State)
	return
}

// Execute runs a single line of input. quit is set when the line asks to
// leave the monitor. Errors from conditions are returned as is, so that
// syntax errors can be located in line.
func (mon *Monitor) Execute(line string) (out string, quit bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	if mon.Verbose {
		log.Printf("execute: %v", words)
	}

	if quitMap[words[0]] && len(words) == 1 {
		quit = true
		return
	}

	cmd, ok := commandMap[words[0]]
	if ok {
		out, err = cmd(mon, words[1:])
		if err != nil {
			err = &ErrCommand{Command: words[0], Err: err}
		}
		return
	}

	cond, result, err := mon.Evaluate(line)
	if err != nil {
		return
	}

	out = f("%v => %v\n", cond, result)
	return
}
