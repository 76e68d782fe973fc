// Copyright 2025, The lepr Authors

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/chanmix51/lepr/caret"
	"github.com/chanmix51/lepr/machine"
	"github.com/chanmix51/lepr/monitor"
)

// Exit codes of a single condition evaluation (-e).
const (
	EXIT_TRUE  = 0
	EXIT_FALSE = 1
	EXIT_ERROR = 2
)

func main() {
	var script string
	var image string
	var base uint
	var start uint
	var size uint
	var expr string
	var verbose bool

	flag.StringVar(&script, "s", "", ".star file setting up registers and memory")
	flag.StringVar(&image, "i", "", "Raw memory image to load")
	flag.UintVar(&base, "b", 0, "Load address of the memory image")
	flag.UintVar(&start, "p", 0, "Start address of the command pointer")
	flag.UintVar(&size, "m", machine.MEMORY_SIZE, "Memory size, in bytes")
	flag.StringVar(&expr, "e", "", "Evaluate a condition and exit, 0 when true, 1 when false")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	err := machine.CheckSize(uint64(size))
	if err != nil {
		atexit.Fatalf("%v: -m: %v", os.Args[0], err)
	}

	state := machine.NewStateSize(machine.Address(start), int(size))

	// Load a memory image.
	if len(image) != 0 {
		inf, err := os.Open(image)
		if err != nil {
			atexit.Fatalf("%v: %v", image, err)
		}
		count, err := machine.LoadImage(state, inf, machine.Address(base))
		inf.Close()
		if err != nil {
			atexit.Fatalf("%v: %v", image, err)
		}
		if verbose {
			log.Printf("%v: %d bytes at %#04x", image, count, base)
		}
	}

	// Run the setup script.
	if len(script) != 0 {
		err := machine.LoadScript(state, script, nil)
		if err != nil {
			atexit.Fatalf("%v: %v", script, err)
		}
	}

	mon := monitor.NewMonitor(state)
	mon.Verbose = verbose

	if len(expr) != 0 {
		cond, result, err := mon.Evaluate(expr)
		if err != nil {
			var loc caret.Locator
			if errors.As(err, &loc) {
				err = caret.Render(os.Stderr, expr, loc)
				if err != nil {
					log.Printf("%v: %v", expr, err)
				}
			} else {
				log.Printf("%v: %v", expr, err)
			}
			atexit.Exit(EXIT_ERROR)
		}

		fmt.Printf("%v => %v\n", cond, result)
		if !result {
			atexit.Exit(EXIT_FALSE)
		}
		atexit.Exit(EXIT_TRUE)
	}

	repl := monitor.NewREPL(mon, os.Stdin, os.Stdout)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) && term.IsTerminal(int(os.Stdout.Fd())) {
		saved, err := term.MakeRaw(fd)
		if err != nil {
			atexit.Fatalf("%v: %v", os.Args[0], err)
		}
		atexit.Register(func() {
			term.Restore(fd, saved)
		})
		repl.Terminal = true
	}

	err = repl.Run()
	if err != nil {
		atexit.Fatalf("%v: %v", os.Args[0], err)
	}

	atexit.Exit(0)
}
