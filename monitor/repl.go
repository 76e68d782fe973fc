package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/chanmix51/lepr/caret"
)

const (
	PROMPT = ">> " // Prompt of the interactive terminal.
)

// lineReader reads input one line at a time.
type lineReader interface {
	ReadLine() (line string, err error)
}

// plainReader reads lines of any length from a non-interactive input.
type plainReader struct {
	reader *bufio.Reader
}

func (pr *plainReader) ReadLine() (line string, err error) {
	line, err = pr.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && len(line) != 0 {
		err = nil
	}
	if err != nil {
		return
	}

	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	return
}

// REPL reads lines, executes them on the monitor and prints the results.
type REPL struct {
	*Monitor           // Monitor executing the lines.
	Input    io.Reader // Line input.
	Output   io.Writer // Results and diagnostics.
	Terminal bool      // If set, Input and Output are an interactive terminal.
}

// NewREPL creates a REPL for a monitor.
func NewREPL(mon *Monitor, input io.Reader, output io.Writer) (repl *REPL) {
	repl = &REPL{
		Monitor: mon,
		Input:   input,
		Output:  output,
	}

	return
}

// open returns the line reader and output writer for the REPL, and the
// escape codes to colour the output with.
func (repl *REPL) open() (reader lineReader, output io.Writer, escape *term.EscapeCodes) {
	if !repl.Terminal {
		reader = &plainReader{reader: bufio.NewReader(repl.Input)}
		output = repl.Output
		escape = &term.EscapeCodes{}
		return
	}

	rw := struct {
		io.Reader
		io.Writer
	}{repl.Input, repl.Output}

	terminal := term.NewTerminal(rw, "")
	escape = terminal.Escape
	terminal.SetPrompt(string(escape.Yellow) + PROMPT + string(escape.Reset))

	reader = terminal
	output = terminal
	return
}

// report writes the diagnostic for a failed line.
func report(output io.Writer, escape *term.EscapeCodes, line string, err error) {
	var loc caret.Locator
	if errors.As(err, &loc) {
		fmt.Fprint(output, string(escape.Red)+caret.Sprint(line, loc)+string(escape.Reset))
		return
	}

	fmt.Fprintln(output, string(escape.Red)+f("Error: %v", err)+string(escape.Reset))
}

// Run reads and executes lines until the input ends or a quit command.
// Failing lines are reported and do not stop the loop.
func (repl *REPL) Run() (err error) {
	reader, output, escape := repl.open()

	fmt.Fprintln(output, string(escape.Green)+f("Welcome in lepr, type 'help' for help.")+string(escape.Reset))

	for {
		var line string
		line, err = reader.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(output, f("Quit!"))
			err = nil
			return
		}
		if err != nil {
			return
		}

		if len(strings.TrimSpace(line)) == 0 {
			continue
		}

		out, quit, exec_err := repl.Execute(line)
		if exec_err != nil {
			report(output, escape, line, exec_err)
			continue
		}

		fmt.Fprint(output, out)

		if quit {
			fmt.Fprintln(output, f("Quit!"))
			return
		}
	}
}
