// Package machine holds the state of the simulated 8-bit processor inspected
// by the debugger.
//
// The state consists of the register file (accumulator, X and Y index
// registers, status register, stack pointer and command pointer) and a flat,
// fixed size memory. Nothing in this package executes instructions; the state
// is set up by a caller, a Starlark setup script (LoadScript) or a raw memory
// image (LoadImage), and is then read by condition evaluation.
package machine
