// Package condition parses and evaluates the debugger's boolean conditions.
//
// A condition compares an 8-bit value source (a register or a memory
// location) against a byte literal, or is a literal boolean:
//
//	true
//	A = 0x12
//	SP != 0xff
//	#0x1234 >= 0x10
//
// Text is first turned into a parse tree by ParseTree, which enforces the
// grammar, then into a Condition by Build, which decodes the hexadecimal
// payloads. Parse does both. Evaluate resolves a Condition against a
// machine.State without modifying it. All comparisons are unsigned.
package condition
