// Command vsrtlsim drives a circuit built from package rtllib through the
// simulation engine's public surface: run, step, rewind, reset, inspect.
// It is a thin external driver — no wire protocol, on-disk format, or
// netlist loader is part of the engine itself (§6); the circuit this
// binary drives is wired up once, in Go, at startup.
package main

import "github.com/db47h/vsrtl/cmd/vsrtlsim/cmd"

func main() {
	cmd.Execute()
}
