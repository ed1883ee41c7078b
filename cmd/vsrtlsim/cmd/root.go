// Package cmd implements vsrtlsim's command tree: run, step, rewind,
// reset, inspect, each driving the one demo circuit built at startup.
package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/db47h/vsrtl"
	"github.com/db47h/vsrtl/rtllib"
)

var (
	design *vsrtl.Design
	root   *vsrtl.Component
)

var rootCmd = &cobra.Command{
	Use:   "vsrtlsim",
	Short: "Drive a circuit through the simulation engine from the command line",
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("vsrtlsim: .env: %v", err)
	}

	cap := vsrtl.DefaultReverseCapacity
	if v := os.Getenv("VSRTL_REVERSE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cap = n
		}
	}

	root, design = buildDemoDesign(cap)
	atexit.Register(func() { design.Diagnostics.Drain() })

	if err := design.Verify(); err != nil {
		fmt.Fprintln(os.Stderr, "vsrtlsim: verify:", err)
		atexit.Exit(1)
	}
	if err := design.Initialize(); err != nil {
		fmt.Fprintln(os.Stderr, "vsrtlsim: initialize:", err)
		atexit.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// buildDemoDesign wires an 8-bit free-running counter: a register whose
// data_in is fed by an adder summing its own data_out and a constant 1,
// enabled unconditionally. It exists to give every sub-command something
// concrete to run, step, rewind and inspect — vsrtlsim carries no netlist
// loader of its own (§6: "no wire protocol... are part of the core").
func buildDemoDesign(reverseCapacity int) (*vsrtl.Component, *vsrtl.Design) {
	top := vsrtl.NewComponent("counter", "top")

	reg := rtllib.NewRegister(top, "reg", 8)
	one := rtllib.NewConstant(top, "one", 8, 1)
	en := rtllib.NewConstant(top, "enable", 1, 1)
	add := rtllib.NewAdder(top, "add", 8)

	if err := add.A.Connect(reg.DataOut); err != nil {
		panic(err)
	}
	if err := add.B.Connect(one.Out); err != nil {
		panic(err)
	}
	if err := reg.DataIn.Connect(add.Sum); err != nil {
		panic(err)
	}
	if err := reg.Enable.Connect(en.Out); err != nil {
		panic(err)
	}

	d := vsrtl.NewDesign(top, vsrtl.WithReverseCapacity(reverseCapacity))
	return top, d
}

// findComponent resolves a dotted path, rooted at the Design's top
// component, to the Component it names.
func findComponent(path string) (*vsrtl.Component, error) {
	if path == "" || path == root.Name() {
		return root, nil
	}
	return walkPath(root, path)
}

func walkPath(c *vsrtl.Component, path string) (*vsrtl.Component, error) {
	prefix := c.Path() + "."
	if len(path) <= len(prefix) || path[:len(prefix)] != prefix {
		return nil, fmt.Errorf("vsrtlsim: %q is not under %q", path, c.Path())
	}
	rest := path[len(prefix):]
	for _, sc := range c.SubComponents() {
		if sc.Name() == rest {
			return sc, nil
		}
		if child, err := walkPath(sc, path); err == nil {
			return child, nil
		}
	}
	return nil, fmt.Errorf("vsrtlsim: no such component %q", path)
}
