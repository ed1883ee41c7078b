package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db47h/vsrtl"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Print a component's sub-tree, ports and current values (defaults to the whole design)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		c, err := findComponent(path)
		if err != nil {
			return err
		}
		inspectComponent(c, 0)
		if n := design.Diagnostics.Len(); n > 0 {
			fmt.Printf("%d diagnostic(s) pending\n", n)
		}
		return nil
	},
}

func inspectComponent(c *vsrtl.Component, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s (%s)\n", indent, c.Name(), c.TypeID())
	for _, ip := range c.InputPorts() {
		fmt.Printf("%s  in  %-10s = %#x\n", indent, ip.Name(), ip.Value())
	}
	for _, op := range c.OutputPorts() {
		fmt.Printf("%s  out %-10s = %#x\n", indent, op.Name(), op.Value())
	}
	for _, sc := range c.SubComponents() {
		inspectComponent(sc, depth+1)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
