package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/db47h/vsrtl"
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Clock the design once and print every output port's value",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := design.Clock(); err != nil {
			return err
		}
		fmt.Printf("tick_count=%d\n", design.TickCount())
		printPorts(root)
		return nil
	},
}

// printPorts recurses through c's sub-components, printing every output
// port's current value.
func printPorts(c *vsrtl.Component) {
	for _, op := range c.OutputPorts() {
		fmt.Printf("%s.%s = %#x\n", c.Path(), op.Name(), op.Value())
	}
	for _, sc := range c.SubComponents() {
		printPorts(sc)
	}
}

func init() {
	rootCmd.AddCommand(stepCmd)
}
