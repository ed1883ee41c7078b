package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all reverse history and return the design to its construction-time state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := design.Reset(); err != nil {
			return err
		}
		fmt.Printf("tick_count=%d\n", design.TickCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
