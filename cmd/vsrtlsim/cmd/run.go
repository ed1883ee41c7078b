package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [n]",
	Short: "Clock the design n times (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			n = v
		}
		for i := 0; i < n; i++ {
			if err := design.Clock(); err != nil {
				return err
			}
		}
		fmt.Printf("tick_count=%d\n", design.TickCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
