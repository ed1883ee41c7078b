package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rewindCmd = &cobra.Command{
	Use:   "rewind [n]",
	Short: "Reverse the design n ticks (default 1)",
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
			if !design.CanReverse() {
				fmt.Println("vsrtlsim: reverse stack exhausted")
				break
			}
			if err := design.Reverse(); err != nil {
				return err
			}
		}
		fmt.Printf("tick_count=%d\n", design.TickCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rewindCmd)
}
