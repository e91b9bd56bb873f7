package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the protocol versions the engine bridges",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range wireCtx.Manager.Versions() {
				fmt.Println(v)
			}
			return nil
		},
	}
}
