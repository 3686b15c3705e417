// Package board holds the `pagelayout board` commands
package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Browse boards",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ChildrenCmd())

	return cmd
}
