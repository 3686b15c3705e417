// Package column holds the `pagelayout column` commands
package column

import (
	"github.com/spf13/cobra"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Browse board columns",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}
