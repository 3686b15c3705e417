// Package use holds all cli commands related to setting contextual information
// e.g., pagelayout use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings (board)",
		Long: `Set and manage contextual information for the current shell session.

The 'use' command sets context that applies to subsequent commands,
so --board does not have to be repeated.

Available contexts:
  - board: Set the current board context

Examples:
  eval $(pagelayout use board 123)     # Use board 123
  eval $(pagelayout use board --clear) # Clear board context
  pagelayout use board --show          # Show current board`,
	}

	cmd.AddCommand(BoardCmd())

	return cmd
}
