// Package item holds the `pagelayout item` commands
package item

import (
	"github.com/spf13/cobra"
)

// ItemCmd returns the item parent command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Search and create items",
	}

	cmd.AddCommand(SearchCmd())
	cmd.AddCommand(FormCmd())
	cmd.AddCommand(CreateCmd())

	return cmd
}
