package item

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pagelayout/internal/cli"
	"github.com/thenoetrevino/pagelayout/internal/cli/handler"
	"github.com/thenoetrevino/pagelayout/internal/models"
)

func addViewerFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Viewer title for visibility rules (overrides config)")
	cmd.Flags().String("profile", "", "Viewer profile for visibility rules (overrides config)")
	cmd.Flags().String("role", "", "Viewer role for visibility rules (overrides config)")
}

// viewerFrom starts from the configured viewer and applies flag overrides
func viewerFrom(c *cli.CLI, args *handler.Arguments) models.ViewerProfile {
	v := c.App.Config.Viewer.ViewerProfile()
	v.Title = args.GetString("title", v.Title)
	v.Profile = args.GetString("profile", v.Profile)
	v.Role = args.GetString("role", v.Role)
	return v
}
