package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brevlabs/launchpad/pkg/util/console"
)

const (
	badgeImageURL   = "https://brev-assets.s3.us-west-1.amazonaws.com/nv-lb-dark.svg"
	deployURLFormat = "https://console.brev.nvidia.com/launchable/deploy?launchableID=%s"
)

func newBadgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "badge <launchable-id>",
		Short: "Print a deploy badge snippet for your README",
		Long: `Print a deploy badge snippet for your README.

The launchable ID comes from the console after you create a launchable
from your repository URL.`,
		RunE: badgeCommand,
		Args: cobra.ExactArgs(1),
	}
}

func badgeCommand(cmd *cobra.Command, args []string) error {
	id := args[0]

	deployURL := fmt.Sprintf(deployURLFormat, id)
	markdown := fmt.Sprintf("[![Deploy](%s)](%s)", badgeImageURL, deployURL)

	console.Info("Add this to your README.md:")
	console.Output("")
	console.Output(markdown)
	console.Output("")
	console.Infof("Deploy link: %s", deployURL)

	return nil
}
