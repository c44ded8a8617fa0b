package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brevlabs/launchpad/pkg/errors"
	"github.com/brevlabs/launchpad/pkg/global"
	"github.com/brevlabs/launchpad/pkg/util/console"
	"github.com/brevlabs/launchpad/pkg/util/files"
)

func NewRootCommand() (*cobra.Command, error) {
	rootCmd := cobra.Command{
		Use:     "launchpad",
		Short:   "Generate launchable deployment configs from your project",
		Version: fmt.Sprintf("%s (built %s)", global.Version, global.BuildTime),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if global.Verbose {
				console.SetLevel(console.DebugLevel)
			}
			cmd.SilenceUsage = true
		},
		// Errors are printed in cmd/launchpad/main.go so they get exit codes
		SilenceErrors: true,
	}
	setPersistentFlags(&rootCmd)

	rootCmd.AddCommand(
		newInitCommand(),
		newDoctorCommand(),
		newEstimateCommand(),
		newRecommendCommand(),
		newBadgeCommand(),
	)

	return &rootCmd, nil
}

func setPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "Verbose output")
}

// projectDir resolves the optional positional path argument, defaulting to
// the current directory. The path must be an existing directory.
func projectDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	isDir, err := files.IsDir(dir)
	if err != nil {
		return "", errors.InvalidInput(fmt.Sprintf("%s does not exist", dir))
	}
	if !isDir {
		return "", errors.InvalidInput(fmt.Sprintf("%s is not a directory", dir))
	}
	return dir, nil
}
