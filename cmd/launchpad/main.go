package main

import (
	"os"

	"github.com/brevlabs/launchpad/pkg/cli"
	"github.com/brevlabs/launchpad/pkg/errors"
	"github.com/brevlabs/launchpad/pkg/util/console"
)

func main() {
	cmd, err := cli.NewRootCommand()
	if err != nil {
		console.Fatalf("Failed to start: %s", err)
	}

	if err := cmd.Execute(); err != nil {
		console.Error(err.Error())
		if errors.IsValidationError(err) {
			os.Exit(2)
		}
		os.Exit(3)
	}
}
