package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brevlabs/launchpad/pkg/errors"
	"github.com/brevlabs/launchpad/pkg/gitinfo"
	"github.com/brevlabs/launchpad/pkg/global"
	"github.com/brevlabs/launchpad/pkg/scan"
	"github.com/brevlabs/launchpad/pkg/util/console"
	"github.com/brevlabs/launchpad/pkg/util/files"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [path]",
		Short: "Check that the project is ready to deploy",
		Long: `Check that the project is ready to deploy.

Runs a series of checks against the project directory and reports
anything that would prevent a launchable from working.`,
		RunE: doctorCommand,
		Args: cobra.MaximumNArgs(1),
	}
}

type doctorCheck struct {
	name string
	// run returns ok, an optional detail line, and whether a failure is
	// fatal (false means warn-only).
	run func(dir string) (bool, string, bool)
}

var doctorChecks = []doctorCheck{
	{
		name: "Git repository",
		run: func(dir string) (bool, string, bool) {
			if !gitinfo.IsRepo(dir) {
				return false, "Run: git init", true
			}
			return true, "", true
		},
	},
	{
		name: "Origin remote",
		run: func(dir string) (bool, string, bool) {
			if !gitinfo.IsRepo(dir) {
				return false, "No git repository", true
			}
			url := gitinfo.OriginURL(dir)
			if url == "" {
				return false, "Run: git remote add origin <your-repo-url>", true
			}
			return true, gitinfo.NormalizeURL(url), true
		},
	},
	{
		name: "Dependency file",
		run: func(dir string) (bool, string, bool) {
			name := scan.DetectDependencyFile(dir)
			if name == "" {
				return false, "Add a requirements.txt or pyproject.toml", true
			}
			return true, name, true
		},
	},
	{
		name: "Entry file",
		run: func(dir string) (bool, string, bool) {
			projectType := scan.InferType(dir)
			if entry := scan.DetectEntryFile(dir, projectType); entry != "" {
				return true, entry, true
			}
			candidates := scan.FindCandidateEntryFiles(dir)
			if len(candidates) > 0 {
				return false, "Did you mean: " + strings.Join(candidates, ", "), true
			}
			return false, "No notebook or app.py/main.py found", true
		},
	},
	{
		name: global.LaunchableFilename,
		run: func(dir string) (bool, string, bool) {
			exists, err := files.Exists(filepath.Join(dir, global.LaunchableFilename))
			if err != nil || !exists {
				return false, "Run: launchpad init", true
			}
			return true, "", true
		},
	},
	{
		name: ".env.example",
		run: func(dir string) (bool, string, bool) {
			if !scan.HasEnvExample(dir) {
				return false, "Optional: document required environment variables", false
			}
			return true, "", false
		},
	},
}

func doctorCommand(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	console.Info("\nChecking project...")
	console.Output("")

	failed := 0
	for _, check := range doctorChecks {
		ok, detail, fatal := check.run(dir)

		line := check.name
		if detail != "" {
			line = fmt.Sprintf("%s: %s", check.name, detail)
		}

		switch {
		case ok:
			console.Output("  ✓ " + line)
		case fatal:
			console.Output("  ✗ " + line)
			failed++
		default:
			console.Output("  - " + line)
		}
	}
	console.Output("")

	if failed > 0 {
		return errors.ChecksFailed(fmt.Sprintf("%d check(s) failed", failed))
	}
	console.Info("All checks passed.")
	return nil
}
