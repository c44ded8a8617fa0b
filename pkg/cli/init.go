package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brevlabs/launchpad/pkg/gitinfo"
	"github.com/brevlabs/launchpad/pkg/launchable"
	"github.com/brevlabs/launchpad/pkg/pricing"
	"github.com/brevlabs/launchpad/pkg/scan"
	"github.com/brevlabs/launchpad/pkg/util/console"
	"github.com/brevlabs/launchpad/pkg/vram"
)

var (
	initNonInteractive bool
	initProjectType    string
	initPort           int
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:        "init [path]",
		SuggestFor: []string{"new", "create", "generate"},
		Short:      "Generate a launchable config for the current project",
		Long: `Generate a launchable config for the current project.

This command:
1. Validates git repository setup
2. Detects project type and dependencies
3. Estimates GPU memory requirements and picks a GPU class
4. Asks a few questions (unless --non-interactive)
5. Writes launchable.yaml`,
		RunE: initCommand,
		Args: cobra.MaximumNArgs(1),
	}

	cmd.Flags().BoolVarP(&initNonInteractive, "non-interactive", "y", false, "Use defaults without prompting")
	cmd.Flags().StringVarP(&initProjectType, "type", "t", "", "Project type: notebook or webapp")
	cmd.Flags().IntVarP(&initPort, "port", "p", 0, "Port for webapp (default: 7860) or Jupyter (default: 8888)")

	return cmd
}

func initCommand(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	console.Info("\nScanning project...")

	project, err := scan.Scan(dir)
	if err != nil {
		if initNonInteractive {
			return err
		}

		console.Warn(err.Error())
		ok, readErr := console.InteractiveBool{
			Prompt:         "Continue anyway? (You'll need to manually add git info to the YAML)",
			Default:        false,
			NonDefaultFlag: "--non-interactive",
		}.Read()
		if readErr != nil || !ok {
			return err
		}

		abs, absErr := filepath.Abs(dir)
		if absErr != nil {
			abs = dir
		}
		project = scan.ScanWithoutGit(dir)
		project.Git = gitinfo.Placeholder(filepath.Base(abs))
		console.Warn("Git repository: Not configured (will need manual setup)")
	} else {
		console.Infof("Git repository: %s", project.Git.NormalizedURL)
		console.Infof("Default branch: %s", project.Git.DefaultBranch)
	}

	if project.DependencyFile != "" {
		console.Infof("Dependency file: %s", project.DependencyFile)
	} else {
		console.Warn("No requirements.txt or pyproject.toml found")
	}
	if project.EntryFile != "" {
		console.Infof("Entry file detected: %s", project.EntryFile)
	}

	projectType, err := chooseProjectType(project)
	if err != nil {
		return err
	}
	port, err := choosePort(projectType)
	if err != nil {
		return err
	}
	command, err := chooseCommand(projectType)
	if err != nil {
		return err
	}

	gpu, gpuNote := chooseGPU(dir)

	console.Info("\nGenerating configuration...")

	config := launchable.New(
		project.Git.RepoName,
		fmt.Sprintf("%s - deployed via launchpad", project.Git.RepoName),
		launchable.Source{
			Type: "git",
			URL:  project.Git.NormalizedURL,
			Ref:  project.Git.DefaultBranch,
			Path: "/",
		},
	)
	config.WithInstall(project.InstallCommand)
	config.WithGPU(gpu, gpuNote)
	if projectType == scan.TypeNotebook {
		config.WithNotebook(command, port)
	} else {
		config.WithWebapp(command, port)
	}

	outputPath, err := launchable.Write(config, dir)
	if err != nil {
		return fmt.Errorf("Failed to generate config: %w", err)
	}
	console.Infof("Wrote %s", outputPath)

	preview, err := launchable.Render(config)
	if err != nil {
		return err
	}
	console.Output("")
	console.Output(preview)

	printNextSteps(outputPath)

	console.Info("Done! Your launchable config is ready.")
	return nil
}

func chooseProjectType(project *scan.Project) (string, error) {
	if initProjectType != "" {
		return initProjectType, nil
	}
	if initNonInteractive {
		return project.Type, nil
	}
	return console.Interactive{
		Prompt:  "Project type?",
		Default: project.Type,
		Options: []string{scan.TypeNotebook, scan.TypeWebapp},
	}.Read()
}

func choosePort(projectType string) (int, error) {
	if initPort != 0 {
		return initPort, nil
	}
	defaultPort := scan.DefaultJupyterPort
	if projectType == scan.TypeWebapp {
		defaultPort = scan.DefaultWebappPort
	}
	// Only webapps get asked; Jupyter's port is a platform convention
	if initNonInteractive || projectType == scan.TypeNotebook {
		return defaultPort, nil
	}
	return console.InteractiveInt{
		Prompt:  "Port?",
		Default: defaultPort,
	}.Read()
}

func chooseCommand(projectType string) (string, error) {
	defaultCommand := scan.DefaultNotebookCommand
	if projectType == scan.TypeWebapp {
		defaultCommand = scan.DefaultWebappCommand
	}
	if initNonInteractive {
		return defaultCommand, nil
	}
	return console.Interactive{
		Prompt:  "Start command?",
		Default: defaultCommand,
	}.Read()
}

// chooseGPU runs the VRAM estimator over the project and picks the cheapest
// fitting GPU class. When nothing can be estimated the config falls back to
// "any" and the user picks in the console UI.
func chooseGPU(dir string) (gpu, note string) {
	result, ok, err := vram.Estimate(dir)
	if err != nil || !ok {
		return pricing.ClassAny, "Select lowest-cost GPU in the console"
	}

	rec, err := pricing.ClassCatalog.Recommend(result.EstimatedVRAM, nil)
	if err != nil || rec.Recommended == nil {
		return pricing.ClassAny, fmt.Sprintf("Estimated %s GB VRAM exceeds single-GPU classes; pick a multi-GPU instance", formatGB(result.EstimatedVRAM))
	}

	console.Infof("Estimated VRAM: %s GB (%s)", formatGB(result.EstimatedVRAM), result.DetectedModels[0].Model)
	note = fmt.Sprintf("Estimated %s GB VRAM (%s)", formatGB(result.EstimatedVRAM), result.DetectedModels[0].Model)
	return rec.Recommended.Class, note
}

func printNextSteps(outputPath string) {
	console.Output("Next steps:")
	console.Output("  1. Review " + outputPath)
	console.Output("  2. Commit and push it to your repository")
	console.Output("  3. Create a launchable from the repo URL in the console")
	console.Output("  4. Add the deploy badge to your README (launchpad badge <id>)")
	console.Output("")
}

func formatGB(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
