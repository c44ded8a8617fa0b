package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brevlabs/launchpad/pkg/util/console"
	"github.com/brevlabs/launchpad/pkg/vram"
)

var estimateJSON bool

func newEstimateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate [path]",
		Short: "Estimate the GPU memory the project will need",
		Long: `Estimate the GPU memory the project will need.

Scans the project's source files and dependency manifests for known model
signatures and reports a buffered VRAM estimate.`,
		RunE: estimateCommand,
		Args: cobra.MaximumNArgs(1),
	}

	cmd.Flags().BoolVar(&estimateJSON, "json", false, "Output the estimate as JSON")

	return cmd
}

func estimateCommand(cmd *cobra.Command, args []string) error {
	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	result, ok, err := vram.Estimate(dir)
	if err != nil {
		return err
	}
	if !ok {
		if estimateJSON {
			console.Output("null")
			return nil
		}
		console.Warn("Could not estimate VRAM: no model signatures or ML frameworks detected")
		console.Info("If this project uses a GPU, start from a 16 GB card and adjust from there.")
		return nil
	}

	if estimateJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		console.Output(string(out))
		return nil
	}

	console.Output("")
	console.Output("Detected models:")
	for _, d := range result.DetectedModels {
		console.Output("  " + d.Model + " (" + formatGB(d.VRAMGB) + " GB, from " + d.Source + ")")
	}
	if len(result.Frameworks) > 0 {
		console.Output("Frameworks: " + strings.Join(result.Frameworks, ", "))
	}
	console.Output("")
	console.Output("Base VRAM:      " + formatGB(result.BaseVRAM) + " GB")
	console.Output("Estimated VRAM: " + formatGB(result.EstimatedVRAM) + " GB (with activation/gradient buffer)")

	return nil
}
