package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brevlabs/launchpad/pkg/pricing"
	"github.com/brevlabs/launchpad/pkg/util/console"
	"github.com/brevlabs/launchpad/pkg/vram"
)

var (
	recommendVRAM         float64
	recommendCurrentPrice float64
	recommendMaxAlts      int
	recommendHoursPerDay  int
	recommendCoarse       bool
	recommendCatalogPath  string
	recommendRefreshURL   string
	recommendJSON         bool
)

func newRecommendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend [path]",
		Short: "Recommend the cheapest GPU instance for the project",
		Long: `Recommend the cheapest GPU instance for the project.

Matches a VRAM requirement (given with --vram, or estimated from the
project) against the instance catalog, with a 20% safety buffer on top
of the requirement.`,
		RunE: recommendCommand,
		Args: cobra.MaximumNArgs(1),
	}

	cmd.Flags().Float64Var(&recommendVRAM, "vram", 0, "Required VRAM in GB (default: estimate from the project)")
	cmd.Flags().Float64Var(&recommendCurrentPrice, "current-price", 0, "Current hourly price to compute savings against")
	cmd.Flags().IntVar(&recommendMaxAlts, "max-alternatives", pricing.DefaultMaxAlternatives, "Maximum number of alternatives to show")
	cmd.Flags().IntVar(&recommendHoursPerDay, "hours-per-day", pricing.DefaultHoursPerDay, "Usage hours per day for monthly/yearly projections")
	cmd.Flags().BoolVar(&recommendCoarse, "coarse", false, "Use the coarse per-class catalog instead of itemized instances")
	cmd.Flags().StringVar(&recommendCatalogPath, "catalog", "", "Load the instance catalog from a YAML file")
	cmd.Flags().StringVar(&recommendRefreshURL, "refresh", "", "Fetch the instance catalog as JSON from a URL")
	cmd.Flags().BoolVar(&recommendJSON, "json", false, "Output the recommendation as JSON")

	return cmd
}

func recommendCommand(cmd *cobra.Command, args []string) error {
	required := recommendVRAM
	if !cmd.Flags().Changed("vram") {
		dir, err := projectDir(args)
		if err != nil {
			return err
		}
		result, ok, err := vram.Estimate(dir)
		if err != nil {
			return err
		}
		if !ok {
			console.Warn("Could not estimate VRAM from the project; pass --vram explicitly")
			return nil
		}
		required = result.EstimatedVRAM
		console.Infof("Estimated VRAM requirement: %s GB", formatGB(required))
	}

	catalog, err := recommendCatalog()
	if err != nil {
		return err
	}

	rec, err := catalog.Recommend(required, &pricing.Options{
		CurrentPricePerHour: recommendCurrentPrice,
		MaxAlternatives:     recommendMaxAlts,
		HoursPerDay:         recommendHoursPerDay,
	})
	if err != nil {
		return err
	}

	if recommendJSON {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		console.Output(string(out))
		return nil
	}

	printRecommendation(rec, required)
	return nil
}

func recommendCatalog() (pricing.Catalog, error) {
	switch {
	case recommendRefreshURL != "":
		return pricing.Fetch(recommendRefreshURL)
	case recommendCatalogPath != "":
		return pricing.LoadFile(recommendCatalogPath)
	case recommendCoarse:
		return pricing.ClassCatalog, nil
	default:
		return pricing.DefaultCatalog, nil
	}
}

func printRecommendation(rec *pricing.Recommendation, required float64) {
	console.Output("")

	if rec.Recommended == nil {
		console.Warn(rec.Reason)
		return
	}

	r := rec.Recommended
	console.Output(fmt.Sprintf("Recommended for %s GB (+20%% buffer):", formatGB(required)))
	console.Output(fmt.Sprintf("  %s - %g GB total, $%.2f/hr (%.2f GB per $/hr)",
		r.DisplayName(), r.TotalVRAM, r.PricePerHour, r.CostEfficiency))

	if rec.Savings != nil {
		console.Output("")
		console.Output(fmt.Sprintf("Savings vs current: $%.2f/hr, $%.2f/month, $%.2f/year",
			rec.Savings.Hourly, rec.Savings.Monthly, rec.Savings.Yearly))
	}

	if len(rec.Alternatives) > 0 {
		console.Output("")
		console.Output("Alternatives:")
		for _, alt := range rec.Alternatives {
			console.Output(fmt.Sprintf("  %s - %g GB total, $%.2f/hr",
				alt.DisplayName(), alt.TotalVRAM, alt.PricePerHour))
		}
	}

	console.Output("")
	console.Output(fmt.Sprintf("%d configuration(s) meet the requirement.", rec.TotalOptions))
}
