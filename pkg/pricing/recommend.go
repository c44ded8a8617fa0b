package pricing

import (
	"fmt"
	"math"
	"sort"

	"github.com/brevlabs/launchpad/pkg/errors"
)

// SafetyBuffer is applied on top of an estimated requirement before matching
// against the catalog, for the same asymmetric-risk reason the estimator
// buffers its raw signal: running out of VRAM fails hard.
const SafetyBuffer = 1.2

// DefaultHoursPerDay assumes an always-on deployment when projecting costs.
const DefaultHoursPerDay = 24

// DefaultMaxAlternatives caps the alternatives list.
const DefaultMaxAlternatives = 5

// Options tune a recommendation. The zero value means: no current price to
// compare against, 5 alternatives, always-on cost projection.
type Options struct {
	// CurrentPricePerHour enables the savings comparison when positive.
	CurrentPricePerHour float64
	// MaxAlternatives limits the alternatives list; 0 means the default of 5.
	MaxAlternatives int
	// HoursPerDay is used for monthly/yearly projections; 0 means 24.
	HoursPerDay int
}

// Savings is the cost delta between a current configuration and the
// recommended one. Negative values mean the recommendation is pricier.
type Savings struct {
	Hourly  float64 `json:"hourly"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// Recommendation is the result of matching a VRAM requirement against a
// catalog. Recommended is nil when nothing fits; that is a first-class
// outcome explained by Reason, not an error.
type Recommendation struct {
	Recommended  *Instance  `json:"recommended"`
	Reason       string     `json:"reason,omitempty"`
	Savings      *Savings   `json:"savings,omitempty"`
	Alternatives []Instance `json:"alternatives"`
	// TotalOptions counts every instance that passed the VRAM threshold,
	// independent of how many alternatives were returned.
	TotalOptions int `json:"total_options"`
}

// MonthlyCost projects an hourly rate to a month of usage.
func MonthlyCost(hourly float64, hoursPerDay int) float64 {
	return hourly * float64(hoursPerDay) * 30
}

// YearlyCost projects an hourly rate to a year of usage.
func YearlyCost(hourly float64, hoursPerDay int) float64 {
	return hourly * float64(hoursPerDay) * 365
}

// Recommend finds the cheapest instance whose total VRAM covers the
// requirement plus a 20% safety buffer. Ties on price are broken by cost
// efficiency, so among equally priced options the one with more VRAM per
// dollar wins. requiredVRAMGB must be non-negative and finite.
func (c Catalog) Recommend(requiredVRAMGB float64, opts *Options) (*Recommendation, error) {
	if requiredVRAMGB < 0 || math.IsNaN(requiredVRAMGB) || math.IsInf(requiredVRAMGB, 0) {
		return nil, errors.InvalidInput(fmt.Sprintf("required VRAM must be a non-negative finite number, got %v", requiredVRAMGB))
	}

	if opts == nil {
		opts = &Options{}
	}
	maxAlternatives := opts.MaxAlternatives
	if maxAlternatives <= 0 {
		maxAlternatives = DefaultMaxAlternatives
	}
	hoursPerDay := opts.HoursPerDay
	if hoursPerDay <= 0 {
		hoursPerDay = DefaultHoursPerDay
	}

	threshold := requiredVRAMGB * SafetyBuffer

	var suitable []Instance
	for _, inst := range c {
		if inst.Class == ClassAny {
			continue
		}
		if inst.TotalVRAM >= threshold {
			suitable = append(suitable, inst)
		}
	}

	if len(suitable) == 0 {
		return &Recommendation{
			Reason:       "No GPU configuration large enough for requirements",
			Alternatives: []Instance{},
		}, nil
	}

	sort.SliceStable(suitable, func(i, j int) bool {
		if suitable[i].PricePerHour != suitable[j].PricePerHour {
			return suitable[i].PricePerHour < suitable[j].PricePerHour
		}
		return suitable[i].CostEfficiency > suitable[j].CostEfficiency
	})

	recommended := suitable[0]

	var savings *Savings
	if opts.CurrentPricePerHour > 0 {
		hourly := opts.CurrentPricePerHour - recommended.PricePerHour
		savings = &Savings{
			Hourly:  hourly,
			Monthly: MonthlyCost(hourly, hoursPerDay),
			Yearly:  YearlyCost(hourly, hoursPerDay),
		}
	}

	// The sort guarantees the first occurrence of each physical config is
	// its cheapest offering, so skipping repeats keeps the right one.
	alternatives := []Instance{}
	seen := map[string]bool{recommended.configKey(): true}
	for _, inst := range suitable[1:] {
		key := inst.configKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		alternatives = append(alternatives, inst)
		if len(alternatives) >= maxAlternatives {
			break
		}
	}

	return &Recommendation{
		Recommended:  &recommended,
		Savings:      savings,
		Alternatives: alternatives,
		TotalOptions: len(suitable),
	}, nil
}
