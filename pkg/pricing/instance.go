// Package pricing matches a VRAM requirement against priced GPU offerings.
package pricing

import (
	"fmt"
	"math"

	"github.com/brevlabs/launchpad/pkg/errors"
)

// Instance is one priced hardware offering from a compute provider.
type Instance struct {
	GPUModel       string  `json:"gpu_model" yaml:"gpu_model"`
	GPUs           int     `json:"gpus" yaml:"gpus"`
	VRAMPerGPU     float64 `json:"vram_per_gpu_gib" yaml:"vram_per_gpu_gib"`
	TotalVRAM      float64 `json:"total_vram_gib" yaml:"total_vram_gib"`
	Provider       string  `json:"provider" yaml:"provider"`
	PricePerHour   float64 `json:"price_per_hour" yaml:"price_per_hour"`
	CostEfficiency float64 `json:"cost_efficiency" yaml:"cost_efficiency"` // total VRAM per dollar-hour

	// Class is the symbolic GPU-class identifier (e.g. "gpu_1x_a10"). Only
	// populated in the coarse class catalog; empty for itemized instances.
	Class string `json:"class,omitempty" yaml:"class,omitempty"`
}

// DisplayName formats an instance for terminal output, e.g. "4x H100 (HYPERSTACK)".
func (i Instance) DisplayName() string {
	if i.GPUs == 1 {
		return fmt.Sprintf("%s (%s)", i.GPUModel, i.Provider)
	}
	return fmt.Sprintf("%dx %s (%s)", i.GPUs, i.GPUModel, i.Provider)
}

// configKey identifies a physical configuration independent of provider, so
// the same hardware offered by several providers is reported once.
func (i Instance) configKey() string {
	return fmt.Sprintf("%s|%d|%g", i.GPUModel, i.GPUs, i.VRAMPerGPU)
}

// Catalog is an immutable set of instances loaded at process start or from a
// catalog file. It is never mutated after construction.
type Catalog []Instance

// Stored efficiency figures are published rounded to two decimals.
const efficiencyTolerance = 0.01

// Validate checks the catalog's algebraic invariants:
// total_vram = gpus * vram_per_gpu and cost_efficiency = total_vram / price.
// A violation is a programmer error in the catalog data, not a runtime state.
func (c Catalog) Validate() error {
	for idx, inst := range c {
		if inst.GPUs <= 0 {
			return errors.BadCatalog(fmt.Sprintf("catalog[%d] %s: gpus must be positive, got %d", idx, inst.DisplayName(), inst.GPUs))
		}
		if inst.VRAMPerGPU <= 0 || math.IsNaN(inst.VRAMPerGPU) || math.IsInf(inst.VRAMPerGPU, 0) {
			return errors.BadCatalog(fmt.Sprintf("catalog[%d] %s: invalid vram_per_gpu_gib %v", idx, inst.DisplayName(), inst.VRAMPerGPU))
		}
		if inst.PricePerHour <= 0 || math.IsNaN(inst.PricePerHour) || math.IsInf(inst.PricePerHour, 0) {
			return errors.BadCatalog(fmt.Sprintf("catalog[%d] %s: invalid price_per_hour %v", idx, inst.DisplayName(), inst.PricePerHour))
		}
		wantTotal := float64(inst.GPUs) * inst.VRAMPerGPU
		if math.Abs(inst.TotalVRAM-wantTotal) > 1e-9 {
			return errors.BadCatalog(fmt.Sprintf("catalog[%d] %s: total_vram_gib %g != gpus*vram_per_gpu %g", idx, inst.DisplayName(), inst.TotalVRAM, wantTotal))
		}
		wantEfficiency := inst.TotalVRAM / inst.PricePerHour
		if math.Abs(inst.CostEfficiency-wantEfficiency) > efficiencyTolerance {
			return errors.BadCatalog(fmt.Sprintf("catalog[%d] %s: cost_efficiency %g != total_vram/price %g", idx, inst.DisplayName(), inst.CostEfficiency, wantEfficiency))
		}
	}
	return nil
}

// complete fills derived fields left at zero in user-supplied catalogs.
func (c Catalog) complete() {
	for i := range c {
		if c[i].TotalVRAM == 0 {
			c[i].TotalVRAM = float64(c[i].GPUs) * c[i].VRAMPerGPU
		}
		if c[i].CostEfficiency == 0 && c[i].PricePerHour > 0 {
			c[i].CostEfficiency = c[i].TotalVRAM / c[i].PricePerHour
		}
	}
}
