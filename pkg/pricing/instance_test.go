package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brevlabs/launchpad/pkg/errors"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, DefaultCatalog.Validate())
}

func TestClassCatalogIsValid(t *testing.T) {
	require.NoError(t, ClassCatalog.Validate())
}

func TestValidateRejectsBadEntries(t *testing.T) {
	good := Instance{GPUModel: "A10", GPUs: 1, VRAMPerGPU: 24, TotalVRAM: 24, Provider: "X", PricePerHour: 0.90, CostEfficiency: 26.67}

	for name, mutate := range map[string]func(*Instance){
		"zero gpus":           func(i *Instance) { i.GPUs = 0 },
		"negative vram":       func(i *Instance) { i.VRAMPerGPU = -24 },
		"zero price":          func(i *Instance) { i.PricePerHour = 0 },
		"wrong total":         func(i *Instance) { i.TotalVRAM = 48 },
		"wrong efficiency":    func(i *Instance) { i.CostEfficiency = 99.0 },
		"efficiency off by 1": func(i *Instance) { i.CostEfficiency = 27.67 },
	} {
		t.Run(name, func(t *testing.T) {
			bad := good
			mutate(&bad)
			err := Catalog{bad}.Validate()
			require.Error(t, err)
			require.Equal(t, errors.CodeBadCatalog, errors.Code(err))
		})
	}

	require.NoError(t, Catalog{good}.Validate())
}

func TestDisplayName(t *testing.T) {
	single := Instance{GPUModel: "A10", GPUs: 1, Provider: "HYPERSTACK"}
	require.Equal(t, "A10 (HYPERSTACK)", single.DisplayName())

	multi := Instance{GPUModel: "H100", GPUs: 4, Provider: "HYPERSTACK"}
	require.Equal(t, "4x H100 (HYPERSTACK)", multi.DisplayName())
}

func TestConfigKeyIgnoresProvider(t *testing.T) {
	a := Instance{GPUModel: "A10", GPUs: 1, VRAMPerGPU: 24, Provider: "ALPHA"}
	b := Instance{GPUModel: "A10", GPUs: 1, VRAMPerGPU: 24, Provider: "BETA"}
	require.Equal(t, a.configKey(), b.configKey())

	c := Instance{GPUModel: "A10", GPUs: 2, VRAMPerGPU: 24, Provider: "ALPHA"}
	require.NotEqual(t, a.configKey(), c.configKey())
}
