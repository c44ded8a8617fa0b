package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brevlabs/launchpad/pkg/errors"
)

// testCatalog has two providers offering the same 24 GiB config, a 16 GiB
// budget option and a 48 GiB config for headroom.
var testCatalog = Catalog{
	{GPUModel: "T4", GPUs: 1, VRAMPerGPU: 16, TotalVRAM: 16, Provider: "ALPHA", PricePerHour: 0.40, CostEfficiency: 40.00},
	{GPUModel: "A10", GPUs: 1, VRAMPerGPU: 24, TotalVRAM: 24, Provider: "ALPHA", PricePerHour: 0.90, CostEfficiency: 26.67},
	{GPUModel: "A10", GPUs: 1, VRAMPerGPU: 24, TotalVRAM: 24, Provider: "BETA", PricePerHour: 1.10, CostEfficiency: 21.82},
	{GPUModel: "L40S", GPUs: 1, VRAMPerGPU: 48, TotalVRAM: 48, Provider: "ALPHA", PricePerHour: 1.42, CostEfficiency: 33.80},
}

func TestRecommendPicksCheapestFitting(t *testing.T) {
	rec, err := testCatalog.Recommend(10.0, nil)
	require.NoError(t, err)
	require.NotNil(t, rec.Recommended)
	require.Equal(t, "T4", rec.Recommended.GPUModel)
	require.Equal(t, 4, rec.TotalOptions)
}

func TestRecommendBufferBoundary(t *testing.T) {
	// 20 * 1.2 is exactly 24 in float64, so a 24 GiB card still qualifies.
	rec, err := testCatalog.Recommend(20.0, nil)
	require.NoError(t, err)
	require.NotNil(t, rec.Recommended)
	require.Equal(t, "A10", rec.Recommended.GPUModel)
	require.Equal(t, "ALPHA", rec.Recommended.Provider)

	// 20.1 * 1.2 = 24.12 pushes past it.
	rec, err = testCatalog.Recommend(20.1, nil)
	require.NoError(t, err)
	require.NotNil(t, rec.Recommended)
	require.Equal(t, "L40S", rec.Recommended.GPUModel)
}

func TestRecommendTieBrokenByEfficiency(t *testing.T) {
	catalog := Catalog{
		{GPUModel: "A", GPUs: 1, VRAMPerGPU: 24, TotalVRAM: 24, Provider: "X", PricePerHour: 1.00, CostEfficiency: 24.00},
		{GPUModel: "B", GPUs: 1, VRAMPerGPU: 48, TotalVRAM: 48, Provider: "X", PricePerHour: 1.00, CostEfficiency: 48.00},
	}

	rec, err := catalog.Recommend(10.0, nil)
	require.NoError(t, err)
	require.Equal(t, "B", rec.Recommended.GPUModel)
}

func TestRecommendNoFit(t *testing.T) {
	rec, err := testCatalog.Recommend(1000.0, nil)
	require.NoError(t, err)
	require.Nil(t, rec.Recommended)
	require.Equal(t, "No GPU configuration large enough for requirements", rec.Reason)
	require.NotNil(t, rec.Alternatives)
	require.Empty(t, rec.Alternatives)
	require.Equal(t, 0, rec.TotalOptions)
}

func TestRecommendRejectsInvalidRequirement(t *testing.T) {
	for _, bad := range []float64{-1.0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := testCatalog.Recommend(bad, nil)
		require.Error(t, err)
		require.Equal(t, errors.CodeInvalidInput, errors.Code(err))
	}
}

func TestRecommendZeroRequirementIsValid(t *testing.T) {
	rec, err := testCatalog.Recommend(0, nil)
	require.NoError(t, err)
	require.Equal(t, "T4", rec.Recommended.GPUModel)
	require.Equal(t, 4, rec.TotalOptions)
}

func TestRecommendSavings(t *testing.T) {
	rec, err := testCatalog.Recommend(10.0, &Options{CurrentPricePerHour: 0.90})
	require.NoError(t, err)
	require.NotNil(t, rec.Savings)
	require.InDelta(t, 0.50, rec.Savings.Hourly, 1e-9)
	require.InDelta(t, 360.0, rec.Savings.Monthly, 1e-9)
	require.InDelta(t, 4380.0, rec.Savings.Yearly, 1e-9)
}

func TestRecommendSavingsRespectsHoursPerDay(t *testing.T) {
	rec, err := testCatalog.Recommend(10.0, &Options{CurrentPricePerHour: 0.90, HoursPerDay: 8})
	require.NoError(t, err)
	require.NotNil(t, rec.Savings)
	require.InDelta(t, 120.0, rec.Savings.Monthly, 1e-9)
	require.InDelta(t, 1460.0, rec.Savings.Yearly, 1e-9)
}

func TestRecommendNoSavingsWithoutCurrentPrice(t *testing.T) {
	rec, err := testCatalog.Recommend(10.0, nil)
	require.NoError(t, err)
	require.Nil(t, rec.Savings)
}

func TestRecommendAlternativesDeduplicated(t *testing.T) {
	rec, err := testCatalog.Recommend(10.0, nil)
	require.NoError(t, err)
	require.Equal(t, "T4", rec.Recommended.GPUModel)

	// The A10 config is offered by two providers; only the cheaper listing
	// shows up, and the recommended config never repeats.
	seen := map[string]bool{rec.Recommended.configKey(): true}
	for _, alt := range rec.Alternatives {
		key := alt.configKey()
		require.False(t, seen[key], "duplicate configuration %s", key)
		seen[key] = true
	}
	require.Len(t, rec.Alternatives, 2)
	require.Equal(t, "ALPHA", rec.Alternatives[0].Provider)
	require.Equal(t, "A10", rec.Alternatives[0].GPUModel)
}

func TestRecommendMaxAlternatives(t *testing.T) {
	rec, err := testCatalog.Recommend(10.0, &Options{MaxAlternatives: 1})
	require.NoError(t, err)
	require.Len(t, rec.Alternatives, 1)
	require.Equal(t, 4, rec.TotalOptions)
}

func TestRecommendDefaultCapsAlternativesAtFive(t *testing.T) {
	rec, err := DefaultCatalog.Recommend(10.0, nil)
	require.NoError(t, err)
	require.LessOrEqual(t, len(rec.Alternatives), DefaultMaxAlternatives)
	require.Greater(t, rec.TotalOptions, DefaultMaxAlternatives)
}

func TestRecommendSkipsAnyClass(t *testing.T) {
	rec, err := ClassCatalog.Recommend(9.0, nil)
	require.NoError(t, err)
	require.Equal(t, ClassT4, rec.Recommended.Class)
	for _, alt := range rec.Alternatives {
		require.NotEqual(t, ClassAny, alt.Class)
	}
}

func TestRecommendCoarseAndItemizedAgreeOnOrdering(t *testing.T) {
	// Both catalogs run the same algorithm: whatever they recommend must be
	// the cheapest entry above the threshold.
	for _, catalog := range []Catalog{DefaultCatalog, ClassCatalog} {
		rec, err := catalog.Recommend(30.0, nil)
		require.NoError(t, err)
		require.NotNil(t, rec.Recommended)
		threshold := 30.0 * SafetyBuffer
		for _, inst := range catalog {
			if inst.Class == ClassAny || inst.TotalVRAM < threshold {
				continue
			}
			require.LessOrEqual(t, rec.Recommended.PricePerHour, inst.PricePerHour)
		}
	}
}

func TestMonthlyAndYearlyCost(t *testing.T) {
	require.InDelta(t, 720.0, MonthlyCost(1.0, 24), 1e-9)
	require.InDelta(t, 8760.0, YearlyCost(1.0, 24), 1e-9)
	require.InDelta(t, 240.0, MonthlyCost(1.0, 8), 1e-9)
}
