package pricing

// Symbolic GPU-class identifiers, usable directly in a launchable config's
// compute.gpu field.
const (
	ClassT4       = "gpu_1x_t4"
	ClassA10      = "gpu_1x_a10"
	ClassV100     = "gpu_1x_v100"
	ClassA100     = "gpu_1x_a100"
	ClassA10080GB = "gpu_1x_a100_80gb"
	ClassH100     = "gpu_1x_h100"

	// ClassAny means "let the platform pick". It is never recommended, only
	// used as the default when nothing could be estimated.
	ClassAny = "any"
)

// ClassCatalog is the coarse variant of the pricing table: one entry per GPU
// class at managed-platform rates, for when only a rough recommendation is
// needed. It goes through the same Recommend algorithm as DefaultCatalog.
var ClassCatalog = Catalog{
	{Class: ClassT4, GPUModel: "T4", GPUs: 1, VRAMPerGPU: 16, TotalVRAM: 16, Provider: "MANAGED", PricePerHour: 0.40, CostEfficiency: 40.00},
	{Class: ClassA10, GPUModel: "A10", GPUs: 1, VRAMPerGPU: 24, TotalVRAM: 24, Provider: "MANAGED", PricePerHour: 0.90, CostEfficiency: 26.67},
	{Class: ClassV100, GPUModel: "V100", GPUs: 1, VRAMPerGPU: 16, TotalVRAM: 16, Provider: "MANAGED", PricePerHour: 1.50, CostEfficiency: 10.67},
	{Class: ClassA100, GPUModel: "A100", GPUs: 1, VRAMPerGPU: 40, TotalVRAM: 40, Provider: "MANAGED", PricePerHour: 2.50, CostEfficiency: 16.00},
	{Class: ClassA10080GB, GPUModel: "A100 80GB", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "MANAGED", PricePerHour: 3.00, CostEfficiency: 26.67},
	{Class: ClassH100, GPUModel: "H100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "MANAGED", PricePerHour: 4.00, CostEfficiency: 20.00},
	{Class: ClassAny, GPUModel: "Any GPU", GPUs: 1, VRAMPerGPU: 16, TotalVRAM: 16, Provider: "MANAGED", PricePerHour: 0.60, CostEfficiency: 26.67},
}
