package pricing

// DefaultCatalog is the itemized instance table, a static snapshot of
// provider offerings versioned with the software. Catalog updates ship as a
// data file (LoadFile) or a remote fetch (Fetch); nothing mutates this table
// at runtime.
var DefaultCatalog = Catalog{
	// B300
	{GPUModel: "B300", GPUs: 1, VRAMPerGPU: 288, TotalVRAM: 288, Provider: "DATACRUNCH", PricePerHour: 7.91, CostEfficiency: 36.41},
	{GPUModel: "B300", GPUs: 2, VRAMPerGPU: 288, TotalVRAM: 576, Provider: "DATACRUNCH", PricePerHour: 13.85, CostEfficiency: 41.59},
	{GPUModel: "B300", GPUs: 4, VRAMPerGPU: 288, TotalVRAM: 1152, Provider: "DATACRUNCH", PricePerHour: 25.73, CostEfficiency: 44.77},
	{GPUModel: "B300", GPUs: 8, VRAMPerGPU: 288, TotalVRAM: 2304, Provider: "DATACRUNCH", PricePerHour: 49.49, CostEfficiency: 46.55},

	// B200
	{GPUModel: "B200", GPUs: 1, VRAMPerGPU: 180, TotalVRAM: 180, Provider: "LAMBDA-LABS", PricePerHour: 6.35, CostEfficiency: 28.35},
	{GPUModel: "B200", GPUs: 1, VRAMPerGPU: 192, TotalVRAM: 192, Provider: "DATACRUNCH", PricePerHour: 6.76, CostEfficiency: 28.40},
	{GPUModel: "B200", GPUs: 2, VRAMPerGPU: 192, TotalVRAM: 384, Provider: "DATACRUNCH", PricePerHour: 11.54, CostEfficiency: 33.28},
	{GPUModel: "B200", GPUs: 2, VRAMPerGPU: 180, TotalVRAM: 360, Provider: "LAMBDA-LABS", PricePerHour: 12.46, CostEfficiency: 28.89},
	{GPUModel: "B200", GPUs: 4, VRAMPerGPU: 192, TotalVRAM: 768, Provider: "DATACRUNCH", PricePerHour: 21.12, CostEfficiency: 36.36},
	{GPUModel: "B200", GPUs: 8, VRAMPerGPU: 192, TotalVRAM: 1536, Provider: "BOOSTRUN", PricePerHour: 38.40, CostEfficiency: 40.00},
	{GPUModel: "B200", GPUs: 8, VRAMPerGPU: 192, TotalVRAM: 1536, Provider: "DATACRUNCH", PricePerHour: 40.27, CostEfficiency: 38.15},

	// RTX PRO 6000
	{GPUModel: "RTX PRO 6000", GPUs: 1, VRAMPerGPU: 96, TotalVRAM: 96, Provider: "MASSEDCOMPUTE", PricePerHour: 2.15, CostEfficiency: 44.65},
	{GPUModel: "RTX PRO 6000", GPUs: 2, VRAMPerGPU: 96, TotalVRAM: 192, Provider: "MASSEDCOMPUTE", PricePerHour: 4.30, CostEfficiency: 44.65},
	{GPUModel: "RTX PRO 6000", GPUs: 4, VRAMPerGPU: 96, TotalVRAM: 384, Provider: "MASSEDCOMPUTE", PricePerHour: 8.59, CostEfficiency: 44.70},
	{GPUModel: "RTX PRO 6000", GPUs: 8, VRAMPerGPU: 96, TotalVRAM: 768, Provider: "BOOSTRUN", PricePerHour: 11.62, CostEfficiency: 66.09},
	{GPUModel: "RTX PRO 6000", GPUs: 8, VRAMPerGPU: 96, TotalVRAM: 768, Provider: "MASSEDCOMPUTE", PricePerHour: 17.18, CostEfficiency: 44.70},

	// H200
	{GPUModel: "H200", GPUs: 1, VRAMPerGPU: 141, TotalVRAM: 141, Provider: "DIGITALOCEAN", PricePerHour: 4.13, CostEfficiency: 34.14},
	{GPUModel: "H200", GPUs: 1, VRAMPerGPU: 141, TotalVRAM: 141, Provider: "DATACRUNCH", PricePerHour: 5.08, CostEfficiency: 27.76},
	{GPUModel: "H200", GPUs: 2, VRAMPerGPU: 141, TotalVRAM: 282, Provider: "DATACRUNCH", PricePerHour: 8.18, CostEfficiency: 34.47},
	{GPUModel: "H200", GPUs: 4, VRAMPerGPU: 141, TotalVRAM: 564, Provider: "DATACRUNCH", PricePerHour: 14.40, CostEfficiency: 39.17},
	{GPUModel: "H200", GPUs: 8, VRAMPerGPU: 141, TotalVRAM: 1128, Provider: "BOOSTRUN", PricePerHour: 23.52, CostEfficiency: 47.96},
	{GPUModel: "H200", GPUs: 8, VRAMPerGPU: 141, TotalVRAM: 1128, Provider: "DATACRUNCH", PricePerHour: 26.83, CostEfficiency: 42.05},
	{GPUModel: "H200", GPUs: 8, VRAMPerGPU: 141, TotalVRAM: 1128, Provider: "DIGITALOCEAN", PricePerHour: 33.02, CostEfficiency: 34.16},

	// H100 single GPU
	{GPUModel: "H100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "HYPERSTACK", PricePerHour: 2.28, CostEfficiency: 35.09},
	{GPUModel: "H100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "VOLTAGEPARK", PricePerHour: 2.39, CostEfficiency: 33.47},
	{GPUModel: "H100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "DATACRUNCH", PricePerHour: 2.71, CostEfficiency: 29.52},
	{GPUModel: "H100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "IMWT", PricePerHour: 2.98, CostEfficiency: 26.85},
	{GPUModel: "H100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "LAMBDA-LABS", PricePerHour: 2.99, CostEfficiency: 26.76},
	{GPUModel: "H100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "CUDA", PricePerHour: 3.18, CostEfficiency: 25.16},
	{GPUModel: "H100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "MASSEDCOMPUTE", PricePerHour: 3.58, CostEfficiency: 22.35},
	{GPUModel: "H100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "SCALEWAY", PricePerHour: 3.70, CostEfficiency: 21.62},
	{GPUModel: "H100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "DIGITALOCEAN", PricePerHour: 4.01, CostEfficiency: 19.95},

	// H100 2x
	{GPUModel: "H100", GPUs: 2, VRAMPerGPU: 80, TotalVRAM: 160, Provider: "HYPERSTACK", PricePerHour: 4.56, CostEfficiency: 35.09},
	{GPUModel: "H100", GPUs: 2, VRAMPerGPU: 80, TotalVRAM: 160, Provider: "VOLTAGEPARK", PricePerHour: 4.78, CostEfficiency: 33.47},
	{GPUModel: "H100", GPUs: 2, VRAMPerGPU: 80, TotalVRAM: 160, Provider: "IMWT", PricePerHour: 5.95, CostEfficiency: 26.89},
	{GPUModel: "H100", GPUs: 2, VRAMPerGPU: 80, TotalVRAM: 160, Provider: "MASSEDCOMPUTE", PricePerHour: 7.15, CostEfficiency: 22.38},

	// H100 4x
	{GPUModel: "H100", GPUs: 4, VRAMPerGPU: 80, TotalVRAM: 320, Provider: "HYPERSTACK", PricePerHour: 9.12, CostEfficiency: 35.09},
	{GPUModel: "H100", GPUs: 4, VRAMPerGPU: 80, TotalVRAM: 320, Provider: "VOLTAGEPARK", PricePerHour: 9.55, CostEfficiency: 33.51},
	{GPUModel: "H100", GPUs: 4, VRAMPerGPU: 80, TotalVRAM: 320, Provider: "IMWT", PricePerHour: 11.90, CostEfficiency: 26.89},
	{GPUModel: "H100", GPUs: 4, VRAMPerGPU: 80, TotalVRAM: 320, Provider: "MASSEDCOMPUTE", PricePerHour: 14.30, CostEfficiency: 22.38},
	{GPUModel: "H100", GPUs: 4, VRAMPerGPU: 80, TotalVRAM: 320, Provider: "LAMBDA-LABS", PricePerHour: 14.83, CostEfficiency: 21.58},

	// H100 8x
	{GPUModel: "H100", GPUs: 8, VRAMPerGPU: 80, TotalVRAM: 640, Provider: "HYPERSTACK", PricePerHour: 18.24, CostEfficiency: 35.09},
	{GPUModel: "H100", GPUs: 8, VRAMPerGPU: 80, TotalVRAM: 640, Provider: "VOLTAGEPARK", PricePerHour: 19.10, CostEfficiency: 33.51},
	{GPUModel: "H100", GPUs: 8, VRAMPerGPU: 80, TotalVRAM: 640, Provider: "LAMBDA-LABS", PricePerHour: 28.70, CostEfficiency: 22.30},
	{GPUModel: "H100", GPUs: 8, VRAMPerGPU: 80, TotalVRAM: 640, Provider: "DIGITALOCEAN", PricePerHour: 28.70, CostEfficiency: 22.30},

	// A100 80GB
	{GPUModel: "A100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "MASSEDCOMPUTE", PricePerHour: 1.44, CostEfficiency: 55.56},
	{GPUModel: "A100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "JARVIS-LABS", PricePerHour: 1.49, CostEfficiency: 53.69},
	{GPUModel: "A100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "LAMBDA-LABS", PricePerHour: 1.65, CostEfficiency: 48.48},
	{GPUModel: "A100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "DATACRUNCH", PricePerHour: 1.79, CostEfficiency: 44.69},
	{GPUModel: "A100", GPUs: 1, VRAMPerGPU: 80, TotalVRAM: 80, Provider: "VOLTAGEPARK", PricePerHour: 1.99, CostEfficiency: 40.20},

	// A100 40GB
	{GPUModel: "A100", GPUs: 1, VRAMPerGPU: 40, TotalVRAM: 40, Provider: "DENVI", PricePerHour: 1.50, CostEfficiency: 26.67},
	{GPUModel: "A100", GPUs: 1, VRAMPerGPU: 40, TotalVRAM: 40, Provider: "LAMBDA-LABS", PricePerHour: 1.55, CostEfficiency: 25.81},
	{GPUModel: "A100", GPUs: 1, VRAMPerGPU: 40, TotalVRAM: 40, Provider: "AWS", PricePerHour: 1.77, CostEfficiency: 22.60},
	{GPUModel: "A100", GPUs: 1, VRAMPerGPU: 40, TotalVRAM: 40, Provider: "DATACRUNCH", PricePerHour: 1.89, CostEfficiency: 21.16},

	// Multi-GPU A100
	{GPUModel: "A100", GPUs: 2, VRAMPerGPU: 80, TotalVRAM: 160, Provider: "MASSEDCOMPUTE", PricePerHour: 2.87, CostEfficiency: 55.75},
	{GPUModel: "A100", GPUs: 2, VRAMPerGPU: 80, TotalVRAM: 160, Provider: "JARVIS-LABS", PricePerHour: 2.99, CostEfficiency: 53.51},
	{GPUModel: "A100", GPUs: 4, VRAMPerGPU: 80, TotalVRAM: 320, Provider: "MASSEDCOMPUTE", PricePerHour: 5.75, CostEfficiency: 55.65},
	{GPUModel: "A100", GPUs: 8, VRAMPerGPU: 80, TotalVRAM: 640, Provider: "MASSEDCOMPUTE", PricePerHour: 11.50, CostEfficiency: 55.65},

	// L40S
	{GPUModel: "L40S", GPUs: 1, VRAMPerGPU: 48, TotalVRAM: 48, Provider: "MASSEDCOMPUTE", PricePerHour: 1.19, CostEfficiency: 40.34},
	{GPUModel: "L40S", GPUs: 1, VRAMPerGPU: 48, TotalVRAM: 48, Provider: "DATACRUNCH", PricePerHour: 1.29, CostEfficiency: 37.21},
	{GPUModel: "L40S", GPUs: 1, VRAMPerGPU: 48, TotalVRAM: 48, Provider: "LAMBDA-LABS", PricePerHour: 1.50, CostEfficiency: 32.00},
	{GPUModel: "L40S", GPUs: 2, VRAMPerGPU: 48, TotalVRAM: 96, Provider: "MASSEDCOMPUTE", PricePerHour: 2.39, CostEfficiency: 40.17},
	{GPUModel: "L40S", GPUs: 4, VRAMPerGPU: 48, TotalVRAM: 192, Provider: "MASSEDCOMPUTE", PricePerHour: 4.77, CostEfficiency: 40.25},
	{GPUModel: "L40S", GPUs: 8, VRAMPerGPU: 48, TotalVRAM: 384, Provider: "MASSEDCOMPUTE", PricePerHour: 9.54, CostEfficiency: 40.25},

	// A10
	{GPUModel: "A10", GPUs: 1, VRAMPerGPU: 24, TotalVRAM: 24, Provider: "MASSEDCOMPUTE", PricePerHour: 0.65, CostEfficiency: 36.92},
	{GPUModel: "A10", GPUs: 1, VRAMPerGPU: 24, TotalVRAM: 24, Provider: "AWS", PricePerHour: 0.77, CostEfficiency: 31.17},
	{GPUModel: "A10", GPUs: 1, VRAMPerGPU: 24, TotalVRAM: 24, Provider: "LAMBDA-LABS", PricePerHour: 0.90, CostEfficiency: 26.67},
	{GPUModel: "A10", GPUs: 2, VRAMPerGPU: 24, TotalVRAM: 48, Provider: "MASSEDCOMPUTE", PricePerHour: 1.29, CostEfficiency: 37.21},
	{GPUModel: "A10", GPUs: 4, VRAMPerGPU: 24, TotalVRAM: 96, Provider: "MASSEDCOMPUTE", PricePerHour: 2.59, CostEfficiency: 37.07},
	{GPUModel: "A10", GPUs: 8, VRAMPerGPU: 24, TotalVRAM: 192, Provider: "MASSEDCOMPUTE", PricePerHour: 5.18, CostEfficiency: 37.07},

	// RTX 4090
	{GPUModel: "RTX 4090", GPUs: 1, VRAMPerGPU: 24, TotalVRAM: 24, Provider: "MASSEDCOMPUTE", PricePerHour: 0.59, CostEfficiency: 40.68},
	{GPUModel: "RTX 4090", GPUs: 1, VRAMPerGPU: 24, TotalVRAM: 24, Provider: "JARVIS-LABS", PricePerHour: 0.69, CostEfficiency: 34.78},
	{GPUModel: "RTX 4090", GPUs: 2, VRAMPerGPU: 24, TotalVRAM: 48, Provider: "MASSEDCOMPUTE", PricePerHour: 1.19, CostEfficiency: 40.34},
	{GPUModel: "RTX 4090", GPUs: 4, VRAMPerGPU: 24, TotalVRAM: 96, Provider: "MASSEDCOMPUTE", PricePerHour: 2.38, CostEfficiency: 40.34},
	{GPUModel: "RTX 4090", GPUs: 8, VRAMPerGPU: 24, TotalVRAM: 192, Provider: "MASSEDCOMPUTE", PricePerHour: 4.76, CostEfficiency: 40.34},

	// RTX A6000
	{GPUModel: "RTX A6000", GPUs: 1, VRAMPerGPU: 48, TotalVRAM: 48, Provider: "MASSEDCOMPUTE", PricePerHour: 0.89, CostEfficiency: 53.93},
	{GPUModel: "RTX A6000", GPUs: 1, VRAMPerGPU: 48, TotalVRAM: 48, Provider: "AWS", PricePerHour: 1.39, CostEfficiency: 34.53},
	{GPUModel: "RTX A6000", GPUs: 2, VRAMPerGPU: 48, TotalVRAM: 96, Provider: "MASSEDCOMPUTE", PricePerHour: 1.79, CostEfficiency: 53.63},
	{GPUModel: "RTX A6000", GPUs: 4, VRAMPerGPU: 48, TotalVRAM: 192, Provider: "MASSEDCOMPUTE", PricePerHour: 3.58, CostEfficiency: 53.63},

	// T4
	{GPUModel: "T4", GPUs: 1, VRAMPerGPU: 16, TotalVRAM: 16, Provider: "AWS", PricePerHour: 0.40, CostEfficiency: 40.00},
	{GPUModel: "T4", GPUs: 1, VRAMPerGPU: 16, TotalVRAM: 16, Provider: "GCP", PricePerHour: 0.42, CostEfficiency: 38.10},
	{GPUModel: "T4", GPUs: 2, VRAMPerGPU: 16, TotalVRAM: 32, Provider: "AWS", PricePerHour: 0.80, CostEfficiency: 40.00},
	{GPUModel: "T4", GPUs: 4, VRAMPerGPU: 16, TotalVRAM: 64, Provider: "AWS", PricePerHour: 1.60, CostEfficiency: 40.00},

	// V100
	{GPUModel: "V100", GPUs: 1, VRAMPerGPU: 16, TotalVRAM: 16, Provider: "MASSEDCOMPUTE", PricePerHour: 0.89, CostEfficiency: 17.98},
	{GPUModel: "V100", GPUs: 1, VRAMPerGPU: 32, TotalVRAM: 32, Provider: "AWS", PricePerHour: 1.50, CostEfficiency: 21.33},
	{GPUModel: "V100", GPUs: 2, VRAMPerGPU: 16, TotalVRAM: 32, Provider: "MASSEDCOMPUTE", PricePerHour: 1.79, CostEfficiency: 17.88},
}
