package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadFile reads a catalog from a YAML file, fills derived fields that were
// left out (total_vram_gib, cost_efficiency), and validates the result. This
// is the data-file path for shipping catalog updates without a new binary.
func LoadFile(path string) (Catalog, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	catalog, err := FromYAML(contents)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// FromYAML parses catalog YAML, completes derived fields and validates.
func FromYAML(contents []byte) (Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(contents, &catalog); err != nil {
		return nil, fmt.Errorf("Failed to parse catalog YAML: %w", err)
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	catalog.complete()
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
