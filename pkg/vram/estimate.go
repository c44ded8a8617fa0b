// Package vram estimates the GPU memory a project will need from static
// analysis of its source and dependency manifests.
package vram

import (
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/brevlabs/launchpad/pkg/global"
)

// Detection is one piece of evidence: a model signature matched in a file.
type Detection struct {
	Model  string  `json:"model"`
	VRAMGB float64 `json:"vram_gb"`
	Source string  `json:"source"`
}

// Result is the outcome of one estimation pass over a project tree.
type Result struct {
	// EstimatedVRAM is BaseVRAM with the activation/gradient buffer applied,
	// rounded to one decimal.
	EstimatedVRAM float64 `json:"estimated_vram_gb"`
	// BaseVRAM is the largest raw signature baseline seen before buffering.
	BaseVRAM float64 `json:"base_vram_gb"`
	// DetectedModels is deduplicated by model name, keeping the largest
	// VRAM figure observed for each name.
	DetectedModels []Detection `json:"detected_models"`
	// Frameworks are the recognized ML framework names, sorted.
	Frameworks []string `json:"frameworks"`
}

// BufferFactor covers activation and gradient memory beyond raw weight size.
// Under-provisioning fails hard with OOM; over-provisioning only costs money.
const BufferFactor = 1.5

// manifestFiles are dependency manifests read from the project root. Their
// detections are labeled with the manifest name rather than a source path.
var manifestFiles = []string{"requirements.txt", "pyproject.toml"}

// scanExtensions are the file types whose content is worth pattern matching.
var scanExtensions = map[string]bool{
	".py": true, ".ipynb": true, ".txt": true, ".md": true,
	".toml": true, ".cfg": true, ".ini": true,
	".yaml": true, ".yml": true, ".json": true, ".sh": true,
}

// skipPatterns are never scanned, on top of any .launchignore rules.
var skipPatterns = []string{
	"**/.git/**",
	"**/__pycache__/**",
	"**/node_modules/**",
	"**/.venv/**",
	"**/venv/**",
	"**/.ipynb_checkpoints/**",
}

// Files larger than this are assumed not to be source text.
const maxScanSize = 1 * 1024 * 1024 // 1MB

// FileWalker is a function type that walks the file tree rooted at root,
// calling walkFn for each file or directory in the tree, including root.
type FileWalker func(root string, walkFn filepath.WalkFunc) error

// Estimate walks the project tree rooted at root and produces a conservative
// VRAM estimate. The second return is false when nothing in the project gives
// a clue ("cannot estimate"); callers must apply their own default rather
// than treating that as a zero requirement. Per-file read errors are
// swallowed: a scan never fails because of one unreadable file.
func Estimate(root string) (*Result, bool, error) {
	return estimate(root, filepath.Walk, os.ReadFile)
}

type accumulator struct {
	detections        []Detection
	baseVRAM          float64
	frameworks        map[string]bool
	manifestFramework bool
	manifestName      string
}

func estimate(root string, fw FileWalker, readFile func(string) ([]byte, error)) (*Result, bool, error) {
	acc := &accumulator{frameworks: map[string]bool{}}

	ignorer := loadIgnoreFile(root, readFile)

	err := fw(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // unreadable entries are skipped silently
		}
		if info.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if isSkipped(rel) || (ignorer != nil && ignorer.MatchesPath(rel)) {
			return nil
		}

		manifest := isManifest(rel)
		if !manifest && !scanExtensions[strings.ToLower(filepath.Ext(rel))] {
			return nil
		}
		if info.Size() > maxScanSize {
			return nil
		}

		bs, readErr := readFile(path)
		if readErr != nil || !utf8.Valid(bs) {
			return nil
		}

		source := rel
		if manifest {
			source = filepath.Base(rel)
		}
		scanContent(source, strings.ToLower(string(bs)), manifest, acc)
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return acc.result()
}

// scanContent matches one text unit against the signature catalog and the
// framework markers. Content must already be lowercased.
func scanContent(source, content string, manifest bool, acc *accumulator) {
	for _, sig := range Signatures {
		if sig.Pattern.MatchString(content) {
			acc.detections = append(acc.detections, Detection{
				Model:  sig.Model,
				VRAMGB: sig.VRAMGB,
				Source: source,
			})
			if sig.VRAMGB > acc.baseVRAM {
				acc.baseVRAM = sig.VRAMGB
			}
		}
	}

	for _, fm := range frameworkMarkers {
		if strings.Contains(content, fm.Marker) {
			acc.frameworks[fm.Name] = true
			if manifest {
				acc.manifestFramework = true
				if acc.manifestName == "" {
					acc.manifestName = source
				}
			}
		}
	}
}

func (acc *accumulator) result() (*Result, bool, error) {
	// Fallback baseline: a recognized framework in the manifest but no
	// specific model anywhere still means a GPU workload of some size.
	if acc.baseVRAM == 0 && acc.manifestFramework {
		acc.baseVRAM = GenericBaselineGB
		acc.detections = append(acc.detections, Detection{
			Model:  GenericModelName,
			VRAMGB: GenericBaselineGB,
			Source: acc.manifestName,
		})
	}

	if acc.baseVRAM == 0 {
		return nil, false, nil
	}

	frameworks := make([]string, 0, len(acc.frameworks))
	for name := range acc.frameworks {
		frameworks = append(frameworks, name)
	}
	sort.Strings(frameworks)

	return &Result{
		EstimatedVRAM:  round1(acc.baseVRAM * BufferFactor),
		BaseVRAM:       acc.baseVRAM,
		DetectedModels: mergeDetections(acc.detections),
		Frameworks:     frameworks,
	}, true, nil
}

// mergeDetections deduplicates by model name, keeping the detection with the
// largest VRAM figure. The shipped catalog has one value per name, but
// overlapping future entries must not shrink an estimate.
func mergeDetections(detections []Detection) []Detection {
	best := map[string]Detection{}
	for _, d := range detections {
		if prev, ok := best[d.Model]; !ok || d.VRAMGB > prev.VRAMGB {
			best[d.Model] = d
		}
	}

	merged := make([]Detection, 0, len(best))
	for _, d := range best {
		merged = append(merged, d)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].VRAMGB != merged[j].VRAMGB {
			return merged[i].VRAMGB > merged[j].VRAMGB
		}
		return merged[i].Model < merged[j].Model
	})
	return merged
}

func isSkipped(rel string) bool {
	for _, pattern := range skipPatterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func isManifest(rel string) bool {
	for _, m := range manifestFiles {
		if rel == m {
			return true
		}
	}
	return false
}

func loadIgnoreFile(root string, readFile func(string) ([]byte, error)) *gitignore.GitIgnore {
	bs, err := readFile(filepath.Join(root, global.IgnoreFilename))
	if err != nil {
		return nil
	}
	return gitignore.CompileIgnoreLines(strings.Split(string(bs), "\n")...)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
