package vram

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// mockFileInfo is a test type to mock os.FileInfo
type mockFileInfo struct {
	size int64
	dir  bool
}

func (mfi mockFileInfo) Size() int64 {
	return mfi.size
}
func (mfi mockFileInfo) Name() string {
	return ""
}
func (mfi mockFileInfo) Mode() os.FileMode {
	return 0
}
func (mfi mockFileInfo) ModTime() time.Time {
	return time.Time{}
}
func (mfi mockFileInfo) IsDir() bool {
	return mfi.dir
}
func (mfi mockFileInfo) Sys() interface{} {
	return nil
}

func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEstimateStableDiffusion15(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "generate.py", `pipe = StableDiffusionPipeline.from_pretrained("runwayml/stable-diffusion-v1-5")`)

	result, ok, err := Estimate(dir)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 6.0, result.BaseVRAM)
	require.Equal(t, 9.0, result.EstimatedVRAM)
	require.Len(t, result.DetectedModels, 1)
	require.Equal(t, "Stable Diffusion 1.5", result.DetectedModels[0].Model)
	require.Equal(t, "generate.py", result.DetectedModels[0].Source)
}

func TestEstimateEmptyProject(t *testing.T) {
	result, ok, err := Estimate(t.TempDir())
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, result)
}

func TestEstimateGenericFrameworkFallback(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "requirements.txt", "torch==2.1.0\nnumpy\n")

	result, ok, err := Estimate(dir)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, GenericBaselineGB, result.BaseVRAM)
	require.Equal(t, 6.0, result.EstimatedVRAM)
	require.Equal(t, []string{"PyTorch"}, result.Frameworks)
	require.Len(t, result.DetectedModels, 1)
	require.Equal(t, GenericModelName, result.DetectedModels[0].Model)
	require.Equal(t, "requirements.txt", result.DetectedModels[0].Source)
}

func TestEstimateNoFallbackFromSourceFiles(t *testing.T) {
	// A framework import in code is not enough; the fallback needs the
	// framework in a dependency manifest.
	dir := t.TempDir()
	writeProjectFile(t, dir, "train.py", "import torch\n")

	result, ok, err := Estimate(dir)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, result)
}

func TestEstimateLargestSignatureWins(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "requirements.txt", "diffusers\ntransformers\n")
	writeProjectFile(t, dir, "app.py", `model = "mistralai/Mistral-7B-v0.1"`)
	writeProjectFile(t, dir, "sd.py", `pipe = load("stabilityai/sdxl-turbo")`)

	result, ok, err := Estimate(dir)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 16.0, result.BaseVRAM)
	require.Equal(t, 24.0, result.EstimatedVRAM)
}

func TestEstimateIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "requirements.txt", "transformers\n")
	writeProjectFile(t, dir, "run.py", "whisper.load_model('large')\n")

	first, ok, err := Estimate(dir)
	require.NoError(t, err)
	require.True(t, ok)
	second, ok, err := Estimate(dir)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, first, second)
}

func TestEstimateDedupKeepsOneDetectionPerModel(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "a.py", "whisper\n")
	writeProjectFile(t, dir, "b.py", "whisper\n")

	result, ok, err := Estimate(dir)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, result.DetectedModels, 1)
	require.Equal(t, "Whisper", result.DetectedModels[0].Model)
}

func TestMergeDetectionsKeepsLargestPerModel(t *testing.T) {
	merged := mergeDetections([]Detection{
		{Model: "Foo", VRAMGB: 4.0, Source: "a.py"},
		{Model: "Foo", VRAMGB: 8.0, Source: "b.py"},
		{Model: "Bar", VRAMGB: 6.0, Source: "c.py"},
	})

	require.Equal(t, []Detection{
		{Model: "Foo", VRAMGB: 8.0, Source: "b.py"},
		{Model: "Bar", VRAMGB: 6.0, Source: "c.py"},
	}, merged)
}

func TestEstimateSkipsBinaryAndIgnoredFiles(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "a.py", "whisper\n")
	writeProjectFile(t, dir, "weights.json", string([]byte{0xff, 0xfe, 0x00, 0x81}))
	writeProjectFile(t, dir, ".venv/lib/sd.py", "sdxl\n")
	writeProjectFile(t, dir, "checkpoints/model.bin", "sdxl\n")

	result, ok, err := Estimate(dir)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 10.0, result.BaseVRAM)
	require.Len(t, result.DetectedModels, 1)
}

func TestEstimateHonorsIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, ".launchignore", "docs/\n")
	writeProjectFile(t, dir, "docs/models.md", "mixtral benchmarks\n")
	writeProjectFile(t, dir, "a.py", "whisper\n")

	result, ok, err := Estimate(dir)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 10.0, result.BaseVRAM)
	require.Len(t, result.DetectedModels, 1)
	require.Equal(t, "Whisper", result.DetectedModels[0].Model)
}

func TestEstimateSeventyBillionNotMistakenForSeven(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, "run.py", `model = "meta-llama/Llama-2-70b-hf"`)

	result, ok, err := Estimate(dir)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 140.0, result.BaseVRAM)
	require.Len(t, result.DetectedModels, 1)
	require.Equal(t, "LLaMA 70B", result.DetectedModels[0].Model)
}

func TestEstimateRootWalkError(t *testing.T) {
	walkErr := errors.New("permission denied")
	mockFileWalker := func(root string, walkFn filepath.WalkFunc) error {
		return walkFn(root, nil, walkErr)
	}

	_, _, err := estimate("/project", mockFileWalker, func(string) ([]byte, error) {
		return nil, errors.New("not used")
	})
	require.ErrorIs(t, err, walkErr)
}

func TestEstimateUnreadableFileSkipped(t *testing.T) {
	mockFileWalker := func(root string, walkFn filepath.WalkFunc) error {
		for _, name := range []string{"broken.py", "good.py"} {
			if err := walkFn(filepath.Join(root, name), mockFileInfo{size: 10}, nil); err != nil {
				return err
			}
		}
		return nil
	}
	readFile := func(path string) ([]byte, error) {
		if filepath.Base(path) == "good.py" {
			return []byte("whisper"), nil
		}
		return nil, errors.New("read failed")
	}

	result, ok, err := estimate("/project", mockFileWalker, readFile)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 10.0, result.BaseVRAM)
}

func TestEstimateSkipsOversizedFiles(t *testing.T) {
	mockFileWalker := func(root string, walkFn filepath.WalkFunc) error {
		return walkFn(filepath.Join(root, "huge.py"), mockFileInfo{size: maxScanSize + 1}, nil)
	}
	readFile := func(path string) ([]byte, error) {
		if filepath.Base(path) == "huge.py" {
			return []byte("whisper"), nil
		}
		return nil, errors.New("read failed")
	}

	result, ok, err := estimate("/project", mockFileWalker, readFile)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, result)
}
