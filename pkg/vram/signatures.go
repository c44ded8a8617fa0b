package vram

import "regexp"

// ModelSignature pairs a content pattern with a model name and the VRAM a
// checkpoint of that model is known to need. Patterns are matched against
// lowercased file content, so they are written in lowercase.
type ModelSignature struct {
	Pattern *regexp.Regexp
	Model   string
	VRAMGB  float64
}

// Signatures is the model signature catalog. It is defined once at process
// start and never mutated. Values are weight-size baselines in GiB, before
// the activation/gradient buffer is applied.
var Signatures = []ModelSignature{
	// Diffusion models
	{regexp.MustCompile(`stable[ \-_]?diffusion[ \-_]?v?1[.\-]5`), "Stable Diffusion 1.5", 6.0},
	{regexp.MustCompile(`stable[ \-_]?diffusion[ \-_]?v?2[.\-]1`), "Stable Diffusion 2.1", 8.0},
	{regexp.MustCompile(`stable[ \-_]?diffusion[ \-_]?xl|sdxl`), "Stable Diffusion XL", 12.0},
	{regexp.MustCompile(`stable[ \-_]?diffusion[ \-_]?3|sd3[.\-]`), "Stable Diffusion 3", 18.0},
	{regexp.MustCompile(`flux[.\-]1|black-forest-labs/flux`), "FLUX.1", 24.0},

	// Language models
	{regexp.MustCompile(`llama[^\n]{0,4}7b`), "LLaMA 7B", 16.0},
	{regexp.MustCompile(`llama[^\n]{0,4}13b`), "LLaMA 13B", 28.0},
	{regexp.MustCompile(`llama[^\n]{0,4}70b`), "LLaMA 70B", 140.0},
	{regexp.MustCompile(`mistral[^\n]{0,4}7b`), "Mistral 7B", 16.0},
	{regexp.MustCompile(`mixtral`), "Mixtral 8x7B", 90.0},
	{regexp.MustCompile(`gpt-?2\b`), "GPT-2", 4.0},
	{regexp.MustCompile(`\bt5\b`), "T5", 8.0},
	{regexp.MustCompile(`\bbert\b`), "BERT", 2.0},

	// Audio / vision
	{regexp.MustCompile(`whisper`), "Whisper", 10.0},
	{regexp.MustCompile(`\bclip\b`), "CLIP", 4.0},
	{regexp.MustCompile(`yolov?\d*`), "YOLO", 6.0},
	{regexp.MustCompile(`resnet`), "ResNet", 2.0},
}

// GenericBaselineGB is assumed when no model signature matches but a known ML
// framework shows up in the dependency manifest.
const GenericBaselineGB = 4.0

// GenericModelName labels the fallback detection.
const GenericModelName = "Generic ML Framework"

// frameworkMarkers maps content substrings to canonical framework names.
// Matching is on lowercased content, dedup is by canonical name.
var frameworkMarkers = []struct {
	Marker string
	Name   string
}{
	{"pytorch", "PyTorch"},
	{"torch", "PyTorch"},
	{"tensorflow", "TensorFlow"},
	{"keras", "Keras"},
	{"jax", "JAX"},
	{"transformers", "Transformers"},
	{"diffusers", "Diffusers"},
	{"onnx", "ONNX"},
}
