package launchable

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/brevlabs/launchpad/pkg/global"
)

// Render produces the YAML document with a fixed key order, so regenerating
// an unchanged project gives a byte-identical file (modulo the timestamp).
func Render(c *Config) (string, error) {
	doc := yaml.MapSlice{
		{Key: "name", Value: c.Name},
		{Key: "description", Value: c.Description},
		{Key: "source", Value: yaml.MapSlice{
			{Key: "type", Value: c.Source.Type},
			{Key: "url", Value: c.Source.URL},
			{Key: "ref", Value: c.Source.Ref},
			{Key: "path", Value: c.Source.Path},
		}},
		{Key: "runtime", Value: renderRuntime(c)},
		{Key: "compute", Value: yaml.MapSlice{
			{Key: "gpu", Value: c.Compute.GPU},
			{Key: "note", Value: c.Compute.Note},
		}},
		{Key: "networking", Value: yaml.MapSlice{
			{Key: "ports", Value: c.Networking.Ports},
		}},
		{Key: "files", Value: yaml.MapSlice{
			{Key: "include", Value: c.Files.Include},
		}},
		{Key: "metadata", Value: yaml.MapSlice{
			{Key: "generated_by", Value: c.Metadata.GeneratedBy},
			{Key: "generated_at", Value: c.Metadata.GeneratedAt},
		}},
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func renderRuntime(c *Config) yaml.MapSlice {
	start := yaml.MapSlice{}
	if nb := c.Runtime.Start.Notebook; nb != nil {
		start = append(start, yaml.MapItem{Key: "notebook", Value: yaml.MapSlice{
			{Key: "enable_jupyter", Value: nb.EnableJupyter},
			{Key: "command", Value: nb.Command},
			{Key: "port", Value: nb.Port},
		}})
	}
	if wa := c.Runtime.Start.Webapp; wa != nil {
		start = append(start, yaml.MapItem{Key: "webapp", Value: yaml.MapSlice{
			{Key: "expose_port", Value: wa.ExposePort},
			{Key: "command", Value: wa.Command},
		}})
	}

	return yaml.MapSlice{
		{Key: "mode", Value: c.Runtime.Mode},
		{Key: "setup", Value: yaml.MapSlice{
			{Key: "python_version", Value: c.Runtime.Setup.PythonVersion},
			{Key: "install", Value: c.Runtime.Setup.Install},
		}},
		{Key: "start", Value: start},
	}
}

// Write renders the config into launchable.yaml inside dir, overwriting any
// previous file, and returns the written path.
func Write(c *Config, dir string) (string, error) {
	contents, err := Render(c)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(dir, global.LaunchableFilename)
	if err := os.WriteFile(outputPath, []byte(contents), 0o644); err != nil {
		return "", err
	}
	return outputPath, nil
}
