// Package launchable defines the launchable.yaml deployment descriptor.
package launchable

import (
	"time"

	"github.com/brevlabs/launchpad/pkg/scan"
)

type Source struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url" yaml:"url"`
	Ref  string `json:"ref" yaml:"ref"`
	Path string `json:"path" yaml:"path"`
}

type Setup struct {
	PythonVersion string `json:"python_version" yaml:"python_version"`
	Install       string `json:"install" yaml:"install"`
}

type Notebook struct {
	EnableJupyter bool   `json:"enable_jupyter" yaml:"enable_jupyter"`
	Command       string `json:"command" yaml:"command"`
	Port          int    `json:"port" yaml:"port"`
}

type Webapp struct {
	ExposePort int    `json:"expose_port" yaml:"expose_port"`
	Command    string `json:"command" yaml:"command"`
}

type Start struct {
	Notebook *Notebook `json:"notebook,omitempty" yaml:"notebook,omitempty"`
	Webapp   *Webapp   `json:"webapp,omitempty" yaml:"webapp,omitempty"`
}

type Runtime struct {
	Mode  string `json:"mode" yaml:"mode"`
	Setup Setup  `json:"setup" yaml:"setup"`
	Start Start  `json:"start" yaml:"start"`
}

type Compute struct {
	GPU  string `json:"gpu" yaml:"gpu"`
	Note string `json:"note" yaml:"note"`
}

type Networking struct {
	Ports []int `json:"ports" yaml:"ports"`
}

type Files struct {
	Include []string `json:"include" yaml:"include"`
}

type Metadata struct {
	GeneratedBy string `json:"generated_by" yaml:"generated_by"`
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
}

// Config is a complete launchable deployment descriptor.
type Config struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Source      Source     `json:"source" yaml:"source"`
	Runtime     Runtime    `json:"runtime" yaml:"runtime"`
	Compute     Compute    `json:"compute" yaml:"compute"`
	Networking  Networking `json:"networking" yaml:"networking"`
	Files       Files      `json:"files" yaml:"files"`
	Metadata    Metadata   `json:"metadata" yaml:"metadata"`
}

// New builds a config with sensible defaults; builders below flip it between
// notebook and webapp modes.
func New(name, description string, source Source) *Config {
	return &Config{
		Name:        name,
		Description: description,
		Source:      source,
		Runtime: Runtime{
			Mode: "vm",
			Setup: Setup{
				PythonVersion: scan.DefaultPythonVersion,
				Install:       "pip install -r requirements.txt",
			},
		},
		Compute: Compute{
			GPU:  "any",
			Note: "Select lowest-cost GPU in the console",
		},
		Networking: Networking{Ports: []int{}},
		Files:      Files{Include: []string{"."}},
		Metadata: Metadata{
			GeneratedBy: "launchpad",
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// WithNotebook configures notebook mode and exposes its port.
func (c *Config) WithNotebook(command string, port int) *Config {
	c.Runtime.Start.Notebook = &Notebook{
		EnableJupyter: true,
		Command:       command,
		Port:          port,
	}
	c.Runtime.Start.Webapp = nil
	c.addPort(port)
	return c
}

// WithWebapp configures webapp mode and exposes its port.
func (c *Config) WithWebapp(command string, port int) *Config {
	c.Runtime.Start.Webapp = &Webapp{
		ExposePort: port,
		Command:    command,
	}
	c.Runtime.Start.Notebook = nil
	c.addPort(port)
	return c
}

// WithInstall sets the dependency install command.
func (c *Config) WithInstall(command string) *Config {
	c.Runtime.Setup.Install = command
	return c
}

// WithGPU sets the compute section.
func (c *Config) WithGPU(gpu, note string) *Config {
	c.Compute.GPU = gpu
	c.Compute.Note = note
	return c
}

func (c *Config) addPort(port int) {
	for _, p := range c.Networking.Ports {
		if p == port {
			return
		}
	}
	c.Networking.Ports = append(c.Networking.Ports, port)
}
