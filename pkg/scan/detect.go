// Package scan inspects a project directory and collects the metadata needed
// to scaffold a launchable config.
package scan

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Project types
const (
	TypeNotebook = "notebook"
	TypeWebapp   = "webapp"
)

// Defaults for scaffolded configs
const (
	DefaultJupyterPort = 8888
	DefaultWebappPort  = 7860

	DefaultNotebookCommand = "jupyter lab --ip=0.0.0.0 --port=8888 --no-browser"
	DefaultWebappCommand   = "python app.py"

	DefaultPythonVersion = "3.10"
)

// Entry file priorities, checked in order.
var (
	notebookEntryFiles = []string{"main.ipynb", "notebook.ipynb", "demo.ipynb"}
	webappEntryFiles   = []string{"app.py", "main.py", "server.py", "api.py"}
)

// commonAppPorts are the ports worth reporting when seen in code.
var commonAppPorts = map[int]bool{
	7860: true, 8000: true, 8080: true, 5000: true,
	3000: true, 8501: true, 8502: true,
}

var portPatterns = []*regexp.Regexp{
	regexp.MustCompile(`port\s*=\s*(\d+)`),
	regexp.MustCompile(`PORT\s*=\s*(\d+)`),
	regexp.MustCompile(`--port[=\s]+(\d+)`),
	regexp.MustCompile(`:(\d+)`),
}

// DetectDependencyFile returns the project's dependency manifest name,
// preferring requirements.txt over pyproject.toml, or "" when neither exists.
func DetectDependencyFile(dir string) string {
	for _, name := range []string{"requirements.txt", "pyproject.toml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return name
		}
	}
	return ""
}

// DetectEntryFile returns the most likely entry file for the given project
// type, or "" when none is found.
func DetectEntryFile(dir, projectType string) string {
	if projectType == TypeNotebook {
		for _, name := range notebookEntryFiles {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return name
			}
		}
		if notebooks := globNames(dir, "*.ipynb"); len(notebooks) > 0 {
			return notebooks[0]
		}
		return ""
	}

	for _, name := range webappEntryFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return name
		}
	}
	if pyFiles := globNames(dir, "*.py"); len(pyFiles) > 0 {
		return pyFiles[0]
	}
	return ""
}

// FindCandidateEntryFiles lists every notebook and non-test Python file at
// the project root, sorted, for the doctor's "did you mean" output.
func FindCandidateEntryFiles(dir string) []string {
	var candidates []string
	candidates = append(candidates, globNames(dir, "*.ipynb")...)
	for _, name := range globNames(dir, "*.py") {
		if strings.HasPrefix(name, "test_") || name == "__init__.py" {
			continue
		}
		candidates = append(candidates, name)
	}
	sort.Strings(candidates)
	return candidates
}

// HasEnvExample reports whether .env.example exists.
func HasEnvExample(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".env.example"))
	return err == nil
}

// HasNotebooksFolder reports whether a notebooks/ directory exists.
func HasNotebooksFolder(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "notebooks"))
	return err == nil && info.IsDir()
}

// DetectPorts scans root-level Python files for mentions of common app
// ports. Unreadable files are skipped.
func DetectPorts(dir string) []int {
	found := map[int]bool{}

	for _, name := range globNames(dir, "*.py") {
		bs, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		content := string(bs)
		for _, pattern := range portPatterns {
			for _, match := range pattern.FindAllStringSubmatch(content, -1) {
				port, err := strconv.Atoi(match[1])
				if err != nil {
					continue
				}
				if commonAppPorts[port] {
					found[port] = true
				}
			}
		}
	}

	ports := make([]int, 0, len(found))
	for port := range found {
		ports = append(ports, port)
	}
	sort.Ints(ports)
	return ports
}

// InstallCommand returns the install command matching the dependency file.
func InstallCommand(dependencyFile string) string {
	switch dependencyFile {
	case "requirements.txt":
		return "pip install -r requirements.txt"
	case "pyproject.toml":
		return "pip install ."
	default:
		return "# No dependency file found - add install commands here"
	}
}

// InferType guesses the project type: notebook when any .ipynb exists at the
// root, webapp when a webapp entry file exists, notebook otherwise.
func InferType(dir string) string {
	if len(globNames(dir, "*.ipynb")) > 0 {
		return TypeNotebook
	}
	for _, name := range webappEntryFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return TypeWebapp
		}
	}
	return TypeNotebook
}

func globNames(dir, pattern string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	sort.Strings(names)
	return names
}
