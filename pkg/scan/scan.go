package scan

import (
	"github.com/brevlabs/launchpad/pkg/gitinfo"
)

// Project is the complete result of scanning a project directory.
type Project struct {
	Dir                string
	Git                *gitinfo.Info
	DependencyFile     string
	EntryFile          string
	HasEnvExample      bool
	HasNotebooksFolder bool
	DetectedPorts      []int
	Type               string
	InstallCommand     string
}

// Scan collects all project metadata. It fails only when git information is
// required and missing; use ScanWithoutGit to proceed with placeholder info.
func Scan(dir string) (*Project, error) {
	git, err := gitinfo.Get(dir)
	if err != nil {
		return nil, err
	}
	project := ScanWithoutGit(dir)
	project.Git = git
	return project, nil
}

// ScanWithoutGit collects everything that doesn't need a git remote.
func ScanWithoutGit(dir string) *Project {
	dependencyFile := DetectDependencyFile(dir)
	projectType := InferType(dir)

	return &Project{
		Dir:                dir,
		DependencyFile:     dependencyFile,
		EntryFile:          DetectEntryFile(dir, projectType),
		HasEnvExample:      HasEnvExample(dir),
		HasNotebooksFolder: HasNotebooksFolder(dir),
		DetectedPorts:      DetectPorts(dir),
		Type:               projectType,
		InstallCommand:     InstallCommand(dependencyFile),
	}
}
