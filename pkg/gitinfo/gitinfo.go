// Package gitinfo extracts repository information needed to point a remote
// deployment at the project's source.
package gitinfo

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/brevlabs/launchpad/pkg/errors"
)

// Info is the git metadata embedded in a launchable config.
type Info struct {
	OriginURL     string
	NormalizedURL string
	DefaultBranch string
	RepoName      string
}

const gitTimeout = 10 * time.Second

var (
	dotGitSuffix = regexp.MustCompile(`\.git$`)
	sshURL       = regexp.MustCompile(`^git@([^:]+):(.+)$`)
	gitProtoURL  = regexp.MustCompile(`^git://([^/]+)/(.+)$`)
)

// IsRepo reports whether dir is inside a git repository.
func IsRepo(dir string) bool {
	_, err := git(dir, "rev-parse", "--git-dir")
	return err == nil
}

// OriginURL returns the origin remote URL, or "" when there is none.
func OriginURL(dir string) string {
	out, err := git(dir, "remote", "get-url", "origin")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// NormalizeURL converts a git remote URL to HTTPS form:
// git@host:user/repo.git and git://host/user/repo become
// https://host/user/repo; a trailing .git is always stripped.
func NormalizeURL(url string) string {
	url = dotGitSuffix.ReplaceAllString(url, "")

	if m := sshURL.FindStringSubmatch(url); m != nil {
		return "https://" + m[1] + "/" + m[2]
	}
	if m := gitProtoURL.FindStringSubmatch(url); m != nil {
		return "https://" + m[1] + "/" + m[2]
	}

	return url
}

// DefaultBranch returns the repository's default branch: the remote HEAD if
// set, otherwise whichever of main/master exists locally, otherwise "main".
func DefaultBranch(dir string) string {
	if out, err := git(dir, "symbolic-ref", "refs/remotes/origin/HEAD"); err == nil {
		// refs/remotes/origin/main -> main
		ref := strings.TrimSpace(out)
		parts := strings.Split(ref, "/")
		return parts[len(parts)-1]
	}

	for _, branch := range []string{"main", "master"} {
		if _, err := git(dir, "rev-parse", "--verify", "refs/heads/"+branch); err == nil {
			return branch
		}
	}

	return "main"
}

// RepoName extracts the repository name from a remote URL.
func RepoName(url string) string {
	url = dotGitSuffix.ReplaceAllString(url, "")
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return "project"
	}
	name := parts[len(parts)-1]
	// SSH URLs without a path separator: git@host:repo
	if i := strings.LastIndex(name, ":"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Get collects complete git information for dir.
func Get(dir string) (*Info, error) {
	if !IsRepo(dir) {
		return nil, errors.NotGitRepo(
			"Not a git repository.\n\n" +
				"Fix: Initialize a git repository:\n" +
				"  git init\n" +
				"  git add .\n" +
				"  git commit -m 'Initial commit'\n" +
				"  git remote add origin <your-repo-url>")
	}

	originURL := OriginURL(dir)
	if originURL == "" {
		return nil, errors.NoOriginRemote(
			"No 'origin' remote found.\n\n" +
				"Fix: Add an origin remote:\n" +
				"  git remote add origin https://github.com/YOUR_USERNAME/YOUR_REPO\n\n" +
				"Make sure the repository is public so the platform can clone it.")
	}

	return &Info{
		OriginURL:     originURL,
		NormalizedURL: NormalizeURL(originURL),
		DefaultBranch: DefaultBranch(dir),
		RepoName:      RepoName(originURL),
	}, nil
}

// Placeholder is used when the user chooses to continue without a usable git
// setup; the URL must be edited by hand before the config works.
func Placeholder(repoName string) *Info {
	return &Info{
		OriginURL:     "https://github.com/YOUR_USERNAME/YOUR_REPO",
		NormalizedURL: "https://github.com/YOUR_USERNAME/YOUR_REPO",
		DefaultBranch: "main",
		RepoName:      repoName,
	}
}

func git(dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
