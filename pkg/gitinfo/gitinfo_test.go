package gitinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	for input, want := range map[string]string{
		"https://github.com/user/repo":        "https://github.com/user/repo",
		"https://github.com/user/repo.git":    "https://github.com/user/repo",
		"git@github.com:user/repo.git":        "https://github.com/user/repo",
		"git@gitlab.com:group/sub/repo.git":   "https://gitlab.com/group/sub/repo",
		"git://github.com/user/repo.git":      "https://github.com/user/repo",
		"https://bitbucket.org/user/repo.git": "https://bitbucket.org/user/repo",
	} {
		require.Equal(t, want, NormalizeURL(input), "input: %s", input)
	}
}

func TestRepoName(t *testing.T) {
	for input, want := range map[string]string{
		"https://github.com/user/my-project":     "my-project",
		"https://github.com/user/my-project.git": "my-project",
		"git@github.com:user/my-project.git":     "my-project",
		"git@github.com:repo":                    "repo",
		"https://github.com/user/repo/":          "repo",
	} {
		require.Equal(t, want, RepoName(input), "input: %s", input)
	}
}

func TestPlaceholder(t *testing.T) {
	info := Placeholder("my-project")
	require.Equal(t, "my-project", info.RepoName)
	require.Equal(t, "main", info.DefaultBranch)
	require.Contains(t, info.NormalizedURL, "YOUR_USERNAME")
}

func TestIsRepoFalseOutsideRepo(t *testing.T) {
	require.False(t, IsRepo(t.TempDir()))
}
