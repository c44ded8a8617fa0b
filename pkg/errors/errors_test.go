package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	require.Equal(t, CodeNotGitRepo, Code(NotGitRepo("no repo")))
	require.Equal(t, CodeBadCatalog, Code(BadCatalog("bad")))
	require.Equal(t, "", Code(fmt.Errorf("plain error")))
}

func TestIsValidationError(t *testing.T) {
	require.True(t, IsValidationError(NotGitRepo("no repo")))
	require.True(t, IsValidationError(NoOriginRemote("no origin")))
	require.True(t, IsValidationError(InvalidInput("bad value")))
	require.True(t, IsValidationError(ChecksFailed("2 checks failed")))

	require.False(t, IsValidationError(BadCatalog("bad data")))
	require.False(t, IsValidationError(fmt.Errorf("plain error")))
	require.False(t, IsValidationError(nil))
}

func TestMessagePassedThrough(t *testing.T) {
	err := InvalidInput("required VRAM must be a non-negative finite number")
	require.Equal(t, "required VRAM must be a non-negative finite number", err.Error())
}
