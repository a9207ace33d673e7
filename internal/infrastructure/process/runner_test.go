package process

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRunner_SuccessfulCommand(t *testing.T) {
	runner := NewShellRunner()

	err := runner.Run(context.Background(), t.TempDir(), "true")

	assert.NoError(t, err)
}

func TestShellRunner_NonzeroExit_SurfacesExitCode(t *testing.T) {
	runner := NewShellRunner()

	err := runner.Run(context.Background(), t.TempDir(), "exit 3")

	require.Error(t, err)
	var toolErr *ExternalToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 3, toolErr.ExitCode)
	assert.Equal(t, "exit 3", toolErr.Command)
}

func TestShellRunner_RunsInGivenDirectory(t *testing.T) {
	dir := t.TempDir()
	runner := NewShellRunner()

	err := runner.Run(context.Background(), dir, "test \"$(pwd)\" = \""+dir+"\"")

	assert.NoError(t, err)
}
