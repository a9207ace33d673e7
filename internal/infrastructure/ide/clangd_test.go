package ide

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteClangdHints_WritesNextToProjectDir(t *testing.T) {
	root := t.TempDir()
	projectDir := filepath.Join(root, "nuttx")
	require.NoError(t, os.MkdirAll(projectDir, 0o755))

	require.NoError(t, WriteClangdHints(projectDir, "riscv64"))

	content, err := os.ReadFile(filepath.Join(root, ".clangd"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `Add: ["--target=riscv64"]`)
	assert.Contains(t, string(content), `Remove: ["-m*", "-f*"]`)
	assert.Contains(t, string(content), "StandardLibrary: No")
}

func TestWriteClangdHints_OverwritesWithoutMerging(t *testing.T) {
	root := t.TempDir()
	projectDir := filepath.Join(root, "nuttx")
	require.NoError(t, os.MkdirAll(projectDir, 0o755))
	hintPath := filepath.Join(root, ".clangd")
	require.NoError(t, os.WriteFile(hintPath, []byte("stale: content\n"), 0o644))

	require.NoError(t, WriteClangdHints(projectDir, "xtensa"))

	content, err := os.ReadFile(hintPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "stale")
	assert.Contains(t, string(content), "--target=xtensa")
}
