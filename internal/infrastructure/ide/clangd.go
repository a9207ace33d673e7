// Package ide writes editor-integration hint files as a configure side
// effect.
package ide

import (
	"fmt"
	"os"
	"path/filepath"
)

const clangdTemplate = `Index:
    StandardLibrary: No

InlayHints:
    Enabled: No

CompileFlags:
    Add: ["--target=%s"]
    Remove: ["-m*", "-f*"]
`

// WriteClangdHints writes a .clangd file next to the project directory with
// the resolved target triple and host-flag exclusions. The file is fully
// overwritten on every configure; there is no merge.
func WriteClangdHints(projectDir, triple string) error {
	path := filepath.Join(filepath.Dir(projectDir), ".clangd")
	content := fmt.Sprintf(clangdTemplate, triple)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write clangd hints %s: %w", path, err)
	}
	return nil
}
