package ops

import (
	"context"
	"fmt"
	"os"

	"nxtool.dev/cli/internal/core/kconfig"
	"nxtool.dev/cli/internal/core/resolve"
)

// Clean removes build products with the auto-detected build system.
func (o *Orchestrator) Clean(ctx context.Context, projectDir string) error {
	dir, err := o.validateDir(projectDir)
	if err != nil {
		return err
	}

	bs := resolve.DetectBuildSystem(dir)
	o.console.Step("Cleaning with %s", bs)

	switch bs {
	case resolve.BuildSystemMake:
		if err := o.run(ctx, dir, "make clean"); err != nil {
			return err
		}
	case resolve.BuildSystemCMake:
		buildDir := o.buildDir(dir)
		if _, statErr := os.Stat(buildDir); statErr != nil {
			return fmt.Errorf("%w: build directory %s missing, nothing to clean",
				kconfig.ErrNotConfigured, buildDir)
		}
		if err := o.run(ctx, buildDir, "ninja clean"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown build system %q", bs)
	}

	o.console.Success("Clean completed")
	return nil
}
