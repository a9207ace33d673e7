package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"nxtool.dev/cli/internal/core/kconfig"
	"nxtool.dev/cli/internal/core/resolve"
)

// BuildOptions carries the build subcommand flags.
type BuildOptions struct {
	Target string // build target, default "all"
	Jobs   int    // parallel jobs, 0 means CPU count
}

// Build compiles the project with the auto-detected build system. Make
// trees build in place; CMake trees build through ninja in the sibling
// build directory. Parallelism is delegated to the build tool via -j.
func (o *Orchestrator) Build(ctx context.Context, projectDir string, opts BuildOptions) error {
	dir, err := o.validateDir(projectDir)
	if err != nil {
		return err
	}

	target := opts.Target
	if target == "" {
		target = "all"
	}

	bs := resolve.DetectBuildSystem(dir)
	o.console.Step("Building %s with %s", target, bs)

	switch bs {
	case resolve.BuildSystemMake:
		jobs := opts.Jobs
		if jobs <= 0 {
			jobs = runtime.NumCPU()
			o.console.Info("Using %d parallel jobs (CPU count)", jobs)
		}
		if err := o.run(ctx, dir, fmt.Sprintf("make %s -j%d", target, jobs)); err != nil {
			return err
		}
	case resolve.BuildSystemCMake:
		buildDir := o.buildDir(dir)
		if _, statErr := os.Stat(buildDir); statErr != nil {
			return fmt.Errorf("%w: build directory %s missing, run configure first",
				kconfig.ErrNotConfigured, buildDir)
		}
		if err := o.run(ctx, buildDir, "ninja "+target); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown build system %q", bs)
	}

	o.console.Success("Build completed")
	return nil
}

// Rebuild runs a full Make build under bear so compile_commands.json lands
// in the invocation directory. CMake trees are rejected: they emit the
// compilation database during configuration.
func (o *Orchestrator) Rebuild(ctx context.Context, projectDir string, jobs int) error {
	dir, err := o.validateDir(projectDir)
	if err != nil {
		return err
	}

	if bs := resolve.DetectBuildSystem(dir); bs != resolve.BuildSystemMake {
		return fmt.Errorf("rebuild supports only make-based trees; cmake trees generate compile_commands.json during configuration")
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
		o.console.Info("Using %d parallel jobs (CPU count)", jobs)
	}

	launchDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine launch directory: %w", err)
	}

	o.console.Step("Rebuilding with bear")
	out := filepath.Join(launchDir, "compile_commands.json")
	cmd := fmt.Sprintf("bear --output %s -- make -C %s -j%d", out, dir, jobs)
	if err := o.run(ctx, launchDir, cmd); err != nil {
		return err
	}

	o.console.Success("Rebuild completed, compile_commands.json generated")
	return nil
}
