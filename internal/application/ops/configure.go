package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"nxtool.dev/cli/internal/core/kconfig"
	"nxtool.dev/cli/internal/core/preset"
	"nxtool.dev/cli/internal/core/resolve"
	"nxtool.dev/cli/internal/infrastructure/ide"
)

// ConfigureOptions carries the configure subcommand flags.
type ConfigureOptions struct {
	Board   string   // board configuration string, e.g. "esp32c3-devkit:nsh"
	Presets []string // presets applied after configuration, in order
	CMake   bool     // use CMake instead of configure.sh
}

// defaultTriple is used for the IDE hint file when no architecture rule
// matches the snapshot.
const defaultTriple = "thumbv7m"

// Configure sets up the project for a board, applies requested presets
// (mutate-all, then normalize exactly once) and rewrites the IDE hint file.
func (o *Orchestrator) Configure(ctx context.Context, projectDir string, opts ConfigureOptions) error {
	dir, err := o.validateDir(projectDir)
	if err != nil {
		return err
	}
	if opts.Board == "" {
		return fmt.Errorf("board configuration is required")
	}

	o.console.Step("Configuring %s for %s", filepath.Base(dir), opts.Board)

	var configDir, normalizeCmd string
	if opts.CMake {
		configDir, err = o.configureCMake(ctx, dir, opts.Board)
		normalizeCmd = "ninja olddefconfig"
	} else {
		err = o.configureMake(ctx, dir, opts.Board)
		configDir, normalizeCmd = dir, "make olddefconfig"
	}
	if err != nil {
		return err
	}

	if len(opts.Presets) > 0 {
		presets, err := o.resolvePresets(dir, opts.Presets)
		if err != nil {
			return err
		}
		o.console.Step("Applying presets")
		engine := preset.NewEngine(o.runner, o.console.Command)
		if err := engine.Apply(ctx, configDir, normalizeCmd, presets); err != nil {
			return err
		}
	}

	if err := o.writeIDEHints(dir, configDir); err != nil {
		return err
	}

	o.console.Success("Configuration completed")
	return nil
}

func (o *Orchestrator) configureMake(ctx context.Context, dir, board string) error {
	if _, err := os.Stat(filepath.Join(dir, ".config")); err == nil {
		o.console.Info("Already configured, running distclean")
		if err := o.run(ctx, dir, "make distclean"); err != nil {
			return err
		}
	}
	return o.run(ctx, dir, "./tools/configure.sh "+board)
}

// configureCMake recreates the sibling build directory and configures it
// with the Ninja generator. Returns the build directory, which holds the
// snapshot for CMake trees.
func (o *Orchestrator) configureCMake(ctx context.Context, dir, board string) (string, error) {
	parent := filepath.Dir(dir)
	buildDir := o.buildDir(dir)

	if _, err := os.Stat(buildDir); err == nil {
		o.console.Info("Build directory exists, removing it")
		if err := os.RemoveAll(buildDir); err != nil {
			return "", fmt.Errorf("remove build directory %s: %w", buildDir, err)
		}
	}
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return "", fmt.Errorf("create build directory %s: %w", buildDir, err)
	}

	cmd := fmt.Sprintf("cmake -Bbuild -DBOARD_CONFIG=%s -GNinja %s", board, filepath.Base(dir))
	if err := o.run(ctx, parent, cmd); err != nil {
		return "", err
	}
	return buildDir, nil
}

// resolvePresets maps requested names to presets. A project-local
// nxtool.yaml may define or override presets; unknown names are skipped
// with a warning rather than failing the whole configuration.
func (o *Orchestrator) resolvePresets(projectDir string, names []string) ([]preset.Preset, error) {
	user, err := preset.LoadFile(filepath.Join(projectDir, "nxtool.yaml"))
	if err != nil {
		return nil, err
	}

	var out []preset.Preset
	for _, name := range names {
		if p, ok := user[name]; ok {
			out = append(out, p)
			continue
		}
		if p, ok := o.presets[name]; ok {
			out = append(out, p)
			continue
		}
		o.console.Warn("unknown preset %q, skipping", name)
	}
	return out, nil
}

// writeIDEHints resolves the target triple from the fresh snapshot and
// overwrites the .clangd file next to the project directory.
func (o *Orchestrator) writeIDEHints(projectDir, configDir string) error {
	o.console.Info("Generating .clangd configuration")

	triple := defaultTriple
	snap, err := kconfig.Load(filepath.Join(configDir, ".config"))
	if err != nil {
		o.console.Warn("cannot resolve target triple: %v", err)
	} else if rt, ok := resolve.Resolve(snap, o.tables.Clangd); ok {
		triple = rt.Target
	}

	return ide.WriteClangdHints(projectDir, triple)
}
