// Package ops is the per-operation façade: each public method validates the
// project path, resolves the build system and/or hardware target, renders a
// literal command line and hands it to the process-execution collaborator.
// Failures are never swallowed; a nonzero exit always surfaces.
package ops

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nxtool.dev/cli/internal/core/kconfig"
	"nxtool.dev/cli/internal/core/preset"
	"nxtool.dev/cli/internal/core/registry"
	"nxtool.dev/cli/internal/logging"
)

// ErrPathNotFound indicates the project path given on the command line does
// not exist.
var ErrPathNotFound = errors.New("path does not exist")

// Runner executes a rendered shell command line in a directory, blocking
// until the process exits. A nonzero exit status comes back as an error.
type Runner interface {
	Run(ctx context.Context, dir, command string) error
}

// PortFinder locates the serial port for a target board. An empty port with
// a nil error means no device was found; the caller decides whether that is
// fatal.
type PortFinder interface {
	Find(ctx context.Context, target string) (string, error)
}

// Orchestrator wires the resolution, rendering and preset components
// together for every operation. It is built once at process start from
// immutable rule tables and never mutated.
type Orchestrator struct {
	runner  Runner
	ports   PortFinder
	console *logging.Console
	tables  registry.Tables
	presets map[string]preset.Preset
}

// New builds an orchestrator. ports may be nil when serial discovery is
// unavailable; operations then require an explicit --port.
func New(runner Runner, ports PortFinder, console *logging.Console,
	tables registry.Tables, presets map[string]preset.Preset) *Orchestrator {
	return &Orchestrator{
		runner:  runner,
		ports:   ports,
		console: console,
		tables:  tables,
		presets: presets,
	}
}

// validateDir resolves path to an absolute directory that must exist.
func (o *Orchestrator) validateDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("%w: %s", ErrPathNotFound, abs)
	}
	return abs, nil
}

// buildDir returns the sibling build-output directory used by CMake trees.
func (o *Orchestrator) buildDir(projectDir string) string {
	return filepath.Join(filepath.Dir(projectDir), "build")
}

// loadSnapshot loads the project's configuration snapshot, preferring the
// in-tree .config (Make) over the build-directory one (CMake).
func (o *Orchestrator) loadSnapshot(projectDir string) (*kconfig.Snapshot, error) {
	snap, err := kconfig.Load(filepath.Join(projectDir, ".config"))
	if errors.Is(err, kconfig.ErrNotFound) {
		return kconfig.Load(filepath.Join(o.buildDir(projectDir), ".config"))
	}
	return snap, err
}

// run echoes and executes one command line.
func (o *Orchestrator) run(ctx context.Context, dir, cmd string) error {
	o.console.Command(cmd)
	return o.runner.Run(ctx, dir, cmd)
}
