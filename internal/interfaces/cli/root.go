// Package cli defines the cobra command surface. Each subcommand parses its
// flags and delegates to the ops orchestrator; all real behavior lives
// there.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"nxtool.dev/cli/internal/application/ops"
	"nxtool.dev/cli/internal/core/preset"
	"nxtool.dev/cli/internal/core/registry"
	"nxtool.dev/cli/internal/infrastructure/process"
	"nxtool.dev/cli/internal/logging"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// App holds the dependencies shared by all subcommands.
type App struct {
	Console *logging.Console
	Ops     *ops.Orchestrator
}

// NewApp wires the production dependencies: shell runner, serial device
// discovery, builtin rule tables and presets.
func NewApp() (*App, error) {
	console := logging.NewConsole()

	tables, err := registry.LoadBuiltin()
	if err != nil {
		return nil, err
	}

	orchestrator := ops.New(
		process.NewShellRunner(),
		&devicePortFinder{console: console},
		console,
		tables,
		preset.Builtin(),
	)
	return &App{Console: console, Ops: orchestrator}, nil
}

// NewRootCommand builds the root command with every operation attached.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nxtool",
		Short: "Unified CLI for NuttX board development tasks",
		Long: `nxtool is one command surface for heterogeneous boards and build
backends: it detects the configured target and build system from the
project's configuration snapshot and drives the right external tool
(make/ninja, esptool/openocd, qemu, serial terminal) with the right
parameters.`,
		Version: fmt.Sprintf("%s (built: %s)", Version, BuildTime),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newBuildCommand(app))
	rootCmd.AddCommand(newConfigureCommand(app))
	rootCmd.AddCommand(newFlashCommand(app))
	rootCmd.AddCommand(newCleanCommand(app))
	rootCmd.AddCommand(newRebuildCommand(app))
	rootCmd.AddCommand(newSimulateCommand(app))
	rootCmd.AddCommand(newTermCommand(app))

	return rootCmd
}

// Execute runs the CLI and returns the process exit code. Failures surface
// as a single-line diagnostic, never a stack trace.
func Execute(ctx context.Context, app *App) int {
	if err := NewRootCommand(app).ExecuteContext(ctx); err != nil {
		app.Console.Fail("%v", err)
		return 1
	}
	return 0
}
