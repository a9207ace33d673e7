package cli

import (
	"github.com/spf13/cobra"

	"nxtool.dev/cli/internal/application/ops"
)

func newBuildCommand(app *App) *cobra.Command {
	var opts ops.BuildOptions

	cmd := &cobra.Command{
		Use:   "build <project-path>",
		Short: "Build the project with the detected build system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Ops.Build(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Target, "target", "", "build target (default: all)")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 0, "parallel jobs for make (default: CPU count)")
	return cmd
}

func newConfigureCommand(app *App) *cobra.Command {
	var opts ops.ConfigureOptions

	cmd := &cobra.Command{
		Use:   "configure <board-config> <project-path>",
		Short: "Configure the project for a board",
		Long: `Configure the project for a board, optionally applying presets and
regenerating the .clangd IDE hint file.

Examples:
  nxtool configure esp32c3-generic:nsh ./nuttx
  nxtool configure esp32c3-generic:nsh ./nuttx --preset rust
  nxtool configure qemu-rv-virt:nsh ./nuttx --cmake`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Board = args[0]
			return app.Ops.Configure(cmd.Context(), args[1], opts)
		},
	}
	cmd.Flags().StringArrayVar(&opts.Presets, "preset", nil, "apply a preset (repeatable, applied in order)")
	cmd.Flags().BoolVar(&opts.CMake, "cmake", false, "configure with CMake instead of configure.sh")
	return cmd
}

func newFlashCommand(app *App) *cobra.Command {
	var opts ops.FlashOptions

	cmd := &cobra.Command{
		Use:   "flash <project-path>",
		Short: "Flash firmware to the detected board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Ops.Flash(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Port, "port", "p", "", "serial port (auto-detected when omitted)")
	cmd.Flags().StringVar(&opts.OpenOCD, "openocd", "", "OpenOCD executable for ST targets")
	return cmd
}

func newCleanCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clean <project-path>",
		Short: "Clean build products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Ops.Clean(cmd.Context(), args[0])
		},
	}
}

func newRebuildCommand(app *App) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "rebuild <project-path>",
		Short: "Rebuild under bear to generate compile_commands.json (make only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Ops.Rebuild(cmd.Context(), args[0], jobs)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "parallel jobs for make (default: CPU count)")
	return cmd
}

func newSimulateCommand(app *App) *cobra.Command {
	var opts ops.SimulateOptions

	cmd := &cobra.Command{
		Use:   "simulate <project-path>",
		Short: "Run the built kernel in QEMU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Ops.Simulate(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.ExtraArgs, "qemu-options", "", "extra QEMU flags, e.g. '-S -s' for debug")
	return cmd
}

func newTermCommand(app *App) *cobra.Command {
	var opts ops.TermOptions

	cmd := &cobra.Command{
		Use:   "term <project-path>",
		Short: "Open a serial terminal to the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Ops.Term(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Port, "port", "p", "", "serial port (auto-detected when omitted)")
	cmd.Flags().StringVar(&opts.Terminal, "terminal", "", "terminal tool invocation (default: miniterm)")
	return cmd
}
