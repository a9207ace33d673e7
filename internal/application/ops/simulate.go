package ops

import (
	"context"
	"fmt"

	"nxtool.dev/cli/internal/core/artifact"
	"nxtool.dev/cli/internal/core/render"
	"nxtool.dev/cli/internal/core/resolve"
)

// SimulateOptions carries the simulate subcommand flags.
type SimulateOptions struct {
	ExtraArgs string // passed to the emulator verbatim, e.g. "-S -s"
}

// Simulate boots the built kernel in the emulator matching the configured
// target. Extra emulator flags are appended verbatim after the rendered
// command.
func (o *Orchestrator) Simulate(ctx context.Context, projectDir string, opts SimulateOptions) error {
	dir, err := o.validateDir(projectDir)
	if err != nil {
		return err
	}

	snap, err := o.loadSnapshot(dir)
	if err != nil {
		return err
	}

	rt, ok := resolve.Resolve(snap, o.tables.Simulate)
	if !ok {
		return fmt.Errorf("%w: no emulator rule matches %s", resolve.ErrNoTargetMatched, snap.Path())
	}
	o.console.Info("Target: %s", rt.Target)

	kernel, err := artifact.Locate(rt.Rule.Artifact, dir, o.buildDir(dir))
	if err != nil {
		return err
	}

	cmd, err := render.Render(rt.Rule.Command, map[string]string{"kernel": kernel})
	if err != nil {
		return err
	}
	if opts.ExtraArgs != "" {
		cmd += " " + opts.ExtraArgs
	}

	return o.run(ctx, dir, cmd)
}
