package ops

import (
	"context"
	"fmt"

	"nxtool.dev/cli/internal/core/artifact"
	"nxtool.dev/cli/internal/core/registry"
	"nxtool.dev/cli/internal/core/render"
	"nxtool.dev/cli/internal/core/resolve"
)

// FlashOptions carries the flash subcommand flags.
type FlashOptions struct {
	Port    string // serial port for esptool targets
	OpenOCD string // OpenOCD executable for openocd targets
}

// Flash detects the target board from the configuration snapshot, locates
// the firmware artifact and runs the target's flash tool. The port is
// resolved (flag, then device discovery) before the command is rendered;
// esptool targets with no resolvable port fail early.
func (o *Orchestrator) Flash(ctx context.Context, projectDir string, opts FlashOptions) error {
	dir, err := o.validateDir(projectDir)
	if err != nil {
		return err
	}

	snap, err := o.loadSnapshot(dir)
	if err != nil {
		return err
	}

	rt, ok := resolve.Resolve(snap, o.tables.Flash)
	if !ok {
		return fmt.Errorf("%w: no flash rule matches %s", resolve.ErrNoTargetMatched, snap.Path())
	}
	o.console.Info("Target: %s", rt.Target)

	firmware, err := artifact.Locate(rt.Rule.Artifact, dir, o.buildDir(dir))
	if err != nil {
		return err
	}
	o.console.Info("Firmware: %s", firmware)

	bindings := map[string]string{"firmware": firmware}
	switch rt.Rule.Tool {
	case registry.ToolEsptool:
		port, err := o.resolvePort(ctx, opts.Port, rt.Target)
		if err != nil {
			return err
		}
		bindings["port"] = port
	case registry.ToolOpenOCD:
		path := opts.OpenOCD
		if path == "" {
			path = rt.Rule.ToolPath
		}
		bindings["openocd"] = path
	default:
		return fmt.Errorf("unknown flash tool %q for target %s", rt.Rule.Tool, rt.Target)
	}

	cmd, err := render.Render(rt.Rule.Command, bindings)
	if err != nil {
		return err
	}
	if err := o.run(ctx, dir, cmd); err != nil {
		return err
	}

	o.console.Success("Flash completed")
	return nil
}

// resolvePort returns the explicit port when given, otherwise asks the
// device discovery collaborator. No port at all is fatal.
func (o *Orchestrator) resolvePort(ctx context.Context, explicit, target string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if o.ports != nil {
		port, err := o.ports.Find(ctx, target)
		if err != nil {
			o.console.Warn("device discovery failed: %v", err)
		} else if port != "" {
			o.console.Info("Detected device at %s", port)
			return port, nil
		}
	}
	return "", fmt.Errorf("serial port required for target %s: pass --port or attach a known device", target)
}
