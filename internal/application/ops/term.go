package ops

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"nxtool.dev/cli/internal/core/kconfig"
	"nxtool.dev/cli/internal/core/render"
	"nxtool.dev/cli/internal/core/resolve"
)

// TermOptions carries the term subcommand flags.
type TermOptions struct {
	Port     string // explicit serial port; discovered when empty
	Terminal string // terminal tool invocation; defaults to miniterm
}

const (
	defaultTerminal = "python3 -m serial.tools.miniterm"
	termTemplate    = "{terminal} --raw --eol CR {port} {baud}"
	defaultBaud     = 115200
)

// Term opens a serial terminal to the configured board. The target is used
// to auto-detect the port and pick the right baud rate; without a snapshot
// an explicit --port is required and the default baud applies. The terminal
// emulator itself is an external tool.
func (o *Orchestrator) Term(ctx context.Context, projectDir string, opts TermOptions) error {
	dir, err := o.validateDir(projectDir)
	if err != nil {
		return err
	}

	var target string
	snap, err := o.loadSnapshot(dir)
	if err != nil {
		o.console.Warn("cannot detect target: %v", err)
		snap = nil
	} else if rt, ok := resolve.Resolve(snap, o.tables.Terminal); ok {
		target = rt.Target
		o.console.Info("Target: %s", target)
	}

	port := opts.Port
	if port == "" && target != "" && o.ports != nil {
		found, err := o.ports.Find(ctx, target)
		if err != nil {
			o.console.Warn("device discovery failed: %v", err)
		} else if found != "" {
			o.console.Info("Detected device at %s", found)
			port = found
		}
	}
	if port == "" {
		return fmt.Errorf("could not determine serial port: pass --port")
	}

	terminal := opts.Terminal
	if terminal == "" {
		terminal = defaultTerminal
	}

	cmd, err := render.Render(termTemplate, map[string]string{
		"terminal": terminal,
		"port":     port,
		"baud":     strconv.Itoa(o.resolveBaud(snap)),
	})
	if err != nil {
		return err
	}
	return o.run(ctx, dir, cmd)
}

// resolveBaud picks the console baud rate for the snapshot: an explicit
// Kconfig value named by the matching rule wins, then the rule's own rate,
// then the 115200 fallback.
func (o *Orchestrator) resolveBaud(snap *kconfig.Snapshot) int {
	if snap == nil {
		return defaultBaud
	}
	rt, ok := resolve.Resolve(snap, o.tables.Baud)
	if !ok {
		return defaultBaud
	}
	if rt.Rule.ValueFrom != "" {
		if raw, ok := snap.Value(rt.Rule.ValueFrom); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
				return n
			}
		}
	}
	if rt.Rule.Baud > 0 {
		return rt.Rule.Baud
	}
	return defaultBaud
}
