package preset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"nxtool.dev/cli/internal/core/kconfig"
	"nxtool.dev/cli/internal/core/render"
)

// Runner executes a rendered shell command in a directory and propagates
// a nonzero exit status as an error.
type Runner interface {
	Run(ctx context.Context, dir, command string) error
}

const tweakTemplate = "kconfig-tweak {flag} {args}"

// Engine applies presets by shelling out to kconfig-tweak, one call per
// operation, then triggers a single dependency-normalization pass.
type Engine struct {
	runner Runner
	trace  func(cmd string)
}

// NewEngine builds an engine over the given runner. trace, when non-nil,
// receives each external command line before it runs.
func NewEngine(runner Runner, trace func(cmd string)) *Engine {
	return &Engine{runner: runner, trace: trace}
}

// Apply runs every operation of every preset in strict list order inside
// configDir, then runs normalizeCmd exactly once. The snapshot in configDir
// must already exist (kconfig.ErrNotConfigured otherwise).
//
// A failed operation aborts the remaining ones with no rollback: the
// configuration is left partially mutated, mirroring the semantics of the
// underlying tool. Normalization deliberately runs after all edits rather
// than after each one, so non-idempotent normalization cannot reorder
// settings between edits.
func (e *Engine) Apply(ctx context.Context, configDir, normalizeCmd string, presets []Preset) error {
	snapshot := filepath.Join(configDir, ".config")
	if _, err := os.Stat(snapshot); err != nil {
		return fmt.Errorf("%w: presets refine an existing configuration (%s missing)",
			kconfig.ErrNotConfigured, snapshot)
	}

	for _, p := range presets {
		for _, op := range p.Ops {
			cmd, err := renderOp(op)
			if err != nil {
				return fmt.Errorf("preset %s: %w", p.Name, err)
			}
			if e.trace != nil {
				e.trace(cmd)
			}
			if err := e.runner.Run(ctx, configDir, cmd); err != nil {
				return fmt.Errorf("preset %s: %w", p.Name, err)
			}
		}
	}

	if e.trace != nil {
		e.trace(normalizeCmd)
	}
	if err := e.runner.Run(ctx, configDir, normalizeCmd); err != nil {
		return fmt.Errorf("normalize configuration: %w", err)
	}
	return nil
}

func renderOp(op Op) (string, error) {
	var flag, args string
	switch op.Action {
	case ActionEnable:
		flag, args = "--enable", op.Key
	case ActionDisable:
		flag, args = "--disable", op.Key
	case ActionSetVal:
		flag, args = "--set-val", op.Key+" "+op.Value
	default:
		return "", fmt.Errorf("unknown preset action %q on %s", op.Action, op.Key)
	}
	return render.Render(tweakTemplate, map[string]string{"flag": flag, "args": args})
}
