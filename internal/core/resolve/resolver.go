// Package resolve matches a configuration snapshot against a rule registry
// and detects which build system drives a project tree.
package resolve

import (
	"errors"
	"os"
	"path/filepath"

	"nxtool.dev/cli/internal/core/kconfig"
	"nxtool.dev/cli/internal/core/registry"
)

// ErrNoTargetMatched indicates no rule in the registry matched the snapshot.
var ErrNoTargetMatched = errors.New("no target matched the configuration snapshot")

// ResolvedTarget is the outcome of a successful match: the target identity
// plus its owning rule.
type ResolvedTarget struct {
	Target string
	Rule   registry.Rule
}

// Resolve scans the registry in declaration order and returns the last rule
// whose predicates all match the snapshot. Scanning continues past a match
// so that a later, more specific rule (e.g. the SMP variant of a board)
// supersedes an earlier general one. Resolution is deterministic: the same
// snapshot and registry always yield the same result.
func Resolve(snap *kconfig.Snapshot, reg *registry.Registry) (ResolvedTarget, bool) {
	var resolved ResolvedTarget
	found := false
	for _, rule := range reg.Rules() {
		if snap.MatchesAll(rule.Predicates) {
			resolved = ResolvedTarget{Target: rule.Target, Rule: rule}
			found = true
		}
	}
	return resolved, found
}

// BuildSystem identifies the build backend driving a project tree.
type BuildSystem string

const (
	BuildSystemMake  BuildSystem = "make"
	BuildSystemCMake BuildSystem = "cmake"
)

// DetectBuildSystem reports which build system a project tree uses. A
// .config file inside the project directory marks a Make tree; its absence
// means a CMake tree with a sibling build directory. Absence of the marker
// is itself the signal for the alternate kind, never an error.
func DetectBuildSystem(projectDir string) BuildSystem {
	if _, err := os.Stat(filepath.Join(projectDir, ".config")); err == nil {
		return BuildSystemMake
	}
	return BuildSystemCMake
}
