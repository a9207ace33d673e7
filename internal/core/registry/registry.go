// Package registry holds the declarative rule tables that bind board
// configuration predicates to targets, command templates and tool metadata.
// Tables are built once at process start from embedded data and never
// mutated afterwards.
package registry

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Registry is an ordered sequence of rules. Order matters under the
// last-match-wins resolution policy: general rules go first, more specific
// overrides after.
type Registry struct {
	rules []Rule
}

// New builds a registry from rules in declaration order.
func New(rules []Rule) *Registry {
	return &Registry{rules: append([]Rule(nil), rules...)}
}

// Rules returns the rules in declaration order. The returned slice is a
// copy; the registry itself is immutable.
func (r *Registry) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

// Len returns the number of rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// DuplicatePredicateSets returns the target pairs that declare an identical
// predicate set. Overlapping rules are a legitimate pattern ("more specific
// overrides general"), so this is a diagnostic for tests rather than a
// construction failure.
func (r *Registry) DuplicatePredicateSets() [][2]string {
	seen := make(map[string]string, len(r.rules))
	var dups [][2]string
	for _, rule := range r.rules {
		preds := append([]string(nil), rule.Predicates...)
		sort.Strings(preds)
		key := strings.Join(preds, "\x00")
		if prev, ok := seen[key]; ok {
			dups = append(dups, [2]string{prev, rule.Target})
			continue
		}
		seen[key] = rule.Target
	}
	return dups
}

// Tables groups the builtin rule registries by concern.
type Tables struct {
	Flash    *Registry
	Simulate *Registry
	Terminal *Registry
	Baud     *Registry
	Clangd   *Registry
}

type builtinFile struct {
	Flash    []Rule `yaml:"flash"`
	Simulate []Rule `yaml:"simulate"`
	Terminal []Rule `yaml:"terminal"`
	Baud     []Rule `yaml:"baud"`
	Clangd   []Rule `yaml:"clangd"`
}

// LoadBuiltin parses the embedded rule tables.
func LoadBuiltin() (Tables, error) {
	var f builtinFile
	if err := yaml.Unmarshal(builtinYAML, &f); err != nil {
		return Tables{}, fmt.Errorf("parse builtin rule tables: %w", err)
	}
	return Tables{
		Flash:    New(f.Flash),
		Simulate: New(f.Simulate),
		Terminal: New(f.Terminal),
		Baud:     New(f.Baud),
		Clangd:   New(f.Clangd),
	}, nil
}
