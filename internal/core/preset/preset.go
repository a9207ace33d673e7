// Package preset applies named batches of configuration mutations through
// the external kconfig-tweak tool.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Action is a primitive configuration mutation kind.
type Action string

const (
	ActionEnable  Action = "enable"
	ActionDisable Action = "disable"
	ActionSetVal  Action = "set-val"
)

// Op is one primitive mutation. Value is only meaningful for ActionSetVal.
type Op struct {
	Action Action `yaml:"action"`
	Key    string `yaml:"key"`
	Value  string `yaml:"value,omitempty"`
}

// Enable returns an op that turns a boolean setting on.
func Enable(key string) Op { return Op{Action: ActionEnable, Key: key} }

// Disable returns an op that turns a boolean setting off.
func Disable(key string) Op { return Op{Action: ActionDisable, Key: key} }

// SetVal returns an op that assigns a scalar value to a setting.
func SetVal(key, value string) Op { return Op{Action: ActionSetVal, Key: key, Value: value} }

// Preset is a named, ordered batch of mutations. Order is significant:
// later ops on the same key override earlier ones.
type Preset struct {
	Name string
	Ops  []Op
}

// Builtin returns the presets shipped with the tool.
func Builtin() map[string]Preset {
	return map[string]Preset{
		"rust": {
			Name: "rust",
			Ops: []Op{
				Enable("CONFIG_SYSTEM_TIME64"),
				Enable("CONFIG_FS_LARGEFILE"),
				Enable("CONFIG_DEV_URANDOM"),
				SetVal("CONFIG_TLS_NELEM", "16"),
			},
		},
	}
}

type presetFile struct {
	Presets map[string][]Op `yaml:"presets"`
}

// LoadFile reads user-defined presets from a YAML file. A missing file is
// not an error; it yields an empty map.
func LoadFile(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Preset{}, nil
		}
		return nil, fmt.Errorf("read preset file %s: %w", path, err)
	}
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}
	presets := make(map[string]Preset, len(f.Presets))
	for name, ops := range f.Presets {
		presets[name] = Preset{Name: name, Ops: ops}
	}
	return presets, nil
}
