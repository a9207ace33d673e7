package registry

// Tool identifies the external tool family a flash rule drives.
type Tool string

const (
	ToolEsptool Tool = "esptool"
	ToolOpenOCD Tool = "openocd"
)

// Rule binds a set of required configuration predicates to a target identity
// and the metadata needed to act on it. All predicates must match
// (conjunctive); an empty list matches any snapshot.
//
// Optional fields and their defaults:
//   - Artifact: build output filename to locate; empty when the rule does not
//     produce or consume an artifact (terminal and clangd rules).
//   - Tool: flash tool family; empty outside the flash table.
//   - ToolPath: default executable path when the user supplies none.
//   - Baud: serial console baud rate; 0 means "not specified here".
//   - ValueFrom: a snapshot key whose explicit value, when present and a
//     positive integer, overrides Baud.
type Rule struct {
	Target     string   `yaml:"target"`
	Predicates []string `yaml:"required"`
	Command    string   `yaml:"command,omitempty"`
	Artifact   string   `yaml:"artifact,omitempty"`
	Tool       Tool     `yaml:"tool,omitempty"`
	ToolPath   string   `yaml:"tool_path,omitempty"`
	Baud       int      `yaml:"baud,omitempty"`
	ValueFrom  string   `yaml:"value_from,omitempty"`
}
