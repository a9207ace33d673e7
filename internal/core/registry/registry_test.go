package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltin_ParsesAllTables(t *testing.T) {
	tables, err := LoadBuiltin()

	require.NoError(t, err)
	assert.NotZero(t, tables.Flash.Len())
	assert.NotZero(t, tables.Simulate.Len())
	assert.NotZero(t, tables.Terminal.Len())
	assert.NotZero(t, tables.Baud.Len())
	assert.NotZero(t, tables.Clangd.Len())
}

func TestLoadBuiltin_FlashRuleShape(t *testing.T) {
	tables, err := LoadBuiltin()
	require.NoError(t, err)

	var esp32c3 *Rule
	for _, r := range tables.Flash.Rules() {
		if r.Target == "esp32c3" {
			rule := r
			esp32c3 = &rule
		}
	}

	require.NotNil(t, esp32c3, "builtin flash table must know esp32c3")
	assert.Equal(t, []string{"CONFIG_ARCH_CHIP_ESP32C3=y"}, esp32c3.Predicates)
	assert.Equal(t, ToolEsptool, esp32c3.Tool)
	assert.Equal(t, "nuttx.bin", esp32c3.Artifact)
	assert.Contains(t, esp32c3.Command, "{port}")
	assert.Contains(t, esp32c3.Command, "{firmware}")
}

func TestLoadBuiltin_OpenOCDRuleCarriesDefaultToolPath(t *testing.T) {
	tables, err := LoadBuiltin()
	require.NoError(t, err)

	for _, r := range tables.Flash.Rules() {
		if r.Tool == ToolOpenOCD {
			assert.NotEmpty(t, r.ToolPath, "openocd rule %s needs a default tool path", r.Target)
			assert.Contains(t, r.Command, "{openocd}")
		}
	}
}

func TestLoadBuiltin_NoDuplicatePredicateSetsWithinATable(t *testing.T) {
	tables, err := LoadBuiltin()
	require.NoError(t, err)

	for name, reg := range map[string]*Registry{
		"flash":    tables.Flash,
		"simulate": tables.Simulate,
		"terminal": tables.Terminal,
		"baud":     tables.Baud,
	} {
		assert.Empty(t, reg.DuplicatePredicateSets(), "table %s declares duplicate predicate sets", name)
	}
}

func TestDuplicatePredicateSets_FlagsIdenticalSets(t *testing.T) {
	reg := New([]Rule{
		{Target: "a", Predicates: []string{"X=y", "Y=y"}},
		{Target: "b", Predicates: []string{"Y=y", "X=y"}},
		{Target: "c", Predicates: []string{"X=y"}},
	})

	dups := reg.DuplicatePredicateSets()

	require.Len(t, dups, 1, "predicate-set comparison is order-independent")
	assert.Equal(t, [2]string{"a", "b"}, dups[0])
}

func TestRules_ReturnsCopy(t *testing.T) {
	reg := New([]Rule{{Target: "a", Predicates: []string{"X=y"}}})

	rules := reg.Rules()
	rules[0].Target = "mutated"

	assert.Equal(t, "a", reg.Rules()[0].Target, "registry must stay immutable")
}

func TestLoadBuiltin_SimulateCommandsUseKernelPlaceholder(t *testing.T) {
	tables, err := LoadBuiltin()
	require.NoError(t, err)

	for _, r := range tables.Simulate.Rules() {
		assert.True(t, strings.Contains(r.Command, "{kernel}"),
			"simulate rule %s must reference {kernel}", r.Target)
		assert.Equal(t, "nuttx", r.Artifact)
	}
}
