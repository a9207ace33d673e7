package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"nxtool.dev/cli/internal/core/kconfig"
	"nxtool.dev/cli/internal/core/registry"
)

func loadSnapshot(t *testing.T, content string) *kconfig.Snapshot {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	snap, err := kconfig.Load(path)
	require.NoError(t, err)
	return snap
}

func TestResolve_LastMatchWins(t *testing.T) {
	reg := registry.New([]registry.Rule{
		{Target: "general", Predicates: []string{"X=y"}},
		{Target: "specific", Predicates: []string{"X=y", "Y=y"}},
	})
	snap := loadSnapshot(t, "X=y\nY=y\n")

	rt, ok := Resolve(snap, reg)

	require.True(t, ok)
	assert.Equal(t, "specific", rt.Target, "later, more specific rule must supersede the general one")
}

func TestResolve_DeclarationOrderDecidesOverride(t *testing.T) {
	reg := registry.New([]registry.Rule{
		{Target: "specific", Predicates: []string{"X=y", "Y=y"}},
		{Target: "general", Predicates: []string{"X=y"}},
	})
	snap := loadSnapshot(t, "X=y\nY=y\n")

	rt, ok := Resolve(snap, reg)

	require.True(t, ok)
	assert.Equal(t, "general", rt.Target, "with both matching, the last declared rule wins")
}

func TestResolve_NoMatch_ReturnsFalse(t *testing.T) {
	reg := registry.New([]registry.Rule{
		{Target: "esp32c3", Predicates: []string{"CONFIG_ARCH_CHIP_ESP32C3=y"}},
	})
	snap := loadSnapshot(t, "CONFIG_ARCH_CHIP_ESP32=y\n")

	_, ok := Resolve(snap, reg)

	assert.False(t, ok, "no default guess: an unmatched snapshot yields no target")
}

func TestResolve_SMPVariantOverride(t *testing.T) {
	reg := registry.New([]registry.Rule{
		{Target: "sabre-6quad", Predicates: []string{"CONFIG_ARCH_CHIP_IMX6_6QUAD=y", "CONFIG_SMP is not set"}},
		{Target: "sabre-6quad-smp", Predicates: []string{"CONFIG_ARCH_CHIP_IMX6_6QUAD=y", "CONFIG_SMP=y"}},
	})

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "SMPEnabled",
			content: "CONFIG_ARCH_CHIP_IMX6_6QUAD=y\nCONFIG_SMP=y\n",
			want:    "sabre-6quad-smp",
		},
		{
			name:    "SMPDisabled",
			content: "CONFIG_ARCH_CHIP_IMX6_6QUAD=y\n# CONFIG_SMP is not set\n",
			want:    "sabre-6quad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, ok := Resolve(loadSnapshot(t, tt.content), reg)
			require.True(t, ok)
			assert.Equal(t, tt.want, rt.Target)
		})
	}
}

// TestResolve_PropertyBased_Deterministic resolves random snapshot/registry
// pairs twice and requires identical results.
func TestResolve_PropertyBased_Deterministic(t *testing.T) {
	snapDir := t.TempDir()

	rapid.Check(t, func(rt *rapid.T) {
		predGen := rapid.StringMatching(`CONFIG_[A-D]=y`)
		var rules []registry.Rule
		n := rapid.IntRange(1, 6).Draw(rt, "ruleCount")
		for i := 0; i < n; i++ {
			rules = append(rules, registry.Rule{
				Target:     rapid.StringMatching(`[a-z]{3,8}`).Draw(rt, "target"),
				Predicates: rapid.SliceOfN(predGen, 0, 3).Draw(rt, "predicates"),
			})
		}
		reg := registry.New(rules)

		lines := rapid.SliceOfN(predGen, 0, 4).Draw(rt, "lines")
		content := ""
		for _, l := range lines {
			content += l + "\n"
		}
		path := filepath.Join(snapDir, ".config")
		require.NoError(rt, os.WriteFile(path, []byte(content), 0o644))
		snap, err := kconfig.Load(path)
		require.NoError(rt, err)

		first, okFirst := Resolve(snap, reg)
		second, okSecond := Resolve(snap, reg)

		assert.Equal(rt, okFirst, okSecond)
		assert.Equal(rt, first, second)
	})
}

func TestDetectBuildSystem(t *testing.T) {
	t.Run("ConfigPresent_Make", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".config"), []byte("CONFIG_SMP=y\n"), 0o644))

		assert.Equal(t, BuildSystemMake, DetectBuildSystem(dir))
	})

	t.Run("ConfigAbsent_CMakeDefault", func(t *testing.T) {
		assert.Equal(t, BuildSystemCMake, DetectBuildSystem(t.TempDir()))
	})
}
