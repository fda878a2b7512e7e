package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varia-dev/varia/pkg/variants"
)

func TestCompile_TagsAxisShapes(t *testing.T) {
	spec := variants.Compile(variants.Declaration{
		"base":     "btn",
		"reset":    "p-0",
		"elevated": "shadow-lg",
		"size": map[string]interface{}{
			"sm":       "text-sm",
			"_default": "sm",
		},
		"broken": 42,
	})

	assert.Equal(t, "btn", spec.Base)
	assert.Equal(t, "p-0", spec.Reset)

	elevated, ok := spec.Axis("elevated")
	require.True(t, ok)
	assert.Equal(t, variants.AxisBoolean, elevated.Kind)
	assert.Equal(t, "shadow-lg", elevated.Fragment)

	size, ok := spec.Axis("size")
	require.True(t, ok)
	assert.Equal(t, variants.AxisOption, size.Kind)
	assert.Equal(t, "text-sm", size.Options["sm"])
	assert.True(t, size.HasDefault)
	assert.Equal(t, "sm", size.Default)

	broken, ok := spec.Axis("broken")
	require.True(t, ok)
	assert.Equal(t, variants.AxisInvalid, broken.Kind)
}

func TestCompile_AxesSortedByName(t *testing.T) {
	spec := variants.Compile(variants.Declaration{
		"zeta":  "z",
		"alpha": "a",
		"mid":   "m",
	})

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, spec.AxisNames())
}

func TestCompile_DropsNonStringFragments(t *testing.T) {
	spec := variants.Compile(variants.Declaration{
		"size": map[string]interface{}{
			"sm": "text-sm",
			"lg": 12,
			"md": "",
		},
	})

	size, ok := spec.Axis("size")
	require.True(t, ok)
	// lg and md carry no fragment and fall through to passthrough
	assert.Equal(t, map[string]string{"sm": "text-sm"}, size.Options)
}

func TestCompile_NonStringDefaultIgnored(t *testing.T) {
	spec := variants.Compile(variants.Declaration{
		"size": map[string]interface{}{
			"sm":       "text-sm",
			"_default": 7,
		},
	})

	size, _ := spec.Axis("size")
	assert.False(t, size.HasDefault)
}

func TestCompile_StringMapAxis(t *testing.T) {
	spec := variants.Compile(variants.Declaration{
		"size": map[string]string{"sm": "text-sm"},
	})

	size, ok := spec.Axis("size")
	require.True(t, ok)
	assert.Equal(t, variants.AxisOption, size.Kind)
	assert.Equal(t, "text-sm", size.Options["sm"])
}

func TestCompile_CompoundShapes(t *testing.T) {
	t.Run("slice of interfaces", func(t *testing.T) {
		spec := variants.Compile(variants.Declaration{
			"compound": []interface{}{
				map[string]interface{}{"size": "lg", "classes": "shadow"},
			},
		})
		require.Len(t, spec.Compound, 1)
		assert.Equal(t, "shadow", spec.Compound[0].Classes)
		require.Len(t, spec.Compound[0].Conditions, 1)
		assert.Equal(t, "size", spec.Compound[0].Conditions[0].Axis)
		assert.Equal(t, variants.OptionValue("lg"), spec.Compound[0].Conditions[0].Want)
	})

	t.Run("slice of maps from config parsers", func(t *testing.T) {
		spec := variants.Compile(variants.Declaration{
			"compound": []map[string]interface{}{
				{"elevated": true, "classes": "ring-2"},
			},
		})
		require.Len(t, spec.Compound, 1)
		assert.Equal(t, variants.BoolValue(true), spec.Compound[0].Conditions[0].Want)
	})

	t.Run("non-list compound ignored", func(t *testing.T) {
		spec := variants.Compile(variants.Declaration{
			"compound": "not a list",
		})
		assert.Empty(t, spec.Compound)
	})

	t.Run("non-map entries skipped", func(t *testing.T) {
		spec := variants.Compile(variants.Declaration{
			"compound": []interface{}{
				"junk",
				map[string]interface{}{"classes": "kept"},
			},
		})
		require.Len(t, spec.Compound, 1)
		assert.Equal(t, "kept", spec.Compound[0].Classes)
	})

	t.Run("sentinel condition values", func(t *testing.T) {
		spec := variants.Compile(variants.Declaration{
			"compound": []interface{}{
				map[string]interface{}{"size": "_custom", "classes": "fallback"},
			},
		})
		assert.Equal(t, variants.CustomValue(), spec.Compound[0].Conditions[0].Want)
	})
}

func TestValue_Equality(t *testing.T) {
	assert.True(t, variants.OptionValue("lg").Equal(variants.OptionValue("lg")))
	assert.False(t, variants.OptionValue("lg").Equal(variants.OptionValue("sm")))
	assert.False(t, variants.OptionValue("true").Equal(variants.BoolValue(true)))
	assert.True(t, variants.BoolValue(false).Equal(variants.BoolValue(false)))
	assert.True(t, variants.Unset().Equal(variants.Unset()))
	assert.False(t, variants.ResetValue().Equal(variants.CustomValue()))

	// An option literally named "_custom" is not the sentinel
	assert.False(t, variants.OptionValue("_custom").Equal(variants.CustomValue()))
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "lg", variants.OptionValue("lg").String())
	assert.Equal(t, "true", variants.BoolValue(true).String())
	assert.Equal(t, "false", variants.BoolValue(false).String())
	assert.Equal(t, "_reset", variants.ResetValue().String())
	assert.Equal(t, "_custom", variants.CustomValue().String())
	assert.Equal(t, "", variants.Unset().String())
}
