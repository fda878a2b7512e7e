package variants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varia-dev/varia/pkg/errors"
	"github.com/varia-dev/varia/pkg/variants"
)

func issueCodes(issues []variants.Issue) []errors.ErrorCode {
	codes := make([]errors.ErrorCode, len(issues))
	for i, issue := range issues {
		codes[i] = issue.Code
	}
	return codes
}

func TestValidate_CleanDeclaration(t *testing.T) {
	assert.Empty(t, variants.Validate(buttonDecl()))
}

func TestValidate_EmptyDeclaration(t *testing.T) {
	issues := variants.Validate(variants.Declaration{})

	require.Len(t, issues, 1)
	assert.Equal(t, errors.ErrSpecEmpty, issues[0].Code)
	assert.Equal(t, variants.SeverityWarning, issues[0].Severity)
}

func TestValidate_MalformedAxis(t *testing.T) {
	issues := variants.Validate(variants.Declaration{
		"broken": 42,
	})

	require.Len(t, issues, 1)
	assert.Equal(t, errors.ErrAxisInvalid, issues[0].Code)
	assert.Equal(t, variants.SeverityError, issues[0].Severity)
	assert.Equal(t, "broken", issues[0].Key)
}

func TestValidate_NonStringBase(t *testing.T) {
	issues := variants.Validate(variants.Declaration{
		"base": 1,
		"size": map[string]interface{}{"sm": "text-sm"},
	})

	require.Len(t, issues, 1)
	assert.Equal(t, "base", issues[0].Key)
	assert.Equal(t, errors.ErrAxisInvalid, issues[0].Code)
}

func TestValidate_UnresolvedDefaultIsInformational(t *testing.T) {
	issues := variants.Validate(variants.Declaration{
		"size": map[string]interface{}{
			"sm":       "text-sm",
			"_default": "text-base",
		},
	})

	require.Len(t, issues, 1)
	assert.Equal(t, errors.ErrDefaultUnknown, issues[0].Code)
	assert.Equal(t, variants.SeverityInfo, issues[0].Severity)
}

func TestValidate_SentinelOptionName(t *testing.T) {
	issues := variants.Validate(variants.Declaration{
		"size": map[string]interface{}{
			"_custom": "whoops",
		},
	})

	assert.Contains(t, issueCodes(issues), errors.ErrOptionReserved)
}

func TestValidate_Compound(t *testing.T) {
	t.Run("not a list", func(t *testing.T) {
		issues := variants.Validate(variants.Declaration{
			"size":     map[string]interface{}{"sm": "text-sm"},
			"compound": "nope",
		})
		assert.Contains(t, issueCodes(issues), errors.ErrCompoundInvalid)
	})

	t.Run("empty list", func(t *testing.T) {
		issues := variants.Validate(variants.Declaration{
			"size":     map[string]interface{}{"sm": "text-sm"},
			"compound": []interface{}{},
		})
		assert.Contains(t, issueCodes(issues), errors.ErrCompoundInvalid)
	})

	t.Run("rule without classes", func(t *testing.T) {
		issues := variants.Validate(variants.Declaration{
			"size": map[string]interface{}{"sm": "text-sm"},
			"compound": []interface{}{
				map[string]interface{}{"size": "sm"},
			},
		})
		assert.Contains(t, issueCodes(issues), errors.ErrCompoundNoClasses)
	})

	t.Run("rule without conditions", func(t *testing.T) {
		issues := variants.Validate(variants.Declaration{
			"size": map[string]interface{}{"sm": "text-sm"},
			"compound": []interface{}{
				map[string]interface{}{"classes": "always"},
			},
		})
		assert.Contains(t, issueCodes(issues), errors.ErrCompoundInvalid)
	})

	t.Run("condition on undeclared axis", func(t *testing.T) {
		issues := variants.Validate(variants.Declaration{
			"size": map[string]interface{}{"sm": "text-sm"},
			"compound": []interface{}{
				map[string]interface{}{"ghost": "x", "classes": "c"},
			},
		})
		assert.Contains(t, issueCodes(issues), errors.ErrCompoundInvalid)
	})

	t.Run("unmatchable condition value", func(t *testing.T) {
		issues := variants.Validate(variants.Declaration{
			"size": map[string]interface{}{"sm": "text-sm"},
			"compound": []interface{}{
				map[string]interface{}{"size": 5, "classes": "c"},
			},
		})
		var found bool
		for _, issue := range issues {
			if issue.Code == errors.ErrCompoundInvalid && issue.Severity == variants.SeverityError {
				found = true
			}
		}
		assert.True(t, found, "non-string, non-bool condition should be an error")
	})
}

func TestValidateSelection(t *testing.T) {
	spec := variants.Compile(buttonDecl())

	t.Run("clean selection", func(t *testing.T) {
		issues := variants.ValidateSelection(spec, variants.Selection{"size": "lg"})
		assert.Empty(t, issues)
	})

	t.Run("resetStyles false still resets", func(t *testing.T) {
		issues := variants.ValidateSelection(spec, variants.Selection{"resetStyles": false})
		require.Len(t, issues, 1)
		assert.Equal(t, errors.ErrSelectionResetFalse, issues[0].Code)
	})

	t.Run("resetStyles true is clean", func(t *testing.T) {
		issues := variants.ValidateSelection(spec, variants.Selection{"resetStyles": true})
		assert.Empty(t, issues)
	})

	t.Run("unknown axis", func(t *testing.T) {
		issues := variants.ValidateSelection(spec, variants.Selection{"ghost": "x"})
		require.Len(t, issues, 1)
		assert.Equal(t, errors.ErrSelectionUnknownAxis, issues[0].Code)
	})

	t.Run("non-string option selection", func(t *testing.T) {
		issues := variants.ValidateSelection(spec, variants.Selection{"size": 5})
		require.Len(t, issues, 1)
		assert.Equal(t, errors.ErrSelectionBadValue, issues[0].Code)
	})

	t.Run("unregistered option is informational", func(t *testing.T) {
		issues := variants.ValidateSelection(spec, variants.Selection{"variant": "ghost"})
		require.Len(t, issues, 1)
		assert.Equal(t, variants.SeverityInfo, issues[0].Severity)
	})

	t.Run("non-bool on boolean axis", func(t *testing.T) {
		boolSpec := variants.Compile(variants.Declaration{"elevated": "shadow-lg"})
		issues := variants.ValidateSelection(boolSpec, variants.Selection{"elevated": "yes"})
		require.Len(t, issues, 1)
		assert.Equal(t, errors.ErrSelectionBadValue, issues[0].Code)
	})
}
