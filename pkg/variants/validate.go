package variants

import (
	"fmt"
	"sort"

	"github.com/varia-dev/varia/pkg/errors"
)

// Severity grades a validation finding
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the lowercase severity name
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Issue is one validation finding. Key names the declaration or selection
// key the finding concerns; it is empty for findings about the whole input.
type Issue struct {
	Severity Severity
	Code     errors.ErrorCode
	Key      string
	Message  string
}

func (i Issue) String() string {
	if i.Key == "" {
		return fmt.Sprintf("%s [%s]: %s", i.Severity, i.Code, i.Message)
	}
	return fmt.Sprintf("%s [%s] %s: %s", i.Severity, i.Code, i.Key, i.Message)
}

// Validate is the optional fail-fast companion to the permissive resolver:
// it reports everything Resolve would silently degrade. An empty slice means
// the declaration is clean. Findings are ordered by key for stable output.
func Validate(decl Declaration) []Issue {
	var issues []Issue

	if len(decl) == 0 {
		return []Issue{{
			Severity: SeverityWarning,
			Code:     errors.ErrSpecEmpty,
			Message:  "declaration has no axes and no base fragment",
		}}
	}

	keys := make([]string, 0, len(decl))
	for key := range decl {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch key {
		case BaseKey, ResetKey:
			if _, ok := decl[key].(string); !ok {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     errors.ErrAxisInvalid,
					Key:      key,
					Message:  fmt.Sprintf("reserved key %q must hold a string fragment", key),
				})
			}
		case CompoundKey:
			issues = append(issues, validateCompound(decl, decl[key])...)
		default:
			issues = append(issues, validateAxis(key, decl[key])...)
		}
	}
	return issues
}

func validateAxis(name string, def interface{}) []Issue {
	var issues []Issue

	switch d := def.(type) {
	case string:
		// Boolean axis, nothing to check
	case map[string]interface{}:
		optionNames := make([]string, 0, len(d))
		for option := range d {
			optionNames = append(optionNames, option)
		}
		sort.Strings(optionNames)

		for _, option := range optionNames {
			if option == DefaultKey {
				continue
			}
			if option == ResetSentinel || option == CustomSentinel {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Code:     errors.ErrOptionReserved,
					Key:      name,
					Message:  fmt.Sprintf("option %q collides with a sentinel marker", option),
				})
			}
			if _, ok := d[option].(string); !ok {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Code:     errors.ErrAxisInvalid,
					Key:      name,
					Message:  fmt.Sprintf("option %q has a non-string fragment; it will pass through as a raw token", option),
				})
			}
		}

		if rawDefault, ok := d[DefaultKey]; ok {
			defName, isString := rawDefault.(string)
			if !isString {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     errors.ErrDefaultUnknown,
					Key:      name,
					Message:  "_default must be a string naming an option or a raw fragment",
				})
			} else if frag, registered := d[defName]; !registered || stringOr(frag, "") == "" {
				issues = append(issues, Issue{
					Severity: SeverityInfo,
					Code:     errors.ErrDefaultUnknown,
					Key:      name,
					Message:  fmt.Sprintf("_default %q names no registered option and will apply as a raw fragment", defName),
				})
			}
		}
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     errors.ErrAxisInvalid,
			Key:      name,
			Message:  "axis definition must be a string or an option map; it will be skipped",
		})
	}
	return issues
}

func validateCompound(decl Declaration, raw interface{}) []Issue {
	var issues []Issue

	rules := compileCompound(raw)
	if rules == nil {
		return []Issue{{
			Severity: SeverityError,
			Code:     errors.ErrCompoundInvalid,
			Key:      CompoundKey,
			Message:  "compound must be a list of rules",
		}}
	}
	if len(rules) == 0 {
		return []Issue{{
			Severity: SeverityWarning,
			Code:     errors.ErrCompoundInvalid,
			Key:      CompoundKey,
			Message:  "compound rule list is empty",
		}}
	}

	spec := Compile(decl)
	for i, rule := range rules {
		key := fmt.Sprintf("%s[%d]", CompoundKey, i)
		if rule.Classes == "" {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Code:     errors.ErrCompoundNoClasses,
				Key:      key,
				Message:  "rule has no classes fragment; matching it contributes nothing",
			})
		}
		if len(rule.Conditions) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Code:     errors.ErrCompoundInvalid,
				Key:      key,
				Message:  "rule has no conditions and will match every resolution",
			})
		}
		for _, cond := range rule.Conditions {
			issues = append(issues, validateCondition(spec, key, cond)...)
		}
	}
	return issues
}

func validateCondition(spec *Spec, key string, cond Condition) []Issue {
	if !cond.Matchable {
		return []Issue{{
			Severity: SeverityError,
			Code:     errors.ErrCompoundInvalid,
			Key:      key,
			Message:  fmt.Sprintf("condition on %q requires a non-string, non-bool value and can never match", cond.Axis),
		}}
	}

	ax, declared := spec.Axis(cond.Axis)
	if !declared {
		return []Issue{{
			Severity: SeverityWarning,
			Code:     errors.ErrCompoundInvalid,
			Key:      key,
			Message:  fmt.Sprintf("condition references undeclared axis %q", cond.Axis),
		}}
	}

	if option, ok := cond.Want.Option(); ok && ax.Kind == AxisOption {
		if _, registered := ax.Options[option]; !registered {
			return []Issue{{
				Severity: SeverityInfo,
				Code:     errors.ErrCompoundInvalid,
				Key:      key,
				Message:  fmt.Sprintf("condition on %q requires unregistered option %q", cond.Axis, option),
			}}
		}
	}
	if _, ok := cond.Want.Bool(); ok && ax.Kind != AxisBoolean {
		return []Issue{{
			Severity: SeverityWarning,
			Code:     errors.ErrCompoundInvalid,
			Key:      key,
			Message:  fmt.Sprintf("condition on %q requires a bool but the axis is not boolean", cond.Axis),
		}}
	}
	return nil
}

// ValidateSelection reports selection keys and values the resolver would
// ignore or interpret surprisingly against the given spec.
func ValidateSelection(spec *Spec, sel Selection) []Issue {
	var issues []Issue

	keys := make([]string, 0, len(sel))
	for key := range sel {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == ResetSelectionKey {
			// Presence triggers reset regardless of value; a false value
			// almost certainly means the caller expected normal resolution.
			if on, ok := sel[key].(bool); ok && !on {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Code:     errors.ErrSelectionResetFalse,
					Key:      key,
					Message:  "resetStyles is false but its presence still triggers reset mode",
				})
			}
			continue
		}

		ax, declared := spec.Axis(key)
		if !declared {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Code:     errors.ErrSelectionUnknownAxis,
				Key:      key,
				Message:  "selection names no declared axis and is ignored",
			})
			continue
		}

		switch ax.Kind {
		case AxisBoolean:
			if _, ok := sel[key].(bool); !ok {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Code:     errors.ErrSelectionBadValue,
					Key:      key,
					Message:  "boolean axis selected with a non-bool value; it resolves to false",
				})
			}
		case AxisOption:
			name, ok := sel[key].(string)
			if !ok {
				issues = append(issues, Issue{
					Severity: SeverityWarning,
					Code:     errors.ErrSelectionBadValue,
					Key:      key,
					Message:  "option axis selected with a non-string value; it stays unset",
				})
				break
			}
			if _, registered := ax.Options[name]; !registered {
				issues = append(issues, Issue{
					Severity: SeverityInfo,
					Code:     errors.ErrSelectionBadValue,
					Key:      key,
					Message:  fmt.Sprintf("option %q is unregistered and will pass through as a raw token", name),
				})
			}
		case AxisInvalid:
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Code:     errors.ErrSelectionBadValue,
				Key:      key,
				Message:  "axis definition is malformed; the selection is ignored",
			})
		}
	}
	return issues
}
