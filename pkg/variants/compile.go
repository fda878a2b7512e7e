package variants

import (
	"sort"
)

// Compile translates a flat Declaration into a tagged Spec. The translation
// is permissive: malformed axis definitions compile to AxisInvalid, malformed
// compound entries to unmatchable rules, and non-string base/reset fragments
// to empty ones. Strict checking lives in Validate, not here.
//
// Go maps carry no declaration order, so axes compile in lexicographic name
// order. Callers that need a specific axis order construct the Spec directly
// with an ordered Axes slice.
func Compile(decl Declaration) *Spec {
	spec := &Spec{}

	names := make([]string, 0, len(decl))
	for name := range decl {
		switch name {
		case BaseKey:
			spec.Base = stringOr(decl[name], "")
		case ResetKey:
			spec.Reset = stringOr(decl[name], "")
		case CompoundKey:
			spec.Compound = compileCompound(decl[name])
		default:
			names = append(names, name)
		}
	}
	sort.Strings(names)

	spec.Axes = make([]Axis, 0, len(names))
	for _, name := range names {
		spec.Axes = append(spec.Axes, compileAxis(name, decl[name]))
	}
	return spec
}

// compileAxis decides the axis shape once, from the type of its definition
func compileAxis(name string, def interface{}) Axis {
	switch d := def.(type) {
	case string:
		return Axis{Name: name, Kind: AxisBoolean, Fragment: d}
	case map[string]interface{}:
		return compileOptionAxis(name, d)
	case map[string]string:
		converted := make(map[string]interface{}, len(d))
		for k, v := range d {
			converted[k] = v
		}
		return compileOptionAxis(name, converted)
	default:
		// nil, sequences, numbers: malformed, never resolves
		return Axis{Name: name, Kind: AxisInvalid}
	}
}

func compileOptionAxis(name string, def map[string]interface{}) Axis {
	ax := Axis{
		Name:    name,
		Kind:    AxisOption,
		Options: make(map[string]string, len(def)),
	}
	for option, frag := range def {
		if option == DefaultKey {
			if s, ok := frag.(string); ok {
				ax.Default = s
				ax.HasDefault = true
			}
			continue
		}
		// Only non-empty string fragments register; anything else means
		// "no fragment" and the option falls through to passthrough.
		if s, ok := frag.(string); ok && s != "" {
			ax.Options[option] = s
		}
	}
	return ax
}

// compileCompound accepts the rule list in the shapes config parsers produce
func compileCompound(raw interface{}) []CompoundRule {
	var entries []interface{}
	switch r := raw.(type) {
	case []interface{}:
		entries = r
	case []map[string]interface{}:
		entries = make([]interface{}, len(r))
		for i, m := range r {
			entries[i] = m
		}
	default:
		return nil
	}

	rules := make([]CompoundRule, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		rules = append(rules, compileRule(m))
	}
	return rules
}

func compileRule(m map[string]interface{}) CompoundRule {
	rule := CompoundRule{}

	axes := make([]string, 0, len(m))
	for key := range m {
		if key == "classes" {
			rule.Classes = stringOr(m[key], "")
			continue
		}
		axes = append(axes, key)
	}
	// Condition order is irrelevant to matching (all-conditions AND);
	// sorting just keeps the compiled form deterministic.
	sort.Strings(axes)

	for _, axis := range axes {
		rule.Conditions = append(rule.Conditions, compileCondition(axis, m[axis]))
	}
	return rule
}

func compileCondition(axis string, want interface{}) Condition {
	switch w := want.(type) {
	case bool:
		return Condition{Axis: axis, Want: BoolValue(w), Matchable: true}
	case string:
		switch w {
		case ResetSentinel:
			return Condition{Axis: axis, Want: ResetValue(), Matchable: true}
		case CustomSentinel:
			return Condition{Axis: axis, Want: CustomValue(), Matchable: true}
		default:
			return Condition{Axis: axis, Want: OptionValue(w), Matchable: true}
		}
	default:
		return Condition{Axis: axis, Want: Unset()}
	}
}

func stringOr(v interface{}, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}
