package variants

import (
	"strings"
)

// AxisValue pairs an axis name with its resolved value
type AxisValue struct {
	Axis  string
	Value Value
}

// Result is the outcome of one resolution: the merged class string plus
// exactly one resolved value per declared axis, in resolution order. Results
// are per-call values; callers must treat them as immutable.
type Result struct {
	// Classes is the accumulated fragment text, trimmed. Never absent:
	// a resolution that contributes nothing yields the empty string.
	Classes string

	axes  []AxisValue
	index map[string]int
}

// Axes returns the per-axis resolutions in resolution order
func (r Result) Axes() []AxisValue {
	out := make([]AxisValue, len(r.axes))
	copy(out, r.axes)
	return out
}

// Value returns the resolved value for the named axis. Axes the spec does
// not declare report unset.
func (r Result) Value(axis string) Value {
	if i, ok := r.index[axis]; ok {
		return r.axes[i].Value
	}
	return Unset()
}

// Has reports whether the spec declares the named axis
func (r Result) Has(axis string) bool {
	_, ok := r.index[axis]
	return ok
}

func (r *Result) set(i int, v Value) {
	r.axes[i].Value = v
}

// Resolve computes the class string and per-axis record for the selection.
// It never fails: malformed or missing data degrades to no contribution.
// The phases run in a fixed order: shape initialization, the reset
// short-circuit, per-axis resolution with default fallback, and the
// compound post-pass.
func (s *Spec) Resolve(sel Selection) Result {
	res := Result{
		axes:  make([]AxisValue, len(s.Axes)),
		index: make(map[string]int, len(s.Axes)),
	}
	for i, ax := range s.Axes {
		res.axes[i] = AxisValue{Axis: ax.Name, Value: Unset()}
		res.index[ax.Name] = i
	}

	// Reset short-circuit: presence of the key is what matters, not its
	// value. Base, per-axis and compound fragments are all skipped.
	if sel.HasReset() {
		for i := range res.axes {
			res.set(i, ResetValue())
		}
		res.Classes = strings.TrimSpace(s.Reset)
		return res
	}

	var parts []string
	if s.Base != "" {
		parts = append(parts, s.Base)
	}

	for i, ax := range s.Axes {
		switch ax.Kind {
		case AxisBoolean:
			// A boolean axis always resolves: anything but true is false.
			on, _ := sel[ax.Name].(bool)
			res.set(i, BoolValue(on))
			if on && ax.Fragment != "" {
				parts = append(parts, ax.Fragment)
			}

		case AxisOption:
			raw, selected := sel[ax.Name]
			if selected {
				name, ok := raw.(string)
				if !ok {
					// Non-string selections are ignored; the axis does
					// not fall back to its default.
					continue
				}
				res.set(i, OptionValue(name))
				if frag := ax.Options[name]; frag != "" {
					parts = append(parts, frag)
				} else if name != "" {
					// Unregistered option: the selection itself is the fragment
					parts = append(parts, name)
				}
				continue
			}
			if ax.HasDefault {
				if frag := ax.Options[ax.Default]; frag != "" {
					res.set(i, OptionValue(ax.Default))
					parts = append(parts, frag)
				} else {
					// The default is a raw fragment, not an option name
					res.set(i, CustomValue())
					if ax.Default != "" {
						parts = append(parts, ax.Default)
					}
				}
			}

		case AxisInvalid:
			// Malformed definition: stays unset, contributes nothing
		}
	}

	for _, rule := range s.Compound {
		if rule.matches(res) && rule.Classes != "" {
			parts = append(parts, rule.Classes)
		}
	}

	res.Classes = strings.TrimSpace(strings.Join(parts, " "))
	return res
}

// matches reports whether every condition holds against the already-resolved
// values. A rule with no conditions always matches.
func (r CompoundRule) matches(res Result) bool {
	for _, cond := range r.Conditions {
		if !cond.Matchable {
			return false
		}
		if !res.Value(cond.Axis).Equal(cond.Want) {
			return false
		}
	}
	return true
}

// Resolve compiles the declaration and resolves the selection in one step.
// Callers resolving the same declaration repeatedly should Compile once and
// reuse the Spec.
func Resolve(decl Declaration, sel Selection) Result {
	return Compile(decl).Resolve(sel)
}
