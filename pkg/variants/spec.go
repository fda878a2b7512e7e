package variants

// Reserved keys in the flat declaration syntax
const (
	// BaseKey holds the fragment that is always included
	BaseKey = "base"
	// ResetKey holds the fragment used instead of everything else in reset mode
	ResetKey = "reset"
	// CompoundKey holds the ordered list of compound rules
	CompoundKey = "compound"
	// DefaultKey names the option (or raw fragment) an axis falls back to
	DefaultKey = "_default"
	// ResetSelectionKey triggers reset mode when present in a selection.
	// Presence alone triggers it; the value is not examined (see the
	// validator, which flags a false value as suspect).
	ResetSelectionKey = "resetStyles"
)

// Declaration is the flat caller-facing variant description: the reserved
// keys above mixed with arbitrary axis keys in one mapping. An axis value is
// either a string (boolean axis) or a mapping of option name to fragment
// (option-map axis). Declarations are translated once into a Spec by Compile.
type Declaration map[string]interface{}

// Selection carries the runtime-selected value per axis: a bool for boolean
// axes, a string for option-map axes, or absent. Unknown keys are ignored.
type Selection map[string]interface{}

// HasReset reports whether the selection triggers reset mode
func (s Selection) HasReset() bool {
	_, ok := s[ResetSelectionKey]
	return ok
}

// AxisKind identifies the shape of a compiled axis
type AxisKind int

const (
	// AxisInvalid marks a malformed axis definition. The axis keeps its
	// name and position but never resolves and never contributes a fragment.
	AxisInvalid AxisKind = iota
	// AxisBoolean is a single-fragment axis toggled by a bool selection
	AxisBoolean
	// AxisOption maps option names to fragments
	AxisOption
)

// Axis is the compiled, tagged form of one axis definition
type Axis struct {
	Name string
	Kind AxisKind

	// Fragment is the boolean axis fragment (AxisBoolean only)
	Fragment string

	// Options maps option name to fragment. Options with empty or
	// non-string fragments are omitted, which makes a selected option
	// fall through to literal passthrough. (AxisOption only)
	Options map[string]string

	// Default names the fallback option or raw fragment (AxisOption only)
	Default    string
	HasDefault bool
}

// Condition is one axis requirement of a compound rule
type Condition struct {
	Axis string
	Want Value

	// Matchable is false when the declared requirement was neither a
	// string nor a bool; such a condition can never be satisfied.
	Matchable bool
}

// CompoundRule appends its Classes fragment when every condition matches the
// already-resolved axis values. Rules never alter the per-axis values.
type CompoundRule struct {
	Conditions []Condition
	Classes    string
}

// Spec is the compiled form of a Declaration: reserved parts split out from
// the axes, each axis resolved to a tagged shape exactly once. A Spec is
// read-only after compilation and safe to share across concurrent resolutions.
type Spec struct {
	Base     string
	Reset    string
	Axes     []Axis
	Compound []CompoundRule
}

// AxisNames returns the axis names in resolution order
func (s *Spec) AxisNames() []string {
	names := make([]string, len(s.Axes))
	for i, ax := range s.Axes {
		names[i] = ax.Name
	}
	return names
}

// Axis returns the compiled axis with the given name
func (s *Spec) Axis(name string) (Axis, bool) {
	for _, ax := range s.Axes {
		if ax.Name == name {
			return ax, true
		}
	}
	return Axis{}, false
}
