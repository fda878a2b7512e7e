package variants

// ValueKind identifies which member of the resolved-value union a Value holds.
type ValueKind int

const (
	// KindUnset marks an axis that was neither selected nor defaulted
	KindUnset ValueKind = iota
	// KindBool marks a boolean axis resolution (always true or false)
	KindBool
	// KindOption marks resolution to an option name or a free-form string
	KindOption
	// KindReset marks every axis when reset mode short-circuits resolution
	KindReset
	// KindCustom marks a default that was applied as a raw fragment
	KindCustom
)

// String forms of the out-of-band markers. They exist only for display and
// for matching compound conditions written against the sentinels; internally
// resolved values are tagged, so an option literally named "_custom" cannot
// collide with the marker.
const (
	ResetSentinel  = "_reset"
	CustomSentinel = "_custom"
)

// Value is the resolved value of a single axis. The zero Value is unset.
type Value struct {
	kind   ValueKind
	option string
	on     bool
}

// Unset returns the value of an axis that resolved to nothing
func Unset() Value {
	return Value{kind: KindUnset}
}

// BoolValue returns the resolution of a boolean axis
func BoolValue(on bool) Value {
	return Value{kind: KindBool, on: on}
}

// OptionValue returns the resolution of an option-map axis to the given
// option name (registered or free-form)
func OptionValue(name string) Value {
	return Value{kind: KindOption, option: name}
}

// ResetValue returns the reset sentinel
func ResetValue() Value {
	return Value{kind: KindReset}
}

// CustomValue returns the raw-fragment-default sentinel
func CustomValue() Value {
	return Value{kind: KindCustom}
}

// Kind reports which member of the union the value holds
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsUnset reports whether the axis resolved to nothing
func (v Value) IsUnset() bool {
	return v.kind == KindUnset
}

// Bool returns the boolean resolution and whether the value is boolean
func (v Value) Bool() (bool, bool) {
	return v.on, v.kind == KindBool
}

// Option returns the option name and whether the value is an option
func (v Value) Option() (string, bool) {
	return v.option, v.kind == KindOption
}

// Equal reports exact equality between two resolved values
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.on == o.on
	case KindOption:
		return v.option == o.option
	default:
		return true
	}
}

// String renders the value for display: the option name, "true"/"false",
// the sentinel markers, or the empty string when unset
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.on {
			return "true"
		}
		return "false"
	case KindOption:
		return v.option
	case KindReset:
		return ResetSentinel
	case KindCustom:
		return CustomSentinel
	default:
		return ""
	}
}
