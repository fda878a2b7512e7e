/*
Package variants resolves declarative style variant groups into a single
class string plus a per-axis record of what was selected.

A declaration mixes three reserved keys with arbitrary axis definitions in
one flat mapping:

	decl := variants.Declaration{
		"base":  "btn px-4",
		"reset": "p-0",
		"size": map[string]interface{}{
			"sm":       "text-sm",
			"lg":       "text-lg",
			"_default": "sm",
		},
		"elevated": "shadow-lg",
		"compound": []interface{}{
			map[string]interface{}{"size": "lg", "elevated": true, "classes": "ring-2"},
		},
	}

A string-valued axis ("elevated") is a boolean axis: its fragment is included
only when the selection toggles it on. A map-valued axis ("size") maps option
names to fragments, with an optional "_default" fallback. Compound rules
append extra fragments when every listed axis resolved to the required value.

Declarations are compiled once into a tagged Spec and resolved against
per-call selections:

	spec := variants.Compile(decl)
	res := spec.Resolve(variants.Selection{"size": "lg"})
	// res.Classes == "btn px-4 text-lg"
	// res.Value("size") == variants.OptionValue("lg")
	// res.Value("elevated") == variants.BoolValue(false)

Resolution is permissive: malformed definitions, unknown selection keys and
mistyped values degrade to no contribution instead of failing. A selection
string that names no registered option passes through as a raw fragment, as
does a "_default" that is itself a fragment rather than an option name (the
axis then resolves to the custom sentinel). A selection containing the
"resetStyles" key short-circuits everything to the reset fragment.

Callers who want fail-fast behavior run Validate or ValidateSelection, which
report everything the resolver silently tolerates.

Resolution is pure and allocates only its result; a compiled Spec is
read-only and safe for concurrent use.
*/
package variants
