// Package tokens joins and conflict-resolves whitespace-separated class
// tokens. It is the merge collaborator consumed alongside the variants
// resolver: the resolver treats fragments as opaque, this package is where
// duplicate and conflicting tokens collapse.
package tokens

import (
	"sort"
	"strings"
)

// Join builds a single space-separated string from mixed arguments: strings,
// string slices, and map[string]bool conditionals (keys included when true).
// Empty strings and unknown argument types are skipped. Join does not
// conflict-resolve; pair it with Merge for that.
func Join(args ...interface{}) string {
	var parts []string
	for _, arg := range args {
		switch a := arg.(type) {
		case string:
			if a != "" {
				parts = append(parts, a)
			}
		case []string:
			for _, s := range a {
				if s != "" {
					parts = append(parts, s)
				}
			}
		case map[string]bool:
			// Sort for deterministic output
			keys := make([]string, 0, len(a))
			for k := range a {
				if a[k] && k != "" {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			parts = append(parts, keys...)
		}
	}
	return strings.Join(parts, " ")
}

// Merge splits the fragments into tokens and resolves conflicts last-wins:
// exact duplicates collapse, and tokens in the same utility group (same
// variant prefix and same head before the final hyphen, e.g. "text-sm" and
// "text-lg") collapse to the last occurrence, kept at the first occurrence's
// position.
//
// The grouping is deliberately naive: it knows hyphens and colon-separated
// variant prefixes, not any particular utility vocabulary, so directional
// pairs like "border-t"/"border-b" collapse too. Callers who need such
// tokens to coexist route them through preserved fragments instead.
func Merge(fragments ...string) string {
	return MergeWithPreserved(nil, fragments...)
}

// MergeWithPreserved merges the fragments, then appends the preserved
// fragments verbatim. Preserved tokens bypass conflict resolution entirely;
// they neither collapse with merged tokens nor with each other.
func MergeWithPreserved(preserved []string, fragments ...string) string {
	var out []string
	position := make(map[string]int)

	for _, fragment := range fragments {
		for _, token := range strings.Fields(fragment) {
			group := groupKey(token)
			if i, seen := position[group]; seen {
				out[i] = token
				continue
			}
			position[group] = len(out)
			out = append(out, token)
		}
	}

	for _, fragment := range preserved {
		out = append(out, strings.Fields(fragment)...)
	}

	return strings.Join(out, " ")
}

// groupKey computes the conflict group of a token: the variant prefix
// ("hover:", "md:focus:") plus the base utility up to its final hyphen.
// Tokens without a hyphenated value are their own group.
func groupKey(token string) string {
	prefix := ""
	if i := strings.LastIndex(token, ":"); i >= 0 {
		prefix = token[:i+1]
		token = token[i+1:]
	}

	// Arbitrary values ("w-[32rem]") group by the part before the bracket
	if i := strings.Index(token, "["); i > 0 {
		token = strings.TrimSuffix(token[:i], "-")
		return prefix + token
	}

	if i := strings.LastIndex(token, "-"); i > 0 {
		return prefix + token[:i]
	}
	return prefix + token
}
