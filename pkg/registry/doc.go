// Package registry provides a generic, type-safe registry used to hold
// compiled component specs by name. The config loader populates one per
// loaded library; callers may also maintain their own for programmatic
// component sets.
package registry
