/*
Package config loads component libraries: files declaring named variant
declarations in the same flat syntax the variants package resolves.

A TOML library looks like:

	[settings]
	merge = true

	[components.button]
	base = "btn px-4"
	reset = "p-0"
	elevated = "shadow-lg"

	[components.button.size]
	sm = "text-sm"
	lg = "text-lg"
	_default = "sm"

	[[components.button.compound]]
	size = "lg"
	elevated = true
	classes = "ring-2"

YAML libraries use the same shape. Axis definitions sit directly in the
component table, mixed with the reserved base/reset/compound keys, so a
library file is a faithful transcription of the in-code declaration syntax.

Configuration layers in order: built-in defaults, the library file, then
VARIA_ environment variables (VARIA_SETTINGS_FORMAT=checkstyle overrides
settings.format).
*/
package config
