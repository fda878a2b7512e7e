package config

// Settings holds the [settings] section of a component library file. All of
// it is optional; defaults come from the confmap layer and VARIA_ environment
// variables override both.
type Settings struct {
	// Merge routes resolved class strings through the token merger
	Merge bool `koanf:"merge"`

	// Format is the default lint report format ("text" or "checkstyle")
	Format string `koanf:"format"`

	// Preserve lists fragments appended verbatim after merging, bypassing
	// token conflict resolution
	Preserve []string `koanf:"preserve"`
}

// defaultSettings is the base configuration layer
func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"settings.merge":  false,
		"settings.format": "text",
	}
}
