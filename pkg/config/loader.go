package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/varia-dev/varia/pkg/errors"
	"github.com/varia-dev/varia/pkg/logging"
	"github.com/varia-dev/varia/pkg/variants"
)

// Library is a loaded set of named component declarations plus settings.
// Specs compile lazily, once per component, and the compiled forms are
// cached in a registry so repeated resolutions share them.
type Library struct {
	path     string
	settings Settings
	decls    map[string]variants.Declaration
	specs    *specCache
}

// candidateFiles are the library file names searched, in order, when no
// explicit path is given
var candidateFiles = []string{
	"varia.toml",
	".varia.toml",
	"varia.yaml",
	"varia.yml",
	".varia.yaml",
}

// Load reads a component library file. The format follows the extension:
// .toml, or .yaml/.yml. Configuration layers in order: defaults, then the
// file, then VARIA_ environment variables.
func Load(path string) (*Library, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	if err := k.Load(env.Provider("VARIA_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "VARIA_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	lib := &Library{
		path:  path,
		decls: make(map[string]variants.Declaration),
		specs: newSpecCache(),
	}

	if err := k.Unmarshal("settings", &lib.settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}

	components, _ := k.Get("components").(map[string]interface{})
	for name, raw := range components {
		decl, ok := raw.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrComponentInvalid,
				"component %q must be a table of variant definitions", name)
		}
		lib.decls[name] = variants.Declaration(decl)
	}

	logger.Debug().
		Str("path", path).
		Int("components", len(lib.decls)).
		Msg("Loaded component library")

	return lib, nil
}

// LoadDefault loads the library named by VARIA_CONFIG, or the first
// candidate file found in the working directory.
func LoadDefault() (*Library, error) {
	if path := os.Getenv("VARIA_CONFIG"); path != "" {
		return Load(path)
	}
	for _, name := range candidateFiles {
		if _, err := os.Stat(name); err == nil {
			return Load(name)
		}
	}
	return nil, errors.Newf(errors.ErrConfigLoad,
		"no component library found (looked for %s)", strings.Join(candidateFiles, ", "))
}

// parserFor picks the koanf parser from the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return ktoml.Parser(), nil
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported library format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

// Path returns the file the library was loaded from
func (l *Library) Path() string {
	return l.path
}

// Settings returns the effective settings after all layers
func (l *Library) Settings() Settings {
	return l.settings
}

// Components returns the declared component names in sorted order
func (l *Library) Components() []string {
	names := make([]string, 0, len(l.decls))
	for name := range l.decls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declaration returns the raw flat declaration for a component
func (l *Library) Declaration(name string) (variants.Declaration, error) {
	decl, ok := l.decls[name]
	if !ok {
		return nil, errors.Newf(errors.ErrComponentNotFound, "component %q is not declared", name)
	}
	return decl, nil
}

// Spec returns the compiled spec for a component, compiling on first use
func (l *Library) Spec(name string) (*variants.Spec, error) {
	return l.specs.get(name, func() (*variants.Spec, error) {
		decl, err := l.Declaration(name)
		if err != nil {
			return nil, err
		}
		return variants.Compile(decl), nil
	})
}

// ParseDeclaration parses a single flat declaration from raw bytes, for
// callers embedding declarations outside a library file. Format is "toml",
// "yaml" or "yml".
func ParseDeclaration(data []byte, format string) (variants.Declaration, error) {
	decl := make(map[string]interface{})
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &decl); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse TOML declaration")
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &decl); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse YAML declaration")
		}
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported declaration format %q", format)
	}
	return variants.Declaration(decl), nil
}
