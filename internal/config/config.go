// Package config resolves generator settings from layered sources:
// built-in defaults, then an optional config file, then command-line
// flags. Later layers win.
package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds every tunable of a generation run.
type Config struct {
	// Output is the directory generated files are written to.
	Output string `koanf:"output"`
	// Package names the generated package; a declaration file's own
	// package key overrides it per file.
	Package string `koanf:"package"`
	// Comments toggles explanatory doc comments in generated code.
	Comments bool `koanf:"comments"`
	// DebugUnformatted keeps the .unformatted.go sidecar written when a
	// generated file fails gofmt. File-key only, no flag.
	DebugUnformatted bool `koanf:"debug_unformatted"`
}

// Default returns the built-in settings used when nothing overrides them.
func Default() Config {
	return Config{
		Output:           "./generated",
		Package:          "types",
		Comments:         true,
		DebugUnformatted: true,
	}
}

// Load resolves the effective configuration. path may be empty (no config
// file) and flags may be nil (no flag layer). Flags that were not set on
// the command line do not override file values.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	defaults := Default()
	err := k.Load(confmap.Provider(map[string]any{
		"output":            defaults.Output,
		"package":           defaults.Package,
		"comments":          defaults.Comments,
		"debug_unformatted": defaults.DebugUnformatted,
	}, "."), nil)
	if err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		ft := inferFileType(path)

		if err := k.Load(file.Provider(path), ft.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}
