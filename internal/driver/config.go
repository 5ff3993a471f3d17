package driver

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config carries reusable defaults for a compile_and_extract run — include
// paths, macro definitions, the C++ standard, and the trace level — loaded
// from a single explicitly-named TOML file. Unlike the teacher's surge.toml
// discovery, this is never searched for by walking up the directory tree:
// spec.md places project-file discovery out of scope (§1), so the caller
// names the file it wants read, once.
type Config struct {
	IncludePaths []string `toml:"include_paths"`
	Defines      []string `toml:"defines"`
	Standard     string   `toml:"standard"`
	TraceLevel   string   `toml:"trace_level"`
}

// LoadConfig reads and parses the TOML file at path. A missing file is not
// an error: callers treat a zero Config as "no defaults configured", which
// lets a default "bblgen.toml" lookup stay silent when the file is absent.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg.Standard = strings.TrimSpace(cfg.Standard)
	cfg.TraceLevel = strings.TrimSpace(cfg.TraceLevel)
	return cfg, nil
}

// mergeConfig layers cfg's defaults under opts: include paths and defines
// accumulate (cfg's first, so argv-supplied ones take the position a
// compiler would give the last -I/-D on the command line), while Standard
// only falls back to cfg when argv never set one.
func mergeConfig(opts Options, cfg Config) Options {
	if len(cfg.IncludePaths) > 0 {
		opts.IncludePaths = append(append([]string(nil), cfg.IncludePaths...), opts.IncludePaths...)
	}
	if len(cfg.Defines) > 0 {
		opts.Defines = append(append([]string(nil), cfg.Defines...), opts.Defines...)
	}
	if opts.Standard == "" {
		opts.Standard = cfg.Standard
	}
	return opts
}
