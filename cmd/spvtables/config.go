package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/wippyai/spirv-tables/env"
	"github.com/wippyai/spirv-tables/errors"
	"github.com/wippyai/spirv-tables/grammar"
)

// config is the tool configuration as read from a TOML file:
//
//	env = "vulkan1.0"
//	capabilities = ["Shader", "SubgroupBallotKHR"]
//	extensions = ["SPV_KHR_shader_ballot"]
//	verbose = false
type config struct {
	Env          string   `toml:"env"`
	Capabilities []string `toml:"capabilities"`
	Extensions   []string `toml:"extensions"`
	Verbose      bool     `toml:"verbose"`
}

func defaultConfig() config {
	return config{Env: env.Universal1_0.String()}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "read config "+path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "decode config "+path)
	}
	if cfg.Env == "" {
		cfg.Env = env.Universal1_0.String()
	}
	return cfg, nil
}

// overrides holds command-line values that take precedence over the file.
// Only flags present in set are applied.
type overrides struct {
	set          map[string]bool
	env          string
	capabilities string
	extensions   string
	verbose      bool
}

func (o overrides) apply(cfg *config) {
	if o.set["env"] {
		cfg.Env = o.env
	}
	if o.set["caps"] {
		cfg.Capabilities = splitList(o.capabilities)
	}
	if o.set["exts"] {
		cfg.Extensions = splitList(o.extensions)
	}
	if o.set["v"] {
		cfg.Verbose = o.verbose
	}
}

func (c config) target() (env.Target, error) {
	return env.Parse(c.Env)
}

func (c config) declared() (grammar.Declared, error) {
	caps, err := grammar.ParseCapabilities(c.Capabilities)
	if err != nil {
		return grammar.Declared{}, fmt.Errorf("capabilities: %w", err)
	}
	exts, err := grammar.ParseExtensions(c.Extensions)
	if err != nil {
		return grammar.Declared{}, fmt.Errorf("extensions: %w", err)
	}
	return grammar.Declared{Capabilities: caps, Extensions: exts}, nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
