package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/spirv-tables/env"
	"github.com/wippyai/spirv-tables/grammar"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spvtables.toml")
	data := `env = "vulkan1.0"
capabilities = ["Shader", "SubgroupBallotKHR"]
extensions = ["SPV_KHR_shader_ballot"]
verbose = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := config{
		Env:          "vulkan1.0",
		Capabilities: []string{"Shader", "SubgroupBallotKHR"},
		Extensions:   []string{"SPV_KHR_shader_ballot"},
		Verbose:      true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	target, err := cfg.target()
	if err != nil || target != env.Vulkan1_0 {
		t.Errorf("target = %v, %v", target, err)
	}
	declared, err := cfg.declared()
	if err != nil {
		t.Fatal(err)
	}
	if !declared.Capabilities.Contains(grammar.CapabilitySubgroupBallotKHR) ||
		!declared.Extensions.Contains(grammar.ExtKHRShaderBallot) {
		t.Errorf("declared = %+v", declared)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Env != "spv1.0" {
		t.Errorf("default env = %q", cfg.Env)
	}

	path := filepath.Join(t.TempDir(), "empty.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(path)
	if err != nil || cfg.Env != "spv1.0" {
		t.Errorf("empty file: env = %q, err = %v", cfg.Env, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("env = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("malformed file accepted")
	}
}

func TestOverrides(t *testing.T) {
	cfg := config{Env: "spv1.0", Capabilities: []string{"Kernel"}}
	overrides{
		set:          map[string]bool{"env": true, "caps": true},
		env:          "opencl2.1",
		capabilities: "Addresses, Linkage,",
		extensions:   "SPV_KHR_multiview",
	}.apply(&cfg)

	if cfg.Env != "opencl2.1" {
		t.Errorf("env = %q", cfg.Env)
	}
	if diff := cmp.Diff([]string{"Addresses", "Linkage"}, cfg.Capabilities); diff != "" {
		t.Errorf("capabilities (-want +got):\n%s", diff)
	}
	if cfg.Extensions != nil {
		t.Errorf("unset flag overrode extensions: %v", cfg.Extensions)
	}
}

func TestDeclaredRejectsUnknownNames(t *testing.T) {
	if _, err := (config{Capabilities: []string{"Shadr"}}).declared(); err == nil {
		t.Error("unknown capability accepted")
	}
	if _, err := (config{Extensions: []string{"SPV_nope"}}).declared(); err == nil {
		t.Error("unknown extension accepted")
	}
	if _, err := (config{Env: "vulkan9"}).target(); err == nil {
		t.Error("unknown env accepted")
	}
}
