package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipp01105/dbglog/core"
)

func TestParse(t *testing.T) {
	data := []byte(`
levels = "error,debug"
color = "never"
output = "discard"
full_path = true
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Levels != "error,debug" || cfg.Color != "never" || cfg.Output != "discard" || !cfg.FullPath {
		t.Errorf("Parse() = %+v", cfg)
	}
	if cfg.FullFunction {
		t.Error("FullFunction = true, want false")
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Parse(nil) = %+v, want %+v", cfg, Default())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", `levels = `, "parse config"},
		{"levels", `levels = "loud"`, "levels"},
		{"color", `color = "purple"`, "color"},
		{"output", `output = "syslog"`, "unknown output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dbglog.toml")
	if err := os.WriteFile(path, []byte("levels = \"all\"\noutput = \"discard\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	log, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if log.Gate().Mask() != core.AllLevels {
		t.Errorf("mask = %d, want %d", log.Gate().Mask(), core.AllLevels)
	}
	if log.Gate() == core.ProcessGate() {
		t.Error("configured levels must not change the process-wide gate")
	}
	log.Debug(1)
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load() error = nil for a missing file")
	}
}

func TestBuild_SharesProcessGate(t *testing.T) {
	cfg := Default()
	cfg.Output = "discard"
	log, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if log.Gate() != core.ProcessGate() {
		t.Error("Build() without levels did not use the process-wide gate")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(core.LevelEnv, "warn")
	t.Setenv(ColorEnv, "always")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Levels != "warn" || cfg.Color != "always" {
		t.Errorf("ApplyEnv() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
