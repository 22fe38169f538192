package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/litescript/ls-starmap/internal/starmap"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.StarCount != 32 {
		t.Errorf("StarCount = %d, want 32", cfg.StarCount)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if !cfg.JumpLines {
		t.Error("JumpLines should default to true")
	}
	if cfg.JumpDistance != 10 {
		t.Errorf("JumpDistance = %v, want 10", cfg.JumpDistance)
	}
	if cfg.PNGSize != 1024 {
		t.Errorf("PNGSize = %d, want 1024", cfg.PNGSize)
	}
	if cfg.Headless() {
		t.Error("defaults should not be headless")
	}
	if _, ok, _ := cfg.SeedValue(); ok {
		t.Error("no seed should be set by default")
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("STARMAP_SEED", "0x2a")
	t.Setenv("STARMAP_STAR_COUNT", "100")
	t.Setenv("STARMAP_THEME", "light")
	t.Setenv("STARMAP_JUMPLINES", "false")

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	seed, ok, err := cfg.SeedValue()
	if err != nil || !ok || seed != 0x2a {
		t.Errorf("SeedValue = %#x, %v, %v; want 0x2a", seed, ok, err)
	}
	if cfg.StarCount != 100 {
		t.Errorf("StarCount = %d, want 100", cfg.StarCount)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.JumpLines {
		t.Error("JumpLines should be false from env")
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("STARMAP_STAR_COUNT", "100")

	cfg, err := Load("", []string{"-count", "7", "-show-class", "-summary"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StarCount != 7 {
		t.Errorf("StarCount = %d, want 7 (flag wins)", cfg.StarCount)
	}
	if !cfg.ShowClass {
		t.Error("ShowClass should be set by flag")
	}
	if !cfg.Headless() {
		t.Error("-summary should be headless")
	}
}

func TestLoad_Dotenv(t *testing.T) {
	const key = "STARMAP_PRINT_DIR"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s already set in environment", key)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=/tmp/posters\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PrintDir != "/tmp/posters" {
		t.Errorf("PrintDir = %q, want /tmp/posters", cfg.PrintDir)
	}
}

func TestLoad_MissingDotenvIsFine(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.env"), nil); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"malformed seed", []string{"-seed", "zz"}},
		{"count too large", []string{"-count", "513"}},
		{"negative distance", []string{"-jump-distance", "-1"}},
		{"unknown theme", []string{"-theme", "sepia"}},
		{"zero size", []string{"-size", "0"}},
		{"unknown flag", []string{"-bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load("", tt.args); err == nil {
				t.Errorf("Load(%v) should fail", tt.args)
			}
		})
	}
}

func TestLoad_MalformedSeedIsWrapped(t *testing.T) {
	_, err := Load("", []string{"-seed", "0xnothex"})
	if !errors.Is(err, starmap.ErrMalformedSeed) {
		t.Errorf("error = %v, want ErrMalformedSeed", err)
	}
}

func TestUsage(t *testing.T) {
	var b strings.Builder
	Usage(&b)
	for _, flag := range []string{"-seed", "-count", "-png", "-jump-distance"} {
		if !strings.Contains(b.String(), flag) {
			t.Errorf("usage missing %s", flag)
		}
	}
}
