package config

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/glyph-rain/constants"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("glyph-rain", nil, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.MinLen != constants.MinWordLen || cfg.Delay != constants.InitialDelay {
		t.Errorf("Unexpected default values %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GLYPHRAIN_DICT", "words.txt")
	t.Setenv("GLYPHRAIN_MIN_LEN", "3")
	t.Setenv("GLYPHRAIN_DELAY", "80ms")
	t.Setenv("GLYPHRAIN_MUTE", "true")
	t.Setenv("GLYPHRAIN_SEED", "42")

	cfg, err := Load("glyph-rain", nil, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DictPath != "words.txt" || cfg.MinLen != 3 || cfg.Delay != 80*time.Millisecond || !cfg.Mute || cfg.Seed != 42 {
		t.Errorf("Environment not applied: %+v", cfg)
	}
	if cfg.MaxLen != constants.MaxWordLen {
		t.Errorf("Unset variable changed MaxLen to %d", cfg.MaxLen)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("GLYPHRAIN_TARGET", "5")

	cfg, err := Load("glyph-rain", []string{"-target", "2", "-min-len", "4", "-max-len", "6", "-debug"}, io.Discard)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Target != 2 || cfg.MinLen != 4 || cfg.MaxLen != 6 || !cfg.Debug {
		t.Errorf("Flags not applied: %+v", cfg)
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("GLYPHRAIN_TARGET", "many")

	_, err := Load("glyph-rain", nil, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("Expected parse env error, got %v", err)
	}
}

func TestLoadFlagError(t *testing.T) {
	_, err := Load("glyph-rain", []string{"-bogus"}, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "parse flags:") {
		t.Fatalf("Expected parse flags error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"min len zero", func(c *Config) { c.MinLen = 0 }, "min-len"},
		{"max below min", func(c *Config) { c.MaxLen = c.MinLen - 1 }, "max-len"},
		{"target zero", func(c *Config) { c.Target = 0 }, "target"},
		{"delay below floor", func(c *Config) { c.Delay = time.Millisecond }, "delay"},
		{"empty dictionary path", func(c *Config) { c.DictPath = "" }, "dictionary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Defaults should validate, got %v", err)
	}
}

func TestToEngine(t *testing.T) {
	cfg := Default()
	cfg.Target = 3
	cfg.Delay = 70 * time.Millisecond

	ec := cfg.ToEngine([]string{"a", "b"})
	if ec.TargetCount != 3 || ec.InitialDelay != 70*time.Millisecond || len(ec.Words) != 2 {
		t.Errorf("Unexpected engine config %+v", ec)
	}
	if ec.Lifespan != constants.ClusterLifespan || !ec.InitialDrops {
		t.Errorf("Expected stock engine defaults, got %+v", ec)
	}
}
