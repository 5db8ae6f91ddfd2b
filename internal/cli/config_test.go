package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/klondike/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("explicit missing file: error = %v, want INVALID_CONFIG", err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\"): %v", err)
	}
	if cfg.DrawCount != 3 {
		t.Errorf("default draw count = %d, want 3", cfg.DrawCount)
	}
	if cfg.Seed != 0 {
		t.Errorf("default seed = %d, want 0 (random)", cfg.Seed)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
draw_count = 1
seed = 42

[layout]
card_width = 9.0
card_height = 6.0
fan_offset = 2.0
gap_x = 2.0
gap_y = 2.0
margin = 1.0
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.DrawCount != 1 {
		t.Errorf("draw count = %d, want 1", cfg.DrawCount)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	if cfg.Layout.CardW != 9 {
		t.Errorf("card width = %v, want 9", cfg.Layout.CardW)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "bad draw count",
			contents: "draw_count = 2",
		},
		{
			name:     "malformed toml",
			contents: "draw_count = ][",
		},
		{
			name: "tiny cards",
			contents: `
draw_count = 1
[layout]
card_width = 1.0
card_height = 1.0
fan_offset = 1.0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			_, err := loadConfig(path)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}
