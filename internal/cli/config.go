package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/klondike/pkg/errors"
	"github.com/matzehuels/klondike/pkg/game"
)

// appName is the application name used for directories and display.
const appName = "klondike"

// Config holds the player-tunable settings, loaded from the config file
// and overridable by flags.
type Config struct {
	DrawCount int         `toml:"draw_count"` // cards per draw: 1 or 3
	Seed      uint64      `toml:"seed"`       // fixed shuffle seed; 0 means random per game
	Layout    game.Layout `toml:"layout"`
}

// defaultConfig returns the settings used when no config file exists:
// three-card draws on the standard layout, random deals.
func defaultConfig() Config {
	return Config{
		DrawCount: 3,
		Layout:    game.DefaultLayout(),
	}
}

// configPath returns the config file location, honoring XDG conventions
// via os.UserConfigDir (~/.config/klondike/config.toml on Linux).
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// loadConfig reads the config file at path, or the defaults when path is
// empty and no file exists at the standard location. A present-but-broken
// file is an INVALID_CONFIG error rather than a silent fallback.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DrawCount != 1 && c.DrawCount != 3 {
		return errors.New(errors.ErrCodeInvalidConfig, "draw_count must be 1 or 3, got %d", c.DrawCount)
	}
	if c.Layout.CardW < 3 || c.Layout.CardH < 2 {
		return errors.New(errors.ErrCodeInvalidConfig, "cards must be at least 3x2 cells")
	}
	if c.Layout.FanDY < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "fan_offset must be at least 1")
	}
	return nil
}
