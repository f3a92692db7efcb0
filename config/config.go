package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/alsescape/logger"
)

type Config struct {
	Title       string        `yaml:"title"`
	TPS         int           `yaml:"tps"`
	Level       string        `yaml:"level"`
	DefaultPawn string        `yaml:"default_pawn"`
	HUD         HUDConfig     `yaml:"hud"`
	HotReload   bool          `yaml:"hot_reload"`
	PrefabDir   string        `yaml:"prefab_dir"`
	Debug       bool          `yaml:"debug"`
	Log         logger.Config `yaml:"log"`
}

// HUDConfig names the widget class the game mode creates on BeginPlay. An
// empty class means no HUD.
type HUDConfig struct {
	Class string `yaml:"class"`
}

func Default() Config {
	return Config{
		Title:       "AlsEscape",
		TPS:         60,
		Level:       "escape.json",
		DefaultPawn: "player.yaml",
		HUD:         HUDConfig{Class: "stamina_hud"},
		PrefabDir:   "prefabs",
		Log:         logger.DefaultConfig(),
	}
}

// Load overlays the YAML file at path onto the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	if c.DefaultPawn == "" {
		return fmt.Errorf("config: default_pawn is required")
	}
	return nil
}

// Delta is the fixed simulation step in seconds.
func (c Config) Delta() float64 {
	return 1 / float64(c.TPS)
}
