package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults and applies SDCURVE_* environment variable overrides. The
// returned Config has not been validated.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// Decode is Load without a file: relative data paths are resolved from the
// working directory.
func Decode(str string) (*Config, error) {
	cfg := Defaults()
	if _, err := toml.Decode(str, &cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Output, "SDCURVE_OUTPUT")
	setStr(&cfg.LogLevel, "SDCURVE_LOG_LEVEL")
	setStr(&cfg.Chart.BgColor, "SDCURVE_BG_COLOR")
	setStr(&cfg.Chart.Palette, "SDCURVE_PALETTE")
	setFloat64(&cfg.Chart.Width, "SDCURVE_WIDTH")
	setFloat64(&cfg.Chart.Height, "SDCURVE_HEIGHT")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
