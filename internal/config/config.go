// Package config loads ufclient settings from viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
)

// EnvPrefix is prepended to every environment key, e.g. LVLATH_VARIANT.
const EnvPrefix = "LVLATH"

// Config holds ufclient runtime settings.
// Values are populated from an optional config file, LVLATH_* env vars, and CLI flags.
type Config struct {
	// Variant is the union-find implementation to use. Empty means "let the
	// scenario decide, then fall back to the library default".
	Variant unionfind.Variant `mapstructure:"variant"`
	// Trace prints the internal array after every merge.
	Trace bool `mapstructure:"trace"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags. A non-empty variant
// is normalised through unionfind.ParseVariant.
func Load() (Config, error) {
	viper.SetDefault("variant", "")
	viper.SetDefault("trace", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Variant != "" {
		v, err := unionfind.ParseVariant(string(cfg.Variant))
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		cfg.Variant = v
	}

	return cfg, nil
}
