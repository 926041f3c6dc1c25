// Package config loads the overload CLI configuration from overload.yml,
// with environment-variable overrides and sensible defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/overload-dev/overload/pkg/dispatch"
)

// Config represents the overload CLI configuration.
type Config struct {
	Dispatch DispatchConfig `mapstructure:"dispatch"`
	Output   OutputConfig   `mapstructure:"output"`
}

// DispatchConfig configures the resolver.
type DispatchConfig struct {
	// Ambiguity selects the multiple-match policy: "first_match" or
	// "error".
	Ambiguity string `mapstructure:"ambiguity"`
	// Cache enables memoization of successful resolutions.
	Cache bool `mapstructure:"cache"`
}

// OutputConfig configures terminal output.
type OutputConfig struct {
	NoColor bool `mapstructure:"no_color"`
}

// Load loads the configuration from overload.yml or overload.yaml in the
// working directory. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("dispatch.ambiguity", "first_match")
	v.SetDefault("dispatch.cache", false)
	v.SetDefault("output.no_color", false)

	v.SetConfigName("overload")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("OVERLOAD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(c *Config) error {
	switch c.Dispatch.Ambiguity {
	case "first_match", "error":
		return nil
	default:
		return fmt.Errorf("invalid dispatch.ambiguity %q: must be \"first_match\" or \"error\"", c.Dispatch.Ambiguity)
	}
}

// Policy returns the ambiguity policy selected by the configuration.
func (c *Config) Policy() dispatch.AmbiguityPolicy {
	if c.Dispatch.Ambiguity == "error" {
		return dispatch.AmbiguityError
	}
	return dispatch.FirstMatchWins
}
