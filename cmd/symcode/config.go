package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds command line configuration.
type Config struct {
	Table   string // path of an alphabet table file, empty for the built-in table
	Verbose bool
}

// loadConfig reads configuration from file, env and flags, in increasing
// priority. Env var overrides use prefix SYMCODE_.
func loadConfig(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("table", "")
	v.SetDefault("verbose", false)

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("SYMCODE_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "symcode"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SYMCODE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	if flags != nil {
		for _, name := range []string{"table", "verbose"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
