// Package config reads the process knobs that sit outside the simulation:
// seed, audio, logging. Values come from defaults, an optional YAML file,
// ECONFLOW_* environment variables and bound command-line flags, in
// increasing priority.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "ECONFLOW"

const (
	KeyConfig   = "config"
	KeySeed     = "seed"
	KeyMute     = "mute"
	KeyLogLevel = "log-level"
	KeyJournal  = "journal"
	KeyLogFile  = "log-file"
)

// DefaultSeed makes unconfigured runs reproducible.
const DefaultSeed = 1983

type Options struct {
	Seed     uint64
	Mute     bool
	LogLevel string
	Journal  bool
	LogFile  string
}

// New returns a viper instance with defaults and environment lookup set up.
// Flags may be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySeed, DefaultSeed)
	v.SetDefault(KeyMute, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyJournal, false)
	return v
}

// Load reads the optional config file named by the "config" key and returns
// the resolved options.
func Load(v *viper.Viper) (Options, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	seed := v.GetInt64(KeySeed)
	if seed < 0 {
		return Options{}, fmt.Errorf("seed must not be negative, got %d", seed)
	}
	return Options{
		Seed:     uint64(seed),
		Mute:     v.GetBool(KeyMute),
		LogLevel: v.GetString(KeyLogLevel),
		Journal:  v.GetBool(KeyJournal),
		LogFile:  v.GetString(KeyLogFile),
	}, nil
}
