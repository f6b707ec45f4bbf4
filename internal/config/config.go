// Package config holds the launcher settings of the converter.
package config

import (
	"fmt"
	"strings"

	"numeral-converter/internal/logger"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "NUMCONV"

// Keys double as flag names; the environment variable is EnvPrefix_KEY.
const (
	KeyLogLevel = "log-level"
	KeyJSONLogs = "json-logs"
)

const (
	EnvLogLevel = EnvPrefix + "_LOG_LEVEL"
	EnvJSONLogs = EnvPrefix + "_JSON_LOGS"
)

type Config struct {
	LogLevel string
	JSONLogs bool
}

func Default() Config {
	return Config{
		LogLevel: "info",
		JSONLogs: false,
	}
}

// NewViper returns a viper instance seeded with defaults and bound to the
// NUMCONV_* environment.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyJSONLogs, d.JSONLogs)
}

// BindFlags binds the launcher flags present in flags. A flag set on the
// command line wins over the environment.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyLogLevel, KeyJSONLogs} {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("error binding flag '--%s': %w", key, err)
		}
	}
	return nil
}

// Load reads the merged defaults, environment and bound flags.
func Load(v *viper.Viper) Config {
	return Config{
		LogLevel: v.GetString(KeyLogLevel),
		JSONLogs: v.GetBool(KeyJSONLogs),
	}
}

// FromFlags layers defaults, environment and flags into a Config.
func FromFlags(flags *pflag.FlagSet) (Config, error) {
	v := NewViper()
	if err := BindFlags(v, flags); err != nil {
		return Config{}, err
	}
	return Load(v), nil
}

func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
