// Package config resolves the settings of the ksm application.
//
// Settings come, by order of precedence, from the command line (handled by
// the caller), KSM_* environment variables (optionally declared in a .env
// file), a ksm.yaml configuration file, and finally built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "KSM"

// Setting keys.
const (
	KeyDataFile = "data_file"
	KeyLogLevel = "log_level"
	KeyNotify   = "notify"
)

// Config holds the application settings.
type Config struct {
	DataFile string `mapstructure:"data_file"`
	LogLevel string `mapstructure:"log_level"`
	Notify   string `mapstructure:"notify"`

	// File is the configuration file that was read, empty if none.
	File string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataFile: "test.txt",
		LogLevel: "warn",
		Notify:   "desktop,log",
	}
}

// LoadDotEnv declares the variables of a .env file into the environment.
// Variables already set are not overridden, a missing file is ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the settings.
//
// If configFile is empty, a ksm.yaml file is searched in the working
// directory and then in $HOME/.config/ksm, and it is fine to find none.
// An explicit configFile must exist.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyDataFile, def.DataFile)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyNotify, def.Notify)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("ksm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ksm")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("%s is required", KeyDataFile)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid %s %q, valid levels are debug, info, warn and error", KeyLogLevel, c.LogLevel)
	}
	return nil
}
