// Package config loads epochctl configuration from file, environment and
// defaults.
//
// Configuration sources, highest precedence first:
//  1. Environment variables (EPOCHCTL_*)
//  2. Configuration file (YAML)
//  3. Default values
//
// CLI flags override the loaded values in the commands themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/marmos91/epochctl/internal/caltime"
	"github.com/marmos91/epochctl/internal/epoch"
)

// Config is the epochctl configuration.
type Config struct {
	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Convert controls conversion behavior.
	Convert ConvertConfig `mapstructure:"convert" yaml:"convert"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level: DEBUG, INFO, WARN or ERROR.
	Level string `mapstructure:"level" yaml:"level"`

	// Format is the log encoding: text or json.
	Format string `mapstructure:"format" yaml:"format"`

	// Output is where logs go: stderr, stdout, or a file path.
	Output string `mapstructure:"output" yaml:"output"`
}

// ConvertConfig controls conversion behavior.
type ConvertConfig struct {
	// Timezone is the IANA zone name used for "local" output renderings.
	// Empty means the system's local zone, captured once at startup.
	Timezone string `mapstructure:"timezone" yaml:"timezone,omitempty"`

	// MaxYear bounds resolution inference: a bare integer is read at the
	// coarsest resolution that keeps its date at or before this year.
	MaxYear int `mapstructure:"max_year" yaml:"max_year"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in zero-valued fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
	if cfg.Convert.MaxYear == 0 {
		cfg.Convert.MaxYear = epoch.MaxYear
	}
}

// Validate checks the configuration for values the rest of the program
// would reject later.
func Validate(cfg *Config) error {
	switch strings.ToUpper(cfg.Logging.Level) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("logging.level %q: must be one of DEBUG, INFO, WARN, ERROR", cfg.Logging.Level)
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q: must be text or json", cfg.Logging.Format)
	}
	if cfg.Convert.MaxYear < epoch.MinYear || cfg.Convert.MaxYear > epoch.MaxYear {
		return fmt.Errorf("convert.max_year %d: must be within [%d, %d]",
			cfg.Convert.MaxYear, epoch.MinYear, epoch.MaxYear)
	}
	if cfg.Convert.Timezone != "" {
		if _, err := (caltime.SystemZones{}).Resolve(cfg.Convert.Timezone); err != nil {
			return fmt.Errorf("convert.timezone: %w", err)
		}
	}
	return nil
}

// Load loads configuration from file, environment and defaults. An empty
// configPath uses the default location; a missing file is not an error and
// yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	found, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}
	if !found {
		return Default(), nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes the configuration as YAML to path, creating parent
// directories as needed.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// InitConfig writes a default configuration file at the default location,
// refusing to overwrite an existing one unless force is set. It returns the
// written path.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}
	if err := SaveConfig(Default(), path); err != nil {
		return "", err
	}
	return path, nil
}

// setupViper configures environment variable support and the config file
// search. Environment variables use the EPOCHCTL_ prefix with underscores,
// e.g. EPOCHCTL_LOGGING_LEVEL=DEBUG.
func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("EPOCHCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(getConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

// readConfigFile reads the config file if one exists. A missing file is not
// an error.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// getConfigDir returns the configuration directory: $XDG_CONFIG_HOME/epochctl
// when set, otherwise ~/.config/epochctl.
func getConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "epochctl")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "epochctl")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
