// Package config loads scaffolder settings from an optional YAML file and
// NGSCAFFOLD_* environment variables.
package config

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jakoblorz/go-ngscaffold/internal/naming"
	"github.com/spf13/viper"
)

// Environment variable prefix.
const envPrefix = "NGSCAFFOLD"

// suffixPattern is the kebab-case shape a suffix must have in file names.
var suffixPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Config holds the scaffolder settings.
type Config struct {
	// ModulesRoot is the project-relative directory the walk starts from.
	ModulesRoot string `mapstructure:"modulesRoot"`

	// Exclude lists directory names never offered by the walk.
	Exclude []string `mapstructure:"exclude"`

	// Suffix is the artifact kind inserted in file names ("<slug>.<suffix>.ts").
	Suffix string `mapstructure:"suffix"`

	// DefaultName is used when no usable name is entered.
	DefaultName string `mapstructure:"defaultName"`

	// RespectGitignore hides directories matched by the root .gitignore.
	RespectGitignore bool `mapstructure:"respectGitignore"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		ModulesRoot:      "src/",
		Exclude:          []string{"assets", "sass"},
		Suffix:           "service",
		DefaultName:      naming.DefaultName,
		RespectGitignore: true,
	}
}

// Loader reads configuration with viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment bindings set up.
func NewLoader() *Loader {
	v := viper.New()

	def := Default()
	v.SetDefault("modulesRoot", def.ModulesRoot)
	v.SetDefault("exclude", def.Exclude)
	v.SetDefault("suffix", def.Suffix)
	v.SetDefault("defaultName", def.DefaultName)
	v.SetDefault("respectGitignore", def.RespectGitignore)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("modulesRoot", envPrefix+"_MODULES_ROOT")
	_ = v.BindEnv("defaultName", envPrefix+"_DEFAULT_NAME")
	_ = v.BindEnv("respectGitignore", envPrefix+"_RESPECT_GITIGNORE")

	return &Loader{v: v}
}

// Load returns the defaults with environment variables applied, for runs
// without a config file.
func (l *Loader) Load() (*Config, error) {
	return l.decode()
}

// LoadData reads configuration from YAML already held in memory. name is only
// used in error messages.
func (l *Loader) LoadData(name string, data []byte) (*Config, error) {
	l.v.SetConfigType("yaml")
	if err := l.v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", name, err)
	}

	return l.decode()
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings that would produce unusable paths.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ModulesRoot) == "" {
		return fmt.Errorf("invalid config: modulesRoot must not be empty")
	}
	if strings.TrimSpace(c.Suffix) == "" {
		return fmt.Errorf("invalid config: suffix must not be empty")
	}
	if !suffixPattern.MatchString(c.Suffix) {
		return fmt.Errorf("invalid config: suffix %q must be lowercase words joined by hyphens, e.g. data-store", c.Suffix)
	}
	return nil
}
