// Package config provides a reusable loader for extractor configuration
// files and environment variables. It is versioned so that applications can
// depend on a stable API contract.
//
// Version: v0.1.0
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/synnergy-labs/chainstate-extractor/pkg/utils"
)

// Version is the semantic version of this configuration package.
const Version = "v0.1.0"

// Config is the unified configuration for an extractor process, read from a
// YAML file named default.yaml (plus an optional env-named override) in
// cmd/extractor/config or config. No such file ships with the repository.
type Config struct {
	Extractor struct {
		Name       string `mapstructure:"name" json:"name"`
		Chain      string `mapstructure:"chain" json:"chain"`
		StartBlock uint64 `mapstructure:"start_block" json:"start_block"`
		ModuleHash string `mapstructure:"module_hash" json:"module_hash"`
	} `mapstructure:"extractor" json:"extractor"`

	Source struct {
		Endpoint string `mapstructure:"endpoint" json:"endpoint"`
		APIKey   string `mapstructure:"api_key" json:"api_key"`
	} `mapstructure:"source" json:"source"`

	Gateway struct {
		Endpoint string `mapstructure:"endpoint" json:"endpoint"`
		BatchMax int    `mapstructure:"batch_max" json:"batch_max"`
	} `mapstructure:"gateway" json:"gateway"`

	Logging struct {
		Level string `mapstructure:"level" json:"level"`
		File  string `mapstructure:"file" json:"file"`
	} `mapstructure:"logging" json:"logging"`
}

// AppConfig holds the configuration loaded via Load or LoadFromEnv.
var AppConfig Config

// Load reads configuration files and merges any environment-specific
// overrides. The resulting configuration is stored in AppConfig and
// returned.
//
// The function uses the provided environment name to merge additional
// config files. If env is empty, only the default configuration is loaded.
func Load(env string) (*Config, error) {
	viper.SetConfigName("default")
	viper.AddConfigPath("cmd/extractor/config")
	viper.AddConfigPath("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, utils.Wrap(err, "load config")
	}

	if env != "" {
		viper.SetConfigName(env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("merge %s config", env))
		}
	}

	// nested keys map to underscore-separated variables (source.endpoint ->
	// SOURCE_ENDPOINT)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // picks up from .env

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, utils.Wrap(err, "unmarshal config")
	}
	return &AppConfig, nil
}

// LoadFromEnv loads configuration using the EXTRACTOR_ENV environment
// variable.
func LoadFromEnv() (*Config, error) {
	return Load(utils.EnvOrDefault("EXTRACTOR_ENV", ""))
}
