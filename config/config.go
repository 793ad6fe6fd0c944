// Package config loads credbench settings from an optional YAML file and
// CREDBENCH_* environment variables. Command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultOperations is the presentation order of the threshold-credential
// protocol operations: issuance first, verification last. Operations not
// in the active list sort after all listed ones.
var DefaultOperations = []string{
	"token_request",
	"t_issue",
	"t_issue_no_verify",
	"aggregate_with_verify",
	"aggregate_no_verify",
	"prove",
	"verify",
}

// Config holds the extraction settings shared by the CLI commands.
type Config struct {
	Scheme     string   `mapstructure:"scheme"`
	Root       string   `mapstructure:"root"`
	Output     string   `mapstructure:"output"`
	Operations []string `mapstructure:"operations"`
	Strict     bool     `mapstructure:"strict"`
	Store      string   `mapstructure:"store"`
}

// Load reads configuration from path, or from ./credbench.yaml when path
// is empty. A missing default file is not an error; defaults and
// environment variables still apply.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("scheme", "t_utt")
	v.SetDefault("root", "target/criterion/t_utt")
	v.SetDefault("output", "")
	v.SetDefault("operations", DefaultOperations)
	v.SetDefault("strict", false)
	v.SetDefault("store", "")

	v.SetEnvPrefix("CREDBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("credbench")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}
