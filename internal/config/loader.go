package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".amd2esm"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for tool settings.
const envPrefix = "AMD2ESM"

// Load reads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file
// path. Otherwise the config file is searched in CWD and $HOME. A
// missing config file is not an error; defaults are used. Validation
// is deferred to the caller so CLI flags can fill gaps first.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("output", DefaultOutput)
	viperCfg.SetDefault("report.record_path", DefaultRecordPath)
	viperCfg.SetDefault("report.summary_path", DefaultSummaryPath)
	viperCfg.SetDefault("report.patches", false)
	viperCfg.SetDefault("report.patch_dir", DefaultPatchDir)
	viperCfg.SetDefault("snapshot.git", true)
	viperCfg.SetDefault("discovery.extra_ignore", []string{})
	viperCfg.SetDefault("discovery.skip_vendored", true)
}
