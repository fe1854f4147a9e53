// Package config provides configuration loading and validation for the
// conversion tool.
package config

import (
	"errors"
)

// Sentinel validation errors.
var (
	ErrMissingSource = errors.New("source directory is required")
	ErrMissingOutput = errors.New("output directory is required")
)

// Default configuration values.
const (
	DefaultOutput      = "./metacatui-es6"
	DefaultRecordPath  = "record-files-edited.csv"
	DefaultSummaryPath = "conversion-summary.yaml"
	DefaultPatchDir    = "conversion-patches"
)

// Config holds all configuration for a conversion run.
type Config struct {
	Source    string          `mapstructure:"source"`
	Output    string          `mapstructure:"output"`
	Report    ReportConfig    `mapstructure:"report"`
	Snapshot  SnapshotConfig  `mapstructure:"snapshot"`
	Discovery DiscoveryConfig `mapstructure:"discovery"`
}

// ReportConfig holds report output settings.
type ReportConfig struct {
	RecordPath  string `mapstructure:"record_path"`
	SummaryPath string `mapstructure:"summary_path"`
	Patches     bool   `mapstructure:"patches"`
	PatchDir    string `mapstructure:"patch_dir"`
}

// SnapshotConfig holds snapshot settings.
type SnapshotConfig struct {
	Git bool `mapstructure:"git"`
}

// DiscoveryConfig holds file discovery settings.
type DiscoveryConfig struct {
	ExtraIgnore  []string `mapstructure:"extra_ignore"`
	SkipVendored bool     `mapstructure:"skip_vendored"`
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Source == "" {
		return ErrMissingSource
	}
	if c.Output == "" {
		return ErrMissingOutput
	}
	return nil
}
