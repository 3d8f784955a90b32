package config

import (
	"time"

	"github.com/jmgilman/go/strongname/sn"
)

// Config is the effective sntool configuration.
type Config struct {
	// ToolPath pins sn.exe. Empty means search for it.
	ToolPath string `json:"tool_path" mapstructure:"tool_path" yaml:"tool_path"`
	// Container is the default key container for resign.
	Container string `json:"container" mapstructure:"container" yaml:"container"`
	// ForceVerification makes verify pass -vf.
	ForceVerification bool `json:"force_verification" mapstructure:"force_verification" yaml:"force_verification"`
	// Timeout bounds each sn.exe run. Zero means no timeout.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"log_level" mapstructure:"log_level" yaml:"log_level"`
	// Candidates controls the on-disk search.
	Candidates CandidatesConfig `json:"candidates" mapstructure:"candidates" yaml:"candidates"`
}

// CandidatesConfig lists the SDK versions and layouts searched on disk.
type CandidatesConfig struct {
	Versions []string `json:"versions" mapstructure:"versions" yaml:"versions"`
	Layouts  []string `json:"layouts" mapstructure:"layouts" yaml:"layouts"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	c := sn.DefaultCandidates()
	return &Config{
		LogLevel: "warn",
		Candidates: CandidatesConfig{
			Versions: c.Versions,
			Layouts:  c.Layouts,
		},
	}
}

// SearchCandidates returns the configured disk candidates.
func (c *Config) SearchCandidates() sn.Candidates {
	return sn.Candidates{
		Versions: c.Candidates.Versions,
		Layouts:  c.Candidates.Layouts,
	}
}

// Settings returns invocation settings seeded from the configuration.
func (c *Config) Settings() *sn.Settings {
	return &sn.Settings{
		Container:         c.Container,
		ForceVerification: c.ForceVerification,
		ToolPath:          c.ToolPath,
		Timeout:           c.Timeout,
	}
}
