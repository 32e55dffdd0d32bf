package config

import (
	"fmt"

	"github.com/jonesrussell/market-validator/internal/logging"
)

// Config holds all configuration for the validation engine.
type Config struct {
	Service ServiceConfig  `yaml:"service"`
	Logging logging.Config `yaml:"logging"`
	Lexicon LexiconConfig  `yaml:"lexicon"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Debug   bool   `env:"APP_DEBUG" yaml:"debug"`
}

// LexiconConfig extends the built-in lexicons. Keyword and domain
// tables are tunable data assets rather than code; entries here are
// merged with the defaults at startup and immutable afterward.
type LexiconConfig struct {
	// ExtraContentDomains adds registrable domains to the content-site
	// list used by the result classifier (e.g. "example-forum.com").
	ExtraContentDomains []string `yaml:"extra_content_domains"`
	// ExtraKeywords adds keywords per signal category. Keys must be
	// one of: intensity, complaint, workaround.
	ExtraKeywords map[string][]string `yaml:"extra_keywords"`
	// ExtraExcludedPhrases adds phrases that suppress keyword matches
	// wherever they occur (e.g. "automation bias").
	ExtraExcludedPhrases []string `yaml:"extra_excluded_phrases"`
}

// Default configuration values.
const (
	defaultServiceName    = "market-validator"
	defaultServiceVersion = "1.0.0"
)

// SetDefaults applies default values to the config if not set.
func (c *Config) SetDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = defaultServiceName
	}
	if c.Service.Version == "" {
		c.Service.Version = defaultServiceVersion
	}
	c.Logging.SetDefaults()
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	for category := range c.Lexicon.ExtraKeywords {
		switch category {
		case "intensity", "complaint", "workaround":
		default:
			return fmt.Errorf("lexicon.extra_keywords: unknown category %q", category)
		}
	}
	return nil
}

// DefaultConfig returns a config with all defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}
