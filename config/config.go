// Package config provides configuration loading and management for SoilVoc.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"

	"github.com/soilwise-he/soilvoc/vocabulary/soilhealth"
)

// Config represents the complete SoilVoc configuration
type Config struct {
	Scheme    SchemeConfig    `yaml:"scheme"`
	Restore   RestoreConfig   `yaml:"restore"`
	Interlink InterlinkConfig `yaml:"interlink"`
	Serve     ServeConfig     `yaml:"serve"`
}

// SchemeConfig describes the concept scheme the tools operate on
type SchemeConfig struct {
	// URI is the concept scheme IRI
	URI string `yaml:"uri"`
	// Lang is the language tag for labels and concept definitions
	Lang string `yaml:"lang"`
	// ProcedurePrefixes overrides the namespace prefixes that mark a row
	// as a measurement procedure (empty = built-in GLOSIS prefixes)
	ProcedurePrefixes []string `yaml:"procedure_prefixes"`
}

// RestoreConfig configures the CSV restore and verification step
type RestoreConfig struct {
	// LiteralDiffLimit caps the literal differences shown in verification
	LiteralDiffLimit int `yaml:"literal_diff_limit"`
	// StructuralDiffLimit caps the triple differences shown per direction
	StructuralDiffLimit int `yaml:"structural_diff_limit"`
}

// InterlinkConfig configures thesaurus discovery for the interlink step
type InterlinkConfig struct {
	// ThesaurusDir is the directory holding thesaurus dump CSV files
	ThesaurusDir string `yaml:"thesaurus_dir"`
	// Pattern is the glob used to discover dumps beneath ThesaurusDir
	Pattern string `yaml:"pattern"`
}

// ServeConfig configures the preview server
type ServeConfig struct {
	// Addr is the listen address
	Addr string `yaml:"addr"`
	// Debounce is how long to coalesce file change events before re-rendering
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Scheme: SchemeConfig{
			URI:  soilhealth.DefaultSchemeIRI,
			Lang: "en",
		},
		Restore: RestoreConfig{
			LiteralDiffLimit:    10,
			StructuralDiffLimit: 25,
		},
		Interlink: InterlinkConfig{
			ThesaurusDir: "ontovocabs",
			Pattern:      "*.csv",
		},
		Serve: ServeConfig{
			Addr:     ":8080",
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Scheme),
		validation.Field(&c.Restore),
		validation.Field(&c.Interlink),
		validation.Field(&c.Serve),
	)
}

// Validate checks the scheme section
func (c SchemeConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.URI, validation.Required, is.URL),
		validation.Field(&c.Lang, validation.Required),
	)
}

// Validate checks the restore section
func (c RestoreConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.LiteralDiffLimit, validation.Min(0)),
		validation.Field(&c.StructuralDiffLimit, validation.Min(0)),
	)
}

// Validate checks the interlink section
func (c InterlinkConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ThesaurusDir, validation.Required),
		validation.Field(&c.Pattern, validation.Required),
	)
}

// Validate checks the serve section
func (c ServeConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.Debounce, validation.Min(time.Duration(0))),
	)
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Scheme
	if other.Scheme.URI != "" {
		c.Scheme.URI = other.Scheme.URI
	}
	if other.Scheme.Lang != "" {
		c.Scheme.Lang = other.Scheme.Lang
	}
	if len(other.Scheme.ProcedurePrefixes) > 0 {
		c.Scheme.ProcedurePrefixes = other.Scheme.ProcedurePrefixes
	}

	// Restore
	if other.Restore.LiteralDiffLimit != 0 {
		c.Restore.LiteralDiffLimit = other.Restore.LiteralDiffLimit
	}
	if other.Restore.StructuralDiffLimit != 0 {
		c.Restore.StructuralDiffLimit = other.Restore.StructuralDiffLimit
	}

	// Interlink
	if other.Interlink.ThesaurusDir != "" {
		c.Interlink.ThesaurusDir = other.Interlink.ThesaurusDir
	}
	if other.Interlink.Pattern != "" {
		c.Interlink.Pattern = other.Interlink.Pattern
	}

	// Serve
	if other.Serve.Addr != "" {
		c.Serve.Addr = other.Serve.Addr
	}
	if other.Serve.Debounce != 0 {
		c.Serve.Debounce = other.Serve.Debounce
	}
}
