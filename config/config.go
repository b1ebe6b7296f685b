// Package config loads propgen.toml into a generation request.
//
// Sources, lowest to highest precedence: built-in defaults, the project
// config file, PROPGEN_* environment variables, command-line flags bound to
// the same viper instance by the caller.
package config

import (
	"path/filepath"

	"github.com/teranos/propgen/runner"
)

// FileName is the project config file looked up from the working directory upwards.
const FileName = "propgen.toml"

// EnvPrefix prefixes environment overrides, e.g. PROPGEN_DEST_DIR.
const EnvPrefix = "PROPGEN"

// Config represents a propgen.toml file
type Config struct {
	ClassName       string `mapstructure:"classname" toml:"classname" yaml:"classname" json:"classname"`
	DestDir         string `mapstructure:"dest_dir" toml:"dest_dir" yaml:"dest_dir" json:"dest_dir"`
	BaseDir         string `mapstructure:"base_dir" toml:"base_dir,omitempty" yaml:"base_dir,omitempty" json:"base_dir,omitempty"`
	Language        string `mapstructure:"language" toml:"language" yaml:"language" json:"language"`
	Constructor     bool   `mapstructure:"constructor" toml:"constructor" yaml:"constructor" json:"constructor"`
	RequiredVersion string `mapstructure:"required_version" toml:"required_version,omitempty" yaml:"required_version,omitempty" json:"required_version,omitempty"`

	Paths []PathSet `mapstructure:"paths" toml:"paths,omitempty" yaml:"paths,omitempty" json:"paths,omitempty"`

	// PropertySets are decoded straight from the file: viper folds key case
	// and splits dotted keys, both of which would corrupt property names.
	PropertySets []PropertySet `mapstructure:"-" toml:"propertysets,omitempty" yaml:"propertysets,omitempty" json:"propertysets,omitempty"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-" toml:"-" yaml:"-" json:"-"`
}

// PathSet is a [[paths]] table
type PathSet struct {
	Name     string   `mapstructure:"name" toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Patterns []string `mapstructure:"patterns" toml:"patterns" yaml:"patterns" json:"patterns"`
}

// PropertySet is a [[propertysets]] table
type PropertySet struct {
	Name       string            `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	EnvPrefix  string            `toml:"env_prefix,omitempty" yaml:"env_prefix,omitempty" json:"env_prefix,omitempty"`
	Properties map[string]string `toml:"properties,omitempty" yaml:"properties,omitempty" json:"properties,omitempty"`
}

// Dir returns the directory relative settings are anchored to: the config
// file's directory, or "" (the working directory) without a file.
func (c *Config) Dir() string {
	if c.File == "" {
		return ""
	}
	return filepath.Dir(c.File)
}

// RunnerConfig converts the file representation into a generation request.
// A relative base_dir is resolved against the config file's directory.
func (c *Config) RunnerConfig() runner.Config {
	baseDir := c.BaseDir
	if baseDir == "" {
		baseDir = c.Dir()
	} else if !filepath.IsAbs(baseDir) && c.Dir() != "" {
		baseDir = filepath.Join(c.Dir(), baseDir)
	}

	rc := runner.Config{
		ClassName:     c.ClassName,
		DestDir:       c.DestDir,
		BaseDir:       baseDir,
		Language:      c.Language,
		NoConstructor: !c.Constructor,
	}

	for _, ps := range c.PropertySets {
		rc.PropertySets = append(rc.PropertySets, runner.PropertySet{
			Name:       ps.Name,
			Properties: ps.Properties,
			EnvPrefix:  ps.EnvPrefix,
		})
	}
	for _, p := range c.Paths {
		rc.Paths = append(rc.Paths, runner.PathSet{Name: p.Name, Patterns: p.Patterns})
	}
	return rc
}
