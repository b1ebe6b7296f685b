package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/teranos/propgen/errors"
)

// New builds the viper instance for a run. configFile overrides the upward
// search for propgen.toml; an explicitly named file must exist.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	path := configFile
	if path == "" {
		path = FindProjectConfig()
	}
	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return v, nil
}

// Load finds and reads the project configuration
func Load(configFile string) (*Config, error) {
	v, err := New(configFile)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadFromFile loads configuration from a specific file path without
// environment overrides
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals a prepared viper instance. Property sets are read
// from the config file viper used, if any.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.File = v.ConfigFileUsed()
	if cfg.File == "" {
		return &cfg, nil
	}

	if abs, err := filepath.Abs(cfg.File); err == nil {
		cfg.File = abs
	}

	sets, err := readPropertySets(cfg.File)
	if err != nil {
		return nil, err
	}
	cfg.PropertySets = sets
	return &cfg, nil
}

// readPropertySets decodes only the [[propertysets]] tables, keeping property
// keys exactly as written.
func readPropertySets(path string) ([]PropertySet, error) {
	var file struct {
		PropertySets []PropertySet `toml:"propertysets"`
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errors.Wrapf(err, "failed to read property sets from %s", path)
	}
	return file.PropertySets, nil
}

// FindProjectConfig searches for propgen.toml by walking up the directory tree
// from the working directory. Returns "" when none is found.
func FindProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigFrom(dir)
}

func findConfigFrom(dir string) string {
	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
