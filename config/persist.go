package config

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/teranos/propgen/errors"
	"github.com/teranos/propgen/runner"
)

// ErrConfigExists is returned by WriteFile when the target exists and force is off.
var ErrConfigExists = errors.New("config file already exists")

// Starter returns the configuration written by propgen init.
func Starter(className string) *Config {
	if className == "" {
		className = "com.example.Config"
	}
	return &Config{
		ClassName:   className,
		DestDir:     "gen",
		Language:    runner.DefaultLanguage,
		Constructor: true,
		Paths: []PathSet{
			{Name: "main", Patterns: []string{"src/main/resources/**/*.properties"}},
		},
		PropertySets: []PropertySet{
			{Name: "build", EnvPrefix: "BUILD", Properties: map[string]string{"app.name": "example"}},
		},
	}
}

// WriteFile encodes cfg as TOML at path. An existing file is only replaced
// when force is set, after rotating it into up to three backups.
func WriteFile(path string, cfg *Config, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return errors.WithHint(errors.Wrapf(ErrConfigExists, "%s", path), "use --force to overwrite")
		}
		if err := createBackup(path); err != nil {
			return errors.Wrap(err, "failed to create backup")
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// createBackup rotates backups (.back1, .back2, .back3) before a config is replaced
func createBackup(configPath string) error {
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete old backup %s", back3)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, 0o644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}
