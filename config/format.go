package config

import (
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/propgen/errors"
)

// Formats lists the encodings accepted by Marshal
var Formats = []string{"toml", "yaml", "json"}

// Marshal renders the effective configuration for display.
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "toml":
		return toml.Marshal(cfg)
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return nil, errors.Newf("unsupported format: %s (supported: %s)", format, strings.Join(Formats, ", "))
}
