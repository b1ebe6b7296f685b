package config

import (
	"github.com/spf13/viper"

	"github.com/teranos/propgen/runner"
)

// SetDefaults configures default values for all configuration options.
// Every key gets a default so AutomaticEnv overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("classname", "")
	v.SetDefault("dest_dir", "")
	v.SetDefault("base_dir", "")
	v.SetDefault("language", runner.DefaultLanguage)
	v.SetDefault("constructor", true)
	v.SetDefault("required_version", "")
}
