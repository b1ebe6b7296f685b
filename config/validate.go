package config

import (
	"github.com/teranos/propgen/errors"
	"github.com/teranos/propgen/runner"
	"github.com/teranos/propgen/version"
)

// Validate checks the file-level settings. Missing classname, destination or
// sources are left to runner.Config.Validate, which callers run first so
// those failures surface with their fixed messages.
func (c *Config) Validate() error {
	if _, err := runner.LookupDialect(c.Language); err != nil {
		return err
	}

	if err := version.Get().Satisfies(c.RequiredVersion); err != nil {
		return errors.WithHint(err, "upgrade propgen or relax required_version")
	}

	for i, p := range c.Paths {
		if len(p.Patterns) == 0 {
			return errors.Newf("paths[%d] (%s) has no patterns", i, p.Name)
		}
	}

	for i, ps := range c.PropertySets {
		if len(ps.Properties) == 0 && ps.EnvPrefix == "" {
			return errors.Newf("propertysets[%d] (%s) has neither properties nor env_prefix", i, ps.Name)
		}
	}

	return nil
}
