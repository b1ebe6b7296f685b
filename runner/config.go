// Package runner turns a Config into a generated constants file: it validates
// the request, resolves sources, plans the output and drives the emitter.
package runner

import (
	"github.com/teranos/propgen/errors"
)

// DefaultPropertySetName labels a property set that was declared without a name.
const DefaultPropertySetName = "propertyset"

// Config describes one generation run. It is passed wholesale; the zero value
// of every optional field selects the default behavior.
type Config struct {
	// ClassName is the fully qualified name of the generated container, e.g. "com.example.P"
	ClassName string
	// DestDir is the output root, relative to BaseDir unless absolute
	DestDir string
	// BaseDir anchors DestDir and relative path patterns (default: working directory)
	BaseDir string
	// Language selects the dialect (default: java)
	Language string
	// NoConstructor omits the private constructor declaration
	NoConstructor bool
	// PropertySets are emitted first, in declaration order
	PropertySets []PropertySet
	// Paths are emitted after the property sets, in declaration order
	Paths []PathSet
}

// PathSet is a named group of property-file patterns. A pattern is a literal
// path, a doublestar glob or a remote URL understood by go-getter.
type PathSet struct {
	Name     string
	Patterns []string
}

// PropertySet is an in-memory bag of properties, optionally extended with
// environment variables carrying EnvPrefix.
type PropertySet struct {
	Name       string
	Properties map[string]string
	EnvPrefix  string
}

// Validate checks the required parameters in a fixed order so the first
// missing one is reported. It performs no I/O.
func (c Config) Validate() error {
	if c.ClassName == "" {
		return errors.WithHint(errors.WithStack(errors.ErrClassnameNotSet),
			"pass --classname or set classname in propgen.toml")
	}
	if c.DestDir == "" {
		return errors.WithHint(errors.WithStack(errors.ErrDestDirNotSet),
			"pass --destdir or set dest_dir in propgen.toml")
	}
	if !c.hasSources() {
		return errors.WithHint(errors.WithStack(errors.ErrNoSources),
			"pass --path or declare [[paths]] / [[propertysets]] in propgen.toml")
	}
	return nil
}

func (c Config) hasSources() bool {
	return len(c.Paths) > 0 || len(c.PropertySets) > 0
}

// Constructor reports whether the private constructor is emitted.
func (c Config) Constructor() bool {
	return !c.NoConstructor
}
