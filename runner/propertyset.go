package runner

import (
	"os"
	"strings"

	"github.com/teranos/propgen/constgen"
)

// Source builds the in-memory source for the set. Environment variables named
// <EnvPrefix>_<REST> become key rest lowercased with '_' turned into '.', so
// APP_INT_PORT with prefix APP yields int.port. They override inline
// properties of the same key.
func (p PropertySet) Source(environ []string) *constgen.SetSource {
	props := make(map[string]string, len(p.Properties))
	for k, v := range p.Properties {
		props[k] = v
	}

	if p.EnvPrefix != "" {
		for k, v := range envProperties(p.EnvPrefix, environ) {
			props[k] = v
		}
	}

	return constgen.NewSetSource(p.label(), props)
}

func (p PropertySet) label() string {
	if p.Name == "" {
		return DefaultPropertySetName
	}
	return p.Name
}

func envProperties(prefix string, environ []string) map[string]string {
	prefix = strings.TrimSuffix(prefix, "_") + "_"
	props := make(map[string]string)

	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
			continue
		}
		key := strings.ToLower(strings.ReplaceAll(name[len(prefix):], "_", "."))
		props[key] = value
	}
	return props
}

func propertySetSources(sets []PropertySet) []constgen.Source {
	environ := os.Environ()
	sources := make([]constgen.Source, 0, len(sets))
	for _, set := range sets {
		sources = append(sources, set.Source(environ))
	}
	return sources
}
