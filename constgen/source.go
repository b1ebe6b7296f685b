package constgen

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/magiconair/properties"
	"github.com/teranos/propgen/errors"
)

// ErrSourceNotFound marks a source whose backing file does not exist.
var ErrSourceNotFound = errors.New("source not found")

// Entry is one key/value pair as read from a source.
type Entry struct {
	Key   string
	Value string
}

// Source is an ordered collection of entries with an origin label.
// Entries is called once, right before the source's declarations are written.
type Source interface {
	// Origin labels the source in the generated comment
	Origin() string
	// Entries reads the pairs in declaration order
	Entries() ([]Entry, error)
}

// FileSource reads a .properties file.
type FileSource struct {
	path  string
	label string
}

// NewFileSource creates a source for the properties file at path.
// The origin label is the file's base name.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, label: filepath.Base(path)}
}

// NewLabeledFileSource creates a file source whose origin label differs from
// the file name, e.g. a downloaded copy of a remote file.
func NewLabeledFileSource(path, label string) *FileSource {
	return &FileSource{path: path, label: label}
}

// Origin returns the file's label
func (s *FileSource) Origin() string {
	return s.label
}

// Path returns the file path being read
func (s *FileSource) Path() string {
	return s.path
}

// Entries parses the file. ${...} references are kept literally.
func (s *FileSource) Entries() ([]Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrapf(err, "opening %s", s.path), ErrSourceNotFound)
		}
		return nil, errors.Wrapf(err, "opening %s", s.path)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", s.path)
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", s.path)
	}

	keys := props.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		value, _ := props.Get(key)
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries, nil
}

// SetSource is an in-memory property bag. Entries come out sorted by key so
// output does not depend on map iteration order.
type SetSource struct {
	name  string
	props map[string]string
}

// NewSetSource creates a source over props labeled name.
func NewSetSource(name string, props map[string]string) *SetSource {
	copied := make(map[string]string, len(props))
	for k, v := range props {
		copied[k] = v
	}
	return &SetSource{name: name, props: copied}
}

// Origin returns the set's name
func (s *SetSource) Origin() string {
	return s.name
}

// Entries returns the pairs sorted by key
func (s *SetSource) Entries() ([]Entry, error) {
	keys := make([]string, 0, len(s.props))
	for k := range s.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Value: s.props[k]})
	}
	return entries, nil
}
