package constgen

import "fmt"

// Dialect renders the pieces of a generated file for one target language.
// Every method returns complete lines including the trailing newline, or ""
// when the language has nothing to write at that point.
type Dialect interface {
	// Language returns the dialect name, e.g. "java"
	Language() string

	// FileExtension returns the output file extension including the dot
	FileExtension() string

	// Header returns the namespace declaration (and any preamble) for t
	Header(t Target) string

	// Open returns the container opening; with constructor set it also
	// declares the private no-arg constructor that prevents instantiation.
	Open(t Target, constructor bool) string

	// Comment returns a single-line comment recording a source origin
	Comment(text string) string

	// Declaration renders one constant. name is already a final identifier.
	Declaration(kind Kind, name, value string) string

	// Close returns the container closing
	Close(t Target) string
}

// Format renders key=value as a declaration line: the kind is inferred,
// the identifier derived from the key and the dialect applies its literal syntax.
func Format(d Dialect, key, value string) string {
	kind := Classify(key, value)
	return d.Declaration(kind, Identifier(kind, key), value)
}

// Templates maps each kind to a format with two verbs: %[1]s is the
// identifier and %[2]s the raw value. Dialects keep one table each.
type Templates map[Kind]string

// Render formats one declaration line with the given indent.
// Kinds missing from the table fall back to the String template.
func (t Templates) Render(indent string, kind Kind, name, value string) string {
	tmpl, ok := t[kind]
	if !ok {
		tmpl = t[String]
	}
	return indent + fmt.Sprintf(tmpl, name, value) + "\n"
}

// Missing returns the kinds that have no template, for dialect tests.
func (t Templates) Missing() []Kind {
	var missing []Kind
	for _, k := range Kinds {
		if _, ok := t[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}
