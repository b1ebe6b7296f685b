// Package rust renders property constants as associated consts of a unit-like struct.
package rust

import (
	"fmt"

	"github.com/teranos/propgen/constgen"
)

const indent = "    "

// Templates holds the declaration format per kind.
// Types are explicit, so literals carry no suffix.
var Templates = constgen.Templates{
	constgen.Int:    "pub const %[1]s: i32 = %[2]s;",
	constgen.Bool:   "pub const %[1]s: bool = %[2]s;",
	constgen.Short:  "pub const %[1]s: i16 = %[2]s;",
	constgen.Long:   "pub const %[1]s: i64 = %[2]s;",
	constgen.Double: "pub const %[1]s: f64 = %[2]s;",
	constgen.Float:  "pub const %[1]s: f32 = %[2]s;",
	constgen.Char:   "pub const %[1]s: char = '%[2]s';",
	constgen.String: "pub const %[1]s: &str = \"%[2]s\";",
}

var _ constgen.Dialect = (*Generator)(nil)

// Generator implements constgen.Dialect for Rust
type Generator struct{}

// NewGenerator creates a new Rust generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "rust"
func (g *Generator) Language() string {
	return "rust"
}

// FileExtension returns ".rs"
func (g *Generator) FileExtension() string {
	return ".rs"
}

// Header records the namespace in a comment; modules are addressed by path
func (g *Generator) Header(t constgen.Target) string {
	if len(t.Namespace) == 0 {
		return ""
	}
	return fmt.Sprintf("// Namespace: %s\n\n", t.Package())
}

// Open declares the struct and starts its impl block. With constructor set the
// struct gets a private field so it cannot be built outside this module.
func (g *Generator) Open(t constgen.Target, constructor bool) string {
	var s string
	if constructor {
		s = fmt.Sprintf("pub struct %s {\n"+indent+"_private: (),\n}\n\n", t.SimpleName)
	} else {
		s = fmt.Sprintf("pub struct %s;\n\n", t.SimpleName)
	}
	s += "#[allow(dead_code)]\n"
	s += fmt.Sprintf("impl %s {\n", t.SimpleName)
	return s
}

// Comment returns a // line comment
func (g *Generator) Comment(text string) string {
	return indent + "// " + text + "\n"
}

// Declaration renders an associated const
func (g *Generator) Declaration(kind constgen.Kind, name, value string) string {
	return Templates.Render(indent, kind, name, value)
}

// Close returns the closing brace of the impl block
func (g *Generator) Close(t constgen.Target) string {
	return "}\n"
}
