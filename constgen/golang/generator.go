// Package golang renders property constants as a Go const block.
//
// Go has no class-like container: the simple name documents the const block and
// becomes the package name when the class name has no namespace. There is no
// constructor to hide, so Open ignores the flag.
package golang

import (
	"fmt"
	"strings"

	"github.com/teranos/propgen/constgen"
)

const indent = "\t"

// Templates holds the declaration format per kind.
// Go has no literal suffixes; the declared type carries the width.
var Templates = constgen.Templates{
	constgen.Int:    "%[1]s int = %[2]s",
	constgen.Bool:   "%[1]s bool = %[2]s",
	constgen.Short:  "%[1]s int16 = %[2]s",
	constgen.Long:   "%[1]s int64 = %[2]s",
	constgen.Double: "%[1]s float64 = %[2]s",
	constgen.Float:  "%[1]s float32 = %[2]s",
	constgen.Char:   "%[1]s rune = '%[2]s'",
	constgen.String: "%[1]s string = \"%[2]s\"",
}

var _ constgen.Dialect = (*Generator)(nil)

// Generator implements constgen.Dialect for Go
type Generator struct{}

// NewGenerator creates a new Go generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "go"
func (g *Generator) Language() string {
	return "go"
}

// FileExtension returns ".go"
func (g *Generator) FileExtension() string {
	return ".go"
}

// PackageName returns the Go package clause name for t: the last namespace
// segment, or the lowercased simple name without a namespace.
func PackageName(t constgen.Target) string {
	if len(t.Namespace) == 0 {
		return strings.ToLower(t.SimpleName)
	}
	return t.Namespace[len(t.Namespace)-1]
}

// Header returns the generated-code marker and the package clause
func (g *Generator) Header(t constgen.Target) string {
	return fmt.Sprintf("// Code generated by propgen. DO NOT EDIT.\n\npackage %s\n\n", PackageName(t))
}

// Open starts the const block
func (g *Generator) Open(t constgen.Target, constructor bool) string {
	return fmt.Sprintf("// %s constants.\nconst (\n", t.SimpleName)
}

// Comment returns a // line comment
func (g *Generator) Comment(text string) string {
	return indent + "// " + text + "\n"
}

// Declaration renders a typed constant
func (g *Generator) Declaration(kind constgen.Kind, name, value string) string {
	return Templates.Render(indent, kind, name, value)
}

// Close ends the const block
func (g *Generator) Close(t constgen.Target) string {
	return ")\n"
}
