// Package typescript renders property constants as static readonly class members.
package typescript

import (
	"fmt"

	"github.com/teranos/propgen/constgen"
)

const indent = "  "

// Templates holds the declaration format per kind.
// Every numeric kind maps to number; Char is a one-character string.
var Templates = constgen.Templates{
	constgen.Int:    "static readonly %[1]s: number = %[2]s;",
	constgen.Bool:   "static readonly %[1]s: boolean = %[2]s;",
	constgen.Short:  "static readonly %[1]s: number = %[2]s;",
	constgen.Long:   "static readonly %[1]s: number = %[2]s;",
	constgen.Double: "static readonly %[1]s: number = %[2]s;",
	constgen.Float:  "static readonly %[1]s: number = %[2]s;",
	constgen.Char:   "static readonly %[1]s: string = '%[2]s';",
	constgen.String: "static readonly %[1]s: string = \"%[2]s\";",
}

var _ constgen.Dialect = (*Generator)(nil)

// Generator implements constgen.Dialect for TypeScript
type Generator struct{}

// NewGenerator creates a new TypeScript generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "typescript"
func (g *Generator) Language() string {
	return "typescript"
}

// FileExtension returns ".ts"
func (g *Generator) FileExtension() string {
	return ".ts"
}

// Header records the namespace in a comment; modules are addressed by path
func (g *Generator) Header(t constgen.Target) string {
	if len(t.Namespace) == 0 {
		return ""
	}
	return fmt.Sprintf("// Namespace: %s\n\n", t.Package())
}

// Open returns the exported class and optionally a private constructor
func (g *Generator) Open(t constgen.Target, constructor bool) string {
	s := fmt.Sprintf("export class %s {\n", t.SimpleName)
	if constructor {
		s += indent + "private constructor() {}\n"
	}
	return s
}

// Comment returns a // line comment
func (g *Generator) Comment(text string) string {
	return indent + "// " + text + "\n"
}

// Declaration renders a static readonly member
func (g *Generator) Declaration(kind constgen.Kind, name, value string) string {
	return Templates.Render(indent, kind, name, value)
}

// Close returns the closing brace of the class
func (g *Generator) Close(t constgen.Target) string {
	return "}\n"
}
