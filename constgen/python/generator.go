// Package python renders property constants as annotated class attributes.
package python

import (
	"fmt"

	"github.com/teranos/propgen/constgen"
)

const indent = "    "

// Templates holds the declaration format per kind.
var Templates = constgen.Templates{
	constgen.Int:    "%[1]s: int = %[2]s",
	constgen.Bool:   "%[1]s: bool = %[2]s",
	constgen.Short:  "%[1]s: int = %[2]s",
	constgen.Long:   "%[1]s: int = %[2]s",
	constgen.Double: "%[1]s: float = %[2]s",
	constgen.Float:  "%[1]s: float = %[2]s",
	constgen.Char:   "%[1]s: str = '%[2]s'",
	constgen.String: "%[1]s: str = \"%[2]s\"",
}

var _ constgen.Dialect = (*Generator)(nil)

// Generator implements constgen.Dialect for Python
type Generator struct{}

// NewGenerator creates a new Python generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "python"
func (g *Generator) Language() string {
	return "python"
}

// FileExtension returns ".py"
func (g *Generator) FileExtension() string {
	return ".py"
}

// Header records the namespace in a comment; packages are addressed by path
func (g *Generator) Header(t constgen.Target) string {
	if len(t.Namespace) == 0 {
		return ""
	}
	return fmt.Sprintf("# Namespace: %s\n\n", t.Package())
}

// Open returns the class statement with a docstring so the body is never empty.
// The constructor raises to keep the class a pure namespace.
func (g *Generator) Open(t constgen.Target, constructor bool) string {
	s := fmt.Sprintf("class %s:\n", t.SimpleName)
	s += indent + "\"\"\"Constants generated from property files.\"\"\"\n"
	if constructor {
		s += fmt.Sprintf("\n"+indent+"def __init__(self) -> None:\n"+indent+indent+"raise TypeError(\"%s is not instantiable\")\n\n", t.SimpleName)
	}
	return s
}

// Comment returns a # line comment
func (g *Generator) Comment(text string) string {
	return indent + "# " + text + "\n"
}

// Declaration renders a class attribute. The Java-style boolean literals
// true/false are spelled True/False; any other value is written as is.
func (g *Generator) Declaration(kind constgen.Kind, name, value string) string {
	if kind == constgen.Bool {
		switch value {
		case "true":
			value = "True"
		case "false":
			value = "False"
		}
	}
	return Templates.Render(indent, kind, name, value)
}

// Close writes nothing; indentation ends the class
func (g *Generator) Close(t constgen.Target) string {
	return ""
}
