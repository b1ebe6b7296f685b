// Package java renders property constants as a Java utility class.
package java

import (
	"fmt"

	"github.com/teranos/propgen/constgen"
)

const indent = "    "

// Templates holds the declaration format per kind.
// Long and Float literals get their L/F suffix appended to the raw text.
var Templates = constgen.Templates{
	constgen.Int:    "public static final int %[1]s = %[2]s;",
	constgen.Bool:   "public static final boolean %[1]s = %[2]s;",
	constgen.Short:  "public static final short %[1]s = %[2]s;",
	constgen.Long:   "public static final long %[1]s = %[2]sL;",
	constgen.Double: "public static final double %[1]s = %[2]s;",
	constgen.Float:  "public static final float %[1]s = %[2]sF;",
	constgen.Char:   "public static final char %[1]s = '%[2]s';",
	constgen.String: "public static final String %[1]s = \"%[2]s\";",
}

var _ constgen.Dialect = (*Generator)(nil)

// Generator implements constgen.Dialect for Java
type Generator struct{}

// NewGenerator creates a new Java generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "java"
func (g *Generator) Language() string {
	return "java"
}

// FileExtension returns ".java"
func (g *Generator) FileExtension() string {
	return ".java"
}

// Header returns the package declaration, or nothing for the default package
func (g *Generator) Header(t constgen.Target) string {
	if len(t.Namespace) == 0 {
		return ""
	}
	return fmt.Sprintf("package %s;\n\n", t.Package())
}

// Open returns the class declaration and optionally a private constructor
func (g *Generator) Open(t constgen.Target, constructor bool) string {
	s := fmt.Sprintf("public class %s {\n", t.SimpleName)
	if constructor {
		s += fmt.Sprintf(indent+"private %s() {}\n", t.SimpleName)
	}
	return s
}

// Comment returns a // line comment
func (g *Generator) Comment(text string) string {
	return indent + "// " + text + "\n"
}

// Declaration renders a public static final field
func (g *Generator) Declaration(kind constgen.Kind, name, value string) string {
	return Templates.Render(indent, kind, name, value)
}

// Close returns the closing brace of the class
func (g *Generator) Close(t constgen.Target) string {
	return "}\n"
}
