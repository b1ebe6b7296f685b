package constgen

import "strings"

// Kind is the semantic type inferred for a property.
type Kind int

const (
	String Kind = iota
	Int
	Bool
	Short
	Long
	Double
	Float
	Char
)

// Kinds lists every kind in classification priority order, String last.
var Kinds = []Kind{Int, Bool, Short, Long, Double, Float, Char, String}

var kindNames = map[Kind]string{
	String: "string",
	Int:    "int",
	Bool:   "bool",
	Short:  "short",
	Long:   "long",
	Double: "double",
	Float:  "float",
	Char:   "char",
}

// String returns the key prefix name of the kind ("int", "bool", ...).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Prefix returns the key prefix that selects k, e.g. "long.".
// String has no prefix.
func (k Kind) Prefix() string {
	if k == String {
		return ""
	}
	return k.String() + "."
}

// Classify infers the kind of a property. Rules are checked in order and the
// first match wins, so a key prefix always beats boolean value detection:
// int.x=true is Int.
func Classify(key, value string) Kind {
	switch {
	case strings.HasPrefix(key, "int."):
		return Int
	case strings.HasPrefix(key, "bool."), value == "true", value == "false":
		return Bool
	case strings.HasPrefix(key, "short."):
		return Short
	case strings.HasPrefix(key, "long."):
		return Long
	case strings.HasPrefix(key, "double."):
		return Double
	case strings.HasPrefix(key, "float."):
		return Float
	case strings.HasPrefix(key, "char."):
		return Char
	default:
		return String
	}
}

// Identifier derives the constant name for key.
// Non-String kinds lose their leading segment when the key has a dot that is
// not its last character.
func Identifier(kind Kind, key string) string {
	name := key
	if kind != String {
		if i := strings.IndexByte(name, '.'); i >= 0 && i < len(name)-1 {
			name = name[i+1:]
		}
	}
	return strings.ToUpper(strings.ReplaceAll(name, ".", "_"))
}
