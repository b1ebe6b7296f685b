package runner

import (
	"strings"

	"github.com/teranos/propgen/constgen"
	"github.com/teranos/propgen/constgen/golang"
	"github.com/teranos/propgen/constgen/java"
	"github.com/teranos/propgen/constgen/python"
	"github.com/teranos/propgen/constgen/rust"
	"github.com/teranos/propgen/constgen/typescript"
	"github.com/teranos/propgen/errors"
)

// DefaultLanguage is used when Config.Language is empty.
const DefaultLanguage = "java"

// ErrUnknownLanguage marks a language name no dialect answers to.
var ErrUnknownLanguage = errors.New("unknown language")

// Languages returns the canonical language names in display order.
func Languages() []string {
	return []string{"java", "go", "typescript", "python", "rust"}
}

// LookupDialect returns the dialect for language. Short aliases are accepted.
func LookupDialect(language string) (constgen.Dialect, error) {
	switch strings.ToLower(language) {
	case "", "java":
		return java.NewGenerator(), nil
	case "go", "golang":
		return golang.NewGenerator(), nil
	case "typescript", "ts":
		return typescript.NewGenerator(), nil
	case "python", "py":
		return python.NewGenerator(), nil
	case "rust", "rs":
		return rust.NewGenerator(), nil
	}

	err := errors.Mark(errors.Newf("unknown language: %s", language), ErrUnknownLanguage)
	return nil, errors.WithHintf(err, "supported: %s", strings.Join(Languages(), ", "))
}
