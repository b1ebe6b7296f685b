package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teranos/propgen/constgen"
)

func TestTemplatesCoverEveryKind(t *testing.T) {
	assert.Empty(t, Templates.Missing())
}

func TestOpen(t *testing.T) {
	g := NewGenerator()
	target := constgen.NewTarget("P", "", "gen", g.FileExtension())

	assert.Equal(t, "pub struct P {\n    _private: (),\n}\n\n#[allow(dead_code)]\nimpl P {\n", g.Open(target, true))
	assert.Equal(t, "pub struct P;\n\n#[allow(dead_code)]\nimpl P {\n", g.Open(target, false))
}

func TestDeclaration(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "    pub const MAX: i32 = 10;\n", constgen.Format(g, "int.max", "10"))
	assert.Equal(t, "    pub const TTL: i64 = 30;\n", constgen.Format(g, "long.ttl", "30"))
	assert.Equal(t, "    pub const SEP: char = ',';\n", constgen.Format(g, "char.sep", ","))
	assert.Equal(t, "    pub const APP_NAME: &str = \"x\";\n", constgen.Format(g, "app.name", "x"))
}
