package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teranos/propgen/errors"
	"github.com/teranos/propgen/runner"
)

const sampleConfig = `classname = "com.example.Settings"
dest_dir = "gen"
language = "go"
constructor = false

[[paths]]
name = "main"
patterns = ["conf/*.properties", "extra.properties"]

[[propertysets]]
name = "build"
env_prefix = "BUILD"

[propertysets.properties]
"int.Port" = "8080"
"app.Name" = "demo"
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, sampleConfig)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "com.example.Settings", cfg.ClassName)
	assert.Equal(t, "gen", cfg.DestDir)
	assert.Equal(t, "go", cfg.Language)
	assert.False(t, cfg.Constructor)
	assert.Equal(t, path, cfg.File)

	require.Len(t, cfg.Paths, 1)
	assert.Equal(t, []string{"conf/*.properties", "extra.properties"}, cfg.Paths[0].Patterns)

	require.Len(t, cfg.PropertySets, 1)
	assert.Equal(t, "BUILD", cfg.PropertySets[0].EnvPrefix)
	assert.Equal(t, map[string]string{"int.Port": "8080", "app.Name": "demo"}, cfg.PropertySets[0].Properties)
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "classname = \"P\"\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "java", cfg.Language)
	assert.True(t, cfg.Constructor)
	assert.Empty(t, cfg.DestDir)
	assert.Empty(t, cfg.PropertySets)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.File)
	assert.Equal(t, "java", cfg.Language)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, sampleConfig)
	t.Setenv("PROPGEN_DEST_DIR", "out")
	t.Setenv("PROPGEN_LANGUAGE", "rust")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.DestDir)
	assert.Equal(t, "rust", cfg.Language)
	assert.Equal(t, "com.example.Settings", cfg.ClassName)
}

func TestFindProjectConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "classname = \"P\"\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, path, findConfigFrom(nested))

	t.Chdir(nested)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "P", cfg.ClassName)
	assert.Equal(t, root, cfg.Dir())
}

func TestRunnerConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFromFile(writeConfig(t, dir, sampleConfig))
	require.NoError(t, err)

	rc := cfg.RunnerConfig()
	assert.Equal(t, runner.Config{
		ClassName:     "com.example.Settings",
		DestDir:       "gen",
		BaseDir:       dir,
		Language:      "go",
		NoConstructor: true,
		PropertySets: []runner.PropertySet{{
			Name:       "build",
			EnvPrefix:  "BUILD",
			Properties: map[string]string{"int.Port": "8080", "app.Name": "demo"},
		}},
		Paths: []runner.PathSet{{Name: "main", Patterns: []string{"conf/*.properties", "extra.properties"}}},
	}, rc)
}

func TestRunnerConfigBaseDir(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"no file, no base", Config{}, ""},
		{"no file, base", Config{BaseDir: "src"}, "src"},
		{"file, no base", Config{File: "/p/propgen.toml"}, "/p"},
		{"file, relative base", Config{File: "/p/propgen.toml", BaseDir: "src"}, filepath.Join("/p", "src")},
		{"file, absolute base", Config{File: "/p/propgen.toml", BaseDir: "/abs"}, "/abs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.RunnerConfig().BaseDir)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Config{Language: "java"}, ""},
		{"unknown language", Config{Language: "cobol"}, "unknown language: cobol"},
		{"bad constraint ignored for dev builds", Config{Language: "java", RequiredVersion: "not a constraint"}, ""},
		{"empty path set", Config{Language: "java", Paths: []PathSet{{Name: "x"}}}, "paths[0] (x) has no patterns"},
		{"empty property set", Config{Language: "java", PropertySets: []PropertySet{{Name: "y"}}}, "propertysets[0] (y) has neither properties nor env_prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	require.NoError(t, WriteFile(path, Starter("org.acme.Keys"), false))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "org.acme.Keys", cfg.ClassName)
	assert.Equal(t, "gen", cfg.DestDir)
	assert.True(t, cfg.Constructor)
	require.Len(t, cfg.PropertySets, 1)
	assert.Equal(t, "example", cfg.PropertySets[0].Properties["app.name"])
	require.NoError(t, cfg.Validate())
}

func TestWriteFileRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "classname = \"Old\"\n")

	err := WriteFile(path, Starter(""), false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigExists))

	require.NoError(t, WriteFile(path, Starter(""), true))
	backup, err := os.ReadFile(path + ".back1")
	require.NoError(t, err)
	assert.Equal(t, "classname = \"Old\"\n", string(backup))

	require.NoError(t, WriteFile(path, Starter(""), true))
	assert.FileExists(t, path+".back2")
}

func TestMarshal(t *testing.T) {
	cfg := Starter("a.B")

	data, err := Marshal(cfg, "json")
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "a.B", decoded["classname"])

	data, err = Marshal(cfg, "yaml")
	require.NoError(t, err)
	var fromYAML Config
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, cfg.Paths, fromYAML.Paths)

	data, err = Marshal(cfg, "toml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "classname = 'a.B'")

	_, err = Marshal(cfg, "xml")
	assert.EqualError(t, err, "unsupported format: xml (supported: toml, yaml, json)")
}
