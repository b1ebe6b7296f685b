package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/propgen/config"
	"github.com/teranos/propgen/errors"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// run executes the command tree in a fresh working directory
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGenerateFromFlags(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.properties"), "int.max=5\n")

	out, err := run(t, dir, "--classname", "com.example.P", "--destdir", "gen", "--path", "a.properties")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated")
	assert.Contains(t, out, "1 constants from 1 sources")

	data, err := os.ReadFile(filepath.Join(dir, "gen", "com", "example", "P.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "public static final int MAX = 5;")
}

func TestGenerateFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "conf", "a.properties"), "app.name=demo\n")
	write(t, filepath.Join(dir, config.FileName), `classname = "Settings"
dest_dir = "out"
language = "python"

[[paths]]
patterns = ["conf/*.properties"]
`)

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	_, err := run(t, sub, "--no-constructor")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "Settings.py"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "APP_NAME: str = \"demo\"")
	assert.NotContains(t, string(data), "__init__")
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, config.FileName), `classname = "Settings"
dest_dir = "out"

[[propertysets]]
[propertysets.properties]
"int.port" = "80"
`)

	_, err := run(t, dir, "--lang", "ts", "--destdir", "web")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "web", "Settings.ts"))
}

func TestGenerateMissingClassname(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "--destdir", "gen", "--path", "a.properties")
	require.Error(t, err)
	assert.Equal(t, "classname not set", err.Error())
	assert.NoDirExists(t, filepath.Join(dir, "gen"))
}

func TestGenerateWithoutSources(t *testing.T) {
	_, err := run(t, t.TempDir(), "--classname", "P", "--destdir", "gen")
	assert.EqualError(t, err, "path or propertyset not added")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.properties"), "int.a=1\n")
	args := []string{"--classname", "P", "--destdir", "gen", "--path", "a.properties"}

	_, err := run(t, dir, append([]string{"check"}, args...)...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfDate))

	_, err = run(t, dir, args...)
	require.NoError(t, err)

	out, err := run(t, dir, append([]string{"check"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "is up to date")

	write(t, filepath.Join(dir, "a.properties"), "int.a=2\n")
	out, err = run(t, dir, append([]string{"check"}, args...)...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfDate))
	assert.Contains(t, out, "+    public static final int A = 2;")
}

func TestConfigShowJSON(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, config.FileName), "classname = \"a.B\"\ndest_dir = \"gen\"\n")

	out, err := run(t, dir, "config", "show", "--format", "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "a.B", decoded["classname"])
	assert.Equal(t, "java", decoded["language"])
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, config.FileName), `classname = "a.B"
dest_dir = "gen"
language = "cobol"

[[paths]]
patterns = ["a.properties"]
`)

	_, err := run(t, dir, "config", "validate")
	assert.EqualError(t, err, "unknown language: cobol")

	write(t, filepath.Join(dir, config.FileName), `classname = "a.B"
dest_dir = "gen"

[[paths]]
patterns = ["a.properties"]
`)
	out, err := run(t, dir, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "init", "--classname", "org.acme.Keys")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	cfg, err := config.LoadFromFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "org.acme.Keys", cfg.ClassName)

	_, err = run(t, dir, "init")
	assert.True(t, errors.Is(err, config.ErrConfigExists))

	_, err = run(t, dir, "init", "--force")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, config.FileName+".back1"))
}

func TestVersionJSON(t *testing.T) {
	out, err := run(t, t.TempDir(), "version", "--json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "dev", decoded["version"])
}

func TestMissingClassnameReportedBeforeOtherErrors(t *testing.T) {
	t.Run("unknown language flag", func(t *testing.T) {
		dir := t.TempDir()
		_, err := run(t, dir, "--destdir", "gen", "--lang", "cobol", "--path", "a.properties")
		assert.EqualError(t, err, "classname not set")
		assert.NoDirExists(t, filepath.Join(dir, "gen"))
	})

	t.Run("path set without patterns", func(t *testing.T) {
		dir := t.TempDir()
		write(t, filepath.Join(dir, config.FileName), `dest_dir = "gen"

[[paths]]
name = "x"
patterns = []
`)
		_, err := run(t, dir)
		assert.EqualError(t, err, "classname not set")

		_, err = run(t, dir, "config", "validate")
		assert.EqualError(t, err, "classname not set")
	})

	t.Run("unsatisfied required version", func(t *testing.T) {
		dir := t.TempDir()
		write(t, filepath.Join(dir, config.FileName), `dest_dir = "gen"
required_version = ">= 99.0.0"
`)
		_, err := run(t, dir, "--path", "a.properties")
		assert.EqualError(t, err, "classname not set")
	})
}

func TestAbsPathsKeepsRemoteSources(t *testing.T) {
	t.Chdir(t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := absPaths([]string{
		"github.com/org/repo//conf/a.properties",
		"https://example.com/a.properties",
		"s3::https://s3.amazonaws.com/bucket/a.properties",
		"conf/a.properties",
		"conf/**/*.properties",
		filepath.Join(wd, "b.properties"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"github.com/org/repo//conf/a.properties",
		"https://example.com/a.properties",
		"s3::https://s3.amazonaws.com/bucket/a.properties",
		filepath.Join(wd, "conf", "a.properties"),
		filepath.Join(wd, "conf", "**", "*.properties"),
		filepath.Join(wd, "b.properties"),
	}, got)
}

func TestRemoteShorthandPathIsNotAnchored(t *testing.T) {
	out, err := run(t, t.TempDir(), "config", "validate",
		"--classname", "P", "--destdir", "gen", "--path", "github.com/org/repo//conf/a.properties")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
}

func TestFailureHints(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantHints []string
		wantUsage bool
	}{
		{
			name:      "missing classname",
			err:       errors.WithHint(errors.WithStack(errors.ErrClassnameNotSet), "pass --classname"),
			wantHints: []string{"pass --classname"},
			wantUsage: true,
		},
		{
			name:      "no sources",
			err:       errors.WithStack(errors.ErrNoSources),
			wantUsage: true,
		},
		{
			name:      "stale output",
			err:       errors.WithHint(ErrOutOfDate, "run propgen to regenerate"),
			wantHints: []string{"run propgen to regenerate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newPrinter(&buf).failure(tt.err)

			out := buf.String()
			assert.Contains(t, out, tt.err.Error())
			for _, hint := range tt.wantHints {
				assert.Contains(t, out, "hint: "+hint)
			}
			if tt.wantUsage {
				assert.Contains(t, out, usageHint)
			} else {
				assert.NotContains(t, out, usageHint)
			}
		})
	}
}
