package constgen

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/teranos/propgen/errors"
)

const dirPerm = 0o755

// Target is where and under which names one run writes its output.
// It is computed once per run and never modified.
type Target struct {
	// Namespace is the dotted prefix of the class name split on '.', empty when there is none
	Namespace []string
	// SimpleName is the part of the class name after the last '.'
	SimpleName string
	// OutputPath is the file the emitter writes
	OutputPath string
}

// Package returns the dotted namespace, e.g. "com.example".
func (t Target) Package() string {
	return strings.Join(t.Namespace, ".")
}

// Dir returns the directory that holds OutputPath.
func (t Target) Dir() string {
	return filepath.Dir(t.OutputPath)
}

// NewTarget splits className at its last '.' and lays the output file out as
// baseDir/destDir/<namespace as directories>/<SimpleName><ext>.
// An absolute destDir ignores baseDir. Names are not checked for legality.
func NewTarget(className, baseDir, destDir, ext string) Target {
	root := destDir
	if !filepath.IsAbs(destDir) {
		root = filepath.Join(baseDir, destDir)
	}

	i := strings.LastIndexByte(className, '.')
	if i == -1 {
		return Target{
			SimpleName: className,
			OutputPath: filepath.Join(root, className+ext),
		}
	}

	namespace := strings.Split(className[:i], ".")
	simpleName := className[i+1:]
	dir := filepath.Join(append([]string{root}, namespace...)...)

	return Target{
		Namespace:  namespace,
		SimpleName: simpleName,
		OutputPath: filepath.Join(dir, simpleName+ext),
	}
}

// Plan resolves the target and creates its directory. Existing directories are
// not an error.
func Plan(className, baseDir, destDir, ext string) (Target, error) {
	t := NewTarget(className, baseDir, destDir, ext)
	if err := os.MkdirAll(t.Dir(), dirPerm); err != nil {
		return t, errors.CouldNotCreateFile(errors.Wrapf(err, "creating %s", t.Dir()))
	}
	return t, nil
}
