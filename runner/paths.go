package runner

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-getter"
	"go.uber.org/zap"

	"github.com/teranos/propgen/constgen"
	"github.com/teranos/propgen/errors"
	"github.com/teranos/propgen/logger"
)

// resolvedPaths holds the file sources of all path sets plus what watch mode
// needs to know about them.
type resolvedPaths struct {
	sources []constgen.Source
	// files are the local files that were resolved, literal or matched
	files []string
	// globs are the absolute glob patterns, kept so new matches can be noticed
	globs []string
	// tempDirs hold downloaded remote files
	tempDirs []string
}

// Cleanup removes downloaded remote files. Safe to call multiple times.
func (r *resolvedPaths) Cleanup() {
	for _, dir := range r.tempDirs {
		os.RemoveAll(dir)
	}
	r.tempDirs = nil
}

// resolvePaths expands every pattern of every set in declaration order.
// Literal paths are passed through even when missing, so the emitter reports
// them. Remote fetch failures become sources that fail to load.
func resolvePaths(ctx context.Context, baseDir string, sets []PathSet, log *zap.SugaredLogger) (*resolvedPaths, error) {
	pwd, err := absBaseDir(baseDir)
	if err != nil {
		return nil, err
	}

	r := &resolvedPaths{}
	for _, set := range sets {
		for _, pattern := range set.Patterns {
			if err := r.add(ctx, pwd, set.Name, pattern, log); err != nil {
				r.Cleanup()
				return nil, err
			}
		}
	}
	return r, nil
}

func (r *resolvedPaths) add(ctx context.Context, pwd, setName, pattern string, log *zap.SugaredLogger) error {
	if remote, detected := DetectRemote(pattern, pwd); remote {
		r.sources = append(r.sources, r.fetch(ctx, pwd, pattern, detected, log))
		return nil
	}

	p := pattern
	if !filepath.IsAbs(p) {
		p = filepath.Join(pwd, p)
	}

	if !containsGlob(pattern) {
		r.files = append(r.files, p)
		r.sources = append(r.sources, constgen.NewFileSource(p))
		return nil
	}

	matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
	if err != nil {
		return errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	sort.Strings(matches)

	if len(matches) == 0 {
		log.Warnw("No files match "+pattern, logger.FieldPattern, pattern, logger.FieldPathSet, setName)
	}

	r.globs = append(r.globs, p)
	for _, m := range matches {
		r.files = append(r.files, m)
		r.sources = append(r.sources, constgen.NewFileSource(m))
	}
	return nil
}

// fetch downloads a remote properties file into its own temp directory.
// The returned source is labeled with the remote file name.
func (r *resolvedPaths) fetch(ctx context.Context, pwd, pattern, detected string, log *zap.SugaredLogger) constgen.Source {
	name := remoteFileName(pattern)

	tempDir, err := os.MkdirTemp("", "propgen-remote-*")
	if err != nil {
		return &unavailableSource{label: name, location: pattern, err: errors.Wrap(err, "failed to create temp directory")}
	}
	r.tempDirs = append(r.tempDirs, tempDir)

	dst := filepath.Join(tempDir, name)
	client := &getter.Client{
		Ctx:     ctx,
		Src:     detected,
		Dst:     dst,
		Pwd:     pwd,
		Mode:    getter.ClientModeFile,
		Getters: getter.Getters,
	}

	log.Infow("Fetching "+pattern, logger.FieldSource, pattern, logger.FieldFile, dst)
	if err := client.Get(); err != nil {
		return &unavailableSource{label: name, location: pattern, err: errors.Wrapf(err, "failed to fetch %s", pattern)}
	}

	return constgen.NewLabeledFileSource(dst, name)
}

// DetectRemote asks go-getter what pattern refers to. Anything that resolves
// to a scheme other than file is remote, including shorthands such as
// github.com/org/repo//conf/app.properties. The detected source is returned
// for remote patterns.
func DetectRemote(pattern, pwd string) (bool, string) {
	if containsGlob(pattern) || filepath.IsAbs(pattern) {
		return false, ""
	}

	detected, err := getter.Detect(pattern, pwd, getter.Detectors)
	if err != nil {
		return false, ""
	}

	u, err := url.Parse(detected)
	if err != nil {
		return false, ""
	}
	return u.Scheme != "" && u.Scheme != "file", detected
}

// remoteFileName returns the last path segment of a remote source without
// forced getter prefix or query.
func remoteFileName(src string) string {
	if i := strings.Index(src, "::"); i >= 0 {
		src = src[i+2:]
	}
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}

	name := path.Base(strings.TrimSuffix(src, "/"))
	if name == "" || name == "." || name == "/" || strings.Contains(name, ":") {
		return "remote.properties"
	}
	return name
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func absBaseDir(baseDir string) (string, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "failed to determine working directory")
		}
		return wd, nil
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve base directory %s", baseDir)
	}
	return abs, nil
}

// unavailableSource stands in for a source that could not be prepared; its
// Entries reports the preparation error so the emitter logs and skips it.
type unavailableSource struct {
	label    string
	location string
	err      error
}

func (s *unavailableSource) Origin() string { return s.label }

func (s *unavailableSource) Path() string { return s.location }

func (s *unavailableSource) Entries() ([]constgen.Entry, error) { return nil, s.err }
