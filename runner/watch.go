package runner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/propgen/errors"
	"github.com/teranos/propgen/logger"
)

// DefaultDebounce is how long the watcher waits after the last change before regenerating.
const DefaultDebounce = 500 * time.Millisecond

// GenerateCallback is called after every regeneration with its outcome.
type GenerateCallback func(Result, error)

// Watcher regenerates the output whenever one of the local input files changes.
type Watcher struct {
	cfg            Config
	logger         *zap.SugaredLogger
	debouncePeriod time.Duration
	callbacks      []GenerateCallback
	mu             sync.Mutex
}

// NewWatcher creates a watcher for cfg. Validation happens on Run.
func NewWatcher(cfg Config, logger *zap.SugaredLogger) *Watcher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Watcher{
		cfg:            cfg,
		logger:         logger,
		debouncePeriod: DefaultDebounce,
	}
}

// SetDebounce overrides the debounce period
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debouncePeriod = d
}

// OnGenerate registers a callback for every generation, including the first
func (w *Watcher) OnGenerate(callback GenerateCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run generates once, then watches the input files until ctx is cancelled.
// Configuration errors from the first generation end the run; later
// generation errors are reported to the callbacks and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.cfg.Validate(); err != nil {
		return err
	}

	result, err := w.generate(ctx)
	if err != nil && !errors.Is(err, errors.ErrCouldNotCreateFile) {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	defer fsw.Close()

	inputs, err := w.inputs(ctx)
	if err != nil {
		return err
	}
	for _, dir := range inputs.dirs() {
		w.watchDir(fsw, dir)
	}

	output, _ := filepath.Abs(result.Target.OutputPath)
	trigger := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debouncePeriod, func() {
			select {
			case trigger <- struct{}{}:
			default:
			}
		})
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}

			// fsnotify is not recursive: a directory appearing below a ** base
			// has to be registered before its files are seen.
			if event.Has(fsnotify.Create) && inputs.coversDir(event.Name) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if w.watchTree(fsw, inputs, event.Name) {
						w.logger.Infow("Detected new inputs in "+event.Name, logger.FieldDir, event.Name)
						schedule()
					}
					continue
				}
			}

			if event.Name == output || !inputs.matches(event.Name) {
				continue
			}

			w.logger.Infow("Detected change in "+event.Name,
				logger.FieldFile, event.Name,
				logger.FieldOperation, event.Op.String())
			schedule()

		case <-trigger:
			w.generate(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)
		}
	}
}

func (w *Watcher) watchDir(fsw *fsnotify.Watcher, dir string) {
	if err := fsw.Add(dir); err != nil {
		w.logger.Warnw("Cannot watch "+dir, logger.FieldDir, dir, logger.FieldError, err)
		return
	}
	w.logger.Debugw("Watching "+dir, logger.FieldDir, dir)
}

// watchTree registers root and every directory below it, and reports whether
// the tree already holds input files. Files written before the watch was
// added produce no events of their own.
func (w *Watcher) watchTree(fsw *fsnotify.Watcher, inputs *watchedInputs, root string) bool {
	found := false
	filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			w.watchDir(fsw, p)
		} else if inputs.matches(p) {
			found = true
		}
		return nil
	})
	return found
}

func (w *Watcher) generate(ctx context.Context) (Result, error) {
	result, err := Generate(ctx, w.cfg, w.logger)
	if err != nil {
		w.logger.Errorw("Generation failed", logger.FieldError, err)
	}

	w.mu.Lock()
	callbacks := make([]GenerateCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, callback := range callbacks {
		callback(result, err)
	}
	return result, err
}

// watchedInputs are the local files and globs a watcher reacts to.
type watchedInputs struct {
	files map[string]bool
	globs []string
}

func (w *Watcher) inputs(ctx context.Context) (*watchedInputs, error) {
	paths, err := resolvePaths(ctx, w.cfg.BaseDir, w.localPathSets(), w.logger)
	if err != nil {
		return nil, err
	}
	defer paths.Cleanup()

	in := &watchedInputs{files: make(map[string]bool), globs: paths.globs}
	for _, f := range paths.files {
		in.files[f] = true
	}
	return in, nil
}

// localPathSets drops remote patterns; there is nothing on disk to watch for them.
func (w *Watcher) localPathSets() []PathSet {
	pwd, err := absBaseDir(w.cfg.BaseDir)
	if err != nil {
		return nil
	}

	sets := make([]PathSet, 0, len(w.cfg.Paths))
	for _, set := range w.cfg.Paths {
		local := PathSet{Name: set.Name}
		for _, p := range set.Patterns {
			if remote, _ := DetectRemote(p, pwd); !remote {
				local.Patterns = append(local.Patterns, p)
			}
		}
		sets = append(sets, local)
	}
	return sets
}

// dirs returns the existing directories to register with fsnotify: the parent
// of every literal file and the static base of every glob. fsnotify is not
// recursive, so a glob containing ** also contributes every directory below its base.
func (in *watchedInputs) dirs() []string {
	seen := make(map[string]bool)
	var dirs []string

	add := func(dir string) {
		if seen[dir] {
			return
		}
		seen[dir] = true
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}

	for f := range in.files {
		add(filepath.Dir(f))
	}
	for _, g := range in.globs {
		if !strings.Contains(g, "**") {
			add(globBase(g))
		}
	}
	for _, base := range in.recursiveBases() {
		filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
			if err == nil && d.IsDir() {
				add(p)
			}
			return nil
		})
	}
	return dirs
}

// recursiveBases returns the static base of every glob containing **.
func (in *watchedInputs) recursiveBases() []string {
	var bases []string
	for _, g := range in.globs {
		if strings.Contains(g, "**") {
			bases = append(bases, globBase(g))
		}
	}
	return bases
}

// coversDir reports whether dir lies at or below the base of a ** glob, so
// files created in it can match.
func (in *watchedInputs) coversDir(dir string) bool {
	for _, base := range in.recursiveBases() {
		rel, err := filepath.Rel(base, dir)
		if err != nil {
			continue
		}
		if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func globBase(g string) string {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(g))
	return filepath.FromSlash(base)
}

func (in *watchedInputs) matches(name string) bool {
	if in.files[name] {
		return true
	}
	for _, g := range in.globs {
		if ok, _ := doublestar.PathMatch(g, name); ok {
			return true
		}
	}
	return false
}
