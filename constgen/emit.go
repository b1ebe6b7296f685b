package constgen

import (
	"bufio"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/teranos/propgen/errors"
	"github.com/teranos/propgen/logger"
)

// Emitter writes one generated file per call to Emit.
type Emitter struct {
	dialect     Dialect
	constructor bool
	logger      *zap.SugaredLogger
}

// Stats summarises one emission.
type Stats struct {
	// Sources is the number of sources whose entries were written
	Sources int
	// Skipped is the number of sources that could not be read
	Skipped int
	// Constants is the number of declarations written
	Constants int
}

// NewEmitter creates an emitter for the given dialect. constructor controls the
// private no-arg constructor declaration.
func NewEmitter(dialect Dialect, constructor bool, logger *zap.SugaredLogger) *Emitter {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Emitter{dialect: dialect, constructor: constructor, logger: logger}
}

// Emit truncates target.OutputPath and writes the container with every source in
// order. Failing to create or write the file aborts with ErrCouldNotCreateFile;
// a source that cannot be read is logged and skipped.
func (e *Emitter) Emit(target Target, sources []Source) (stats Stats, err error) {
	e.logger.Debugw("Opening file "+target.OutputPath, logger.FieldFile, target.OutputPath)

	f, err := os.Create(target.OutputPath)
	if err != nil {
		return stats, errors.CouldNotCreateFile(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.CouldNotCreateFile(cerr)
		}
	}()

	w := bufio.NewWriter(f)
	stats, err = e.write(w, target, sources)
	if err != nil {
		return stats, err
	}
	if err := w.Flush(); err != nil {
		return stats, errors.CouldNotCreateFile(err)
	}

	e.logger.Infow("Generated "+target.OutputPath,
		logger.FieldConstants, stats.Constants,
		logger.FieldSources, stats.Sources,
		logger.FieldSkipped, stats.Skipped)
	return stats, nil
}

// Render writes the same content Emit would write to w, without touching the
// filesystem for the output.
func (e *Emitter) Render(w io.Writer, target Target, sources []Source) (Stats, error) {
	bw := bufio.NewWriter(w)
	stats, err := e.write(bw, target, sources)
	if err != nil {
		return stats, err
	}
	if err := bw.Flush(); err != nil {
		return stats, errors.CouldNotCreateFile(err)
	}
	return stats, nil
}

func (e *Emitter) write(w *bufio.Writer, target Target, sources []Source) (Stats, error) {
	var stats Stats
	ew := &errWriter{w: w}

	ew.write(e.dialect.Header(target))
	ew.write(e.dialect.Open(target, e.constructor))

	for _, src := range sources {
		e.logger.Infow("Processing "+src.Origin(), logger.FieldSource, src.Origin())
		ew.write(e.dialect.Comment(src.Origin()))

		entries, err := src.Entries()
		if err != nil {
			e.warnSkipped(src, err)
			stats.Skipped++
			continue
		}

		for _, entry := range entries {
			ew.write(Format(e.dialect, entry.Key, entry.Value))
		}
		stats.Sources++
		stats.Constants += len(entries)
	}

	ew.write(e.dialect.Close(target))

	if ew.err != nil {
		return stats, errors.CouldNotCreateFile(ew.err)
	}
	return stats, nil
}

func (e *Emitter) warnSkipped(src Source, err error) {
	location := src.Origin()
	if p, ok := src.(interface{ Path() string }); ok {
		location = p.Path()
	}

	if errors.Is(err, ErrSourceNotFound) {
		e.logger.Warnw("Not found: "+location, logger.FieldSource, src.Origin())
		return
	}
	e.logger.Warnw("Load error: "+location, logger.FieldSource, src.Origin(), logger.FieldError, err)
}

// errWriter keeps the first write error so the rendering code stays linear.
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (ew *errWriter) write(s string) {
	if ew.err != nil || s == "" {
		return
	}
	_, ew.err = ew.w.WriteString(s)
}
