package runner

import (
	"context"

	"go.uber.org/zap"

	"github.com/teranos/propgen/constgen"
	"github.com/teranos/propgen/logger"
)

// Result reports what one run produced.
type Result struct {
	Target    constgen.Target
	Language  string
	Sources   int
	Skipped   int
	Constants int
}

// Generate validates cfg, resolves its sources and writes the output file.
// Nothing is created on disk when validation fails.
func Generate(ctx context.Context, cfg Config, log *zap.SugaredLogger) (Result, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	dialect, err := LookupDialect(cfg.Language)
	if err != nil {
		return Result{}, err
	}

	log = logger.ChildLogger(log,
		logger.FieldClassName, cfg.ClassName,
		logger.FieldLanguage, dialect.Language())

	paths, err := resolvePaths(ctx, cfg.BaseDir, cfg.Paths, log)
	if err != nil {
		return Result{}, err
	}
	defer paths.Cleanup()

	sources := append(propertySetSources(cfg.PropertySets), paths.sources...)

	target, err := constgen.Plan(cfg.ClassName, cfg.BaseDir, cfg.DestDir, dialect.FileExtension())
	if err != nil {
		return Result{Target: target}, err
	}

	stats, err := constgen.NewEmitter(dialect, cfg.Constructor(), log).Emit(target, sources)
	result := Result{
		Target:    target,
		Language:  dialect.Language(),
		Sources:   stats.Sources,
		Skipped:   stats.Skipped,
		Constants: stats.Constants,
	}
	return result, err
}
