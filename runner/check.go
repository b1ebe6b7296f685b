package runner

import (
	"context"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"

	"github.com/teranos/propgen/constgen"
	"github.com/teranos/propgen/errors"
)

// CheckResult holds the result of an up-to-date check.
type CheckResult struct {
	// Target is where the output is expected
	Target constgen.Target
	// UpToDate is true when the existing output equals a fresh generation
	UpToDate bool
	// Missing is true when there is no output file yet
	Missing bool
	// Diff is a unified diff from the existing output to the fresh one
	Diff string
}

// Check generates into a temporary directory and compares the result with the
// existing output byte for byte. The existing output is never modified.
func Check(ctx context.Context, cfg Config, log *zap.SugaredLogger) (CheckResult, error) {
	if err := cfg.Validate(); err != nil {
		return CheckResult{}, err
	}
	dialect, err := LookupDialect(cfg.Language)
	if err != nil {
		return CheckResult{}, err
	}

	tempDir, err := os.MkdirTemp("", "propgen-check-*")
	if err != nil {
		return CheckResult{}, errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	fresh := cfg
	fresh.DestDir = tempDir

	generated, err := Generate(ctx, fresh, log)
	if err != nil {
		return CheckResult{}, errors.Wrap(err, "failed to generate for comparison")
	}

	want, err := os.ReadFile(generated.Target.OutputPath)
	if err != nil {
		return CheckResult{}, errors.Wrap(err, "failed to read generated output")
	}

	result := CheckResult{
		Target: constgen.NewTarget(cfg.ClassName, cfg.BaseDir, cfg.DestDir, dialect.FileExtension()),
	}

	have, err := os.ReadFile(result.Target.OutputPath)
	if os.IsNotExist(err) {
		result.Missing = true
		return result, nil
	}
	if err != nil {
		return result, errors.Wrapf(err, "failed to read %s", result.Target.OutputPath)
	}

	if string(have) == string(want) {
		result.UpToDate = true
		return result, nil
	}

	result.Diff, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(have)),
		B:        difflib.SplitLines(string(want)),
		FromFile: result.Target.OutputPath,
		ToFile:   "generated",
		Context:  3,
	})
	if err != nil {
		return result, errors.Wrap(err, "failed to diff output")
	}
	return result, nil
}
