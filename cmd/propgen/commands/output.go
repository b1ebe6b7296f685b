package commands

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/propgen/errors"
	"github.com/teranos/propgen/runner"
)

const usageHint = "run propgen --help for the available flags"

// printer writes user-facing status lines. Logs go to stderr through zap;
// these are the results a user asked for.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) printer {
	return printer{w: w}
}

func (p printer) generated(r runner.Result) {
	pterm.Success.WithWriter(p.w).Printfln("Generated %s (%d constants from %d sources)",
		r.Target.OutputPath, r.Constants, r.Sources)
	if r.Skipped > 0 {
		p.warning("%d sources could not be read", r.Skipped)
	}
}

func (p printer) success(format string, args ...interface{}) {
	pterm.Success.WithWriter(p.w).Printfln(format, args...)
}

func (p printer) info(format string, args ...interface{}) {
	pterm.Info.WithWriter(p.w).Printfln(format, args...)
}

func (p printer) warning(format string, args ...interface{}) {
	pterm.Warning.WithWriter(p.w).Printfln(format, args...)
}

// failure prints err and any hints attached to it. Configuration errors also
// point at the flag reference.
func (p printer) failure(err error) {
	pterm.Error.WithWriter(p.w).Println(err.Error())
	hints := errors.GetAllHints(err)
	if errors.IsConfigurationError(err) {
		hints = append(hints, usageHint)
	}
	for _, hint := range hints {
		pterm.Fprintln(p.w, "  "+pterm.Gray("hint: ")+hint)
	}
}
