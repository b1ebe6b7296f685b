package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/propgen/errors"
	"github.com/teranos/propgen/logger"
	"github.com/teranos/propgen/runner"
)

// ErrOutOfDate is returned by check when the output differs from a fresh generation.
var ErrOutOfDate = errors.New("generated output is out of date")

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check if the generated file is up to date",
		Long: `Check if the generated file matches its current inputs.

This command generates into a temporary directory and compares the result
with the existing output byte for byte. The existing output is not touched.

Exit codes:
  0 - Output is up to date
  1 - Output is missing, out of date (diff shown) or the check failed

Examples:
  propgen check                 # Check the output configured in propgen.toml
  propgen check --lang go       # Check the Go rendering`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := buildRequest(cmd, opts)
			if err != nil {
				return err
			}

			result, err := runner.Check(commandContext(cmd), rc, logger.ComponentLogger("check"))
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout())
			switch {
			case result.UpToDate:
				out.success("%s is up to date", result.Target.OutputPath)
				return nil
			case result.Missing:
				return errors.WithHint(errors.Wrapf(ErrOutOfDate, "%s does not exist", result.Target.OutputPath),
					"run propgen to generate it")
			default:
				fmt.Fprint(cmd.OutOrStdout(), result.Diff)
				return errors.WithHint(errors.Wrapf(ErrOutOfDate, "%s", result.Target.OutputPath),
					"run propgen to update it")
			}
		},
	}
}
