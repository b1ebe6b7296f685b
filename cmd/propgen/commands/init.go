package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/propgen/config"
)

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter propgen.toml",
		Long: `Write a starter propgen.toml in the working directory (or at --config).

An existing file is kept unless --force is given; it is then rotated into
.back1/.back2/.back3 backups.

Examples:
  propgen init
  propgen init --classname org.acme.Keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configFile
			if path == "" {
				path = config.FileName
			}

			starter := config.Starter(opts.className)
			if opts.destDir != "" {
				starter.DestDir = opts.destDir
			}
			if opts.language != "" {
				starter.Language = opts.language
			}
			if err := starter.Validate(); err != nil {
				return err
			}

			if err := config.WriteFile(path, starter, force); err != nil {
				return err
			}

			abs, _ := filepath.Abs(path)
			newPrinter(cmd.OutOrStdout()).success("Wrote %s", abs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
