package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/propgen/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect propgen configuration",
		Long: `Display and validate the effective propgen configuration.

Examples:
  propgen config show                 # Show effective configuration as TOML
  propgen config show --format json   # Show configuration in JSON format
  propgen config validate             # Validate the configuration`,
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg, format)
			if err != nil {
				return err
			}
			if cfg.File != "" && format != "json" {
				fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", cfg.File)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	show.Flags().StringVar(&format, "format", "toml", "Output format: "+strings.Join(config.Formats, ", "))

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Long:  "Check the configuration file and the resulting generation request without generating anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := buildRequest(cmd, opts); err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).success("Configuration is valid")
			return nil
		},
	}

	cmd.AddCommand(show, validate)
	return cmd
}
