// Package commands implements the propgen command line.
package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teranos/propgen/config"
	"github.com/teranos/propgen/errors"
	"github.com/teranos/propgen/logger"
	"github.com/teranos/propgen/runner"
)

// commandLinePathSet names the path set built from --path flags.
const commandLinePathSet = "command line"

type options struct {
	configFile    string
	className     string
	destDir       string
	baseDir       string
	language      string
	paths         []string
	noConstructor bool
	watch         bool
	verbose       int
	jsonLog       bool
}

// Execute runs the root command and reports a failure to stderr.
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		newPrinter(cmd.ErrOrStderr()).failure(err)
	}
	return err
}

// NewRootCmd builds the propgen command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "propgen",
		Short: "Generate typed constants from property files",
		Long: `propgen reads key=value property files and in-memory property sets and
writes one source file declaring a typed constant per property.

The type of each constant is inferred from its key prefix (int., bool., short.,
long., double., float., char.) or from a literal true/false value; everything
else is a string.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (PROPGEN_* prefix)
3. Project config (propgen.toml, searched upwards from the working directory)
4. Default values

Examples:
  propgen --classname com.example.Config --destdir gen --path conf/app.properties
  propgen --lang go --path 'conf/**/*.properties'   # with classname/destdir from propgen.toml
  propgen --watch                                    # regenerate on change
  propgen check                                      # fail when the output is stale`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(opts.jsonLog, opts.verbose); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			logger.Logger.Debugw("Logger initialized",
				logger.FieldVerbosity, logger.LevelName(opts.verbose))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "Config file (default: propgen.toml found upwards from the working directory)")
	flags.StringVar(&opts.className, "classname", "", "Fully qualified name of the generated class, e.g. com.example.Config")
	flags.StringVar(&opts.destDir, "destdir", "", "Output root directory")
	flags.StringVar(&opts.baseDir, "basedir", "", "Directory destdir and relative paths are resolved against")
	flags.StringVarP(&opts.language, "lang", "l", "", "Target language: java, go, typescript, python, rust")
	flags.StringArrayVarP(&opts.paths, "path", "p", nil, "Property file, glob or remote URL (repeatable)")
	flags.BoolVar(&opts.noConstructor, "no-constructor", false, "Omit the private constructor")
	flags.CountVarP(&opts.verbose, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	flags.BoolVar(&opts.jsonLog, "json-log", false, "Write logs as JSON")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate whenever an input file changes")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the project config with environment and flag overrides applied.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	v, err := config.New(opts.configFile)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(cmd, v); err != nil {
		return nil, err
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("no-constructor") {
		cfg.Constructor = !opts.noConstructor
	}
	return cfg, nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	bindings := map[string]string{
		"classname": "classname",
		"dest_dir":  "destdir",
		"language":  "lang",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return errors.Wrapf(err, "failed to bind --%s", flag)
		}
	}
	return nil
}

// buildRequest turns the loaded configuration plus --basedir and --path into a
// generation request. Flag paths are relative to the working directory.
// The runner checks (classname, destdir, sources) run before the file-level
// ones so a missing classname is always reported as such.
func buildRequest(cmd *cobra.Command, opts *options) (runner.Config, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return runner.Config{}, err
	}

	rc := cfg.RunnerConfig()
	if opts.baseDir != "" {
		abs, err := filepath.Abs(opts.baseDir)
		if err != nil {
			return rc, errors.Wrapf(err, "failed to resolve --basedir %s", opts.baseDir)
		}
		rc.BaseDir = abs
	}
	if len(opts.paths) > 0 {
		patterns, err := absPaths(opts.paths)
		if err != nil {
			return rc, err
		}
		rc.Paths = append(rc.Paths, runner.PathSet{Name: commandLinePathSet, Patterns: patterns})
	}

	if err := rc.Validate(); err != nil {
		return rc, err
	}
	if err := cfg.Validate(); err != nil {
		return rc, err
	}
	return rc, nil
}

// absPaths anchors relative local patterns at the working directory so they do
// not move with base_dir. Anything go-getter detects as remote passes through.
func absPaths(patterns []string) ([]string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to determine working directory")
	}

	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if remote, _ := runner.DetectRemote(p, wd); remote || filepath.IsAbs(p) {
			out = append(out, p)
			continue
		}
		out = append(out, filepath.Join(wd, p))
	}
	return out, nil
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	rc, err := buildRequest(cmd, opts)
	if err != nil {
		return err
	}

	out := newPrinter(cmd.OutOrStdout())

	if opts.watch {
		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
		defer stop()

		w := runner.NewWatcher(rc, logger.ComponentLogger("watch"))
		w.OnGenerate(func(result runner.Result, err error) {
			if err != nil {
				out.failure(err)
				return
			}
			out.generated(result)
		})
		out.info("Watching for changes (Ctrl+C to stop)")
		return w.Run(ctx)
	}

	result, err := runner.Generate(commandContext(cmd), rc, logger.ComponentLogger("generate"))
	if err != nil {
		return err
	}
	out.generated(result)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
