package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skagedal/create-program/internal/branding"
	"github.com/skagedal/create-program/internal/config"
	"github.com/skagedal/create-program/internal/logging"
	"github.com/skagedal/create-program/internal/project"
	"github.com/skagedal/create-program/internal/templates"
)

// BuildInfo is injected via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Flag names shared with the config fallback.
const (
	flagPath       = "path"
	flagName       = "name"
	flagTestRunner = "test-runner"
	flagQuiet      = "quiet"
	flagVerbose    = "verbose"
)

type createFlags struct {
	path       string
	name       string
	testRunner templates.TestRunner
	quiet      bool
	verbose    bool
}

// NewRootCommand builds the full command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	f := &createFlags{testRunner: templates.DefaultTestRunner}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a TypeScript program: a package.json merged with any
existing one, starter sources and tests, compiler and test runner configs,
and an executable bin script.

Examples:
  create-program --path my-tool
  create-program --path . --name my-tool --test-runner nodejs`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.path, flagPath, project.CurrentDir, "Directory to create the program in")
	flags.StringVar(&f.name, flagName, "", "Program name (default: base name of the path)")
	flags.Var(&f.testRunner, flagTestRunner, "Test runner to set up")
	flags.BoolVarP(&f.quiet, flagQuiet, "q", false, "Do not print next steps")
	flags.BoolVarP(&f.verbose, flagVerbose, "v", false, "Log each step to stderr")

	cmd.AddCommand(newVersionCmd(info))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newDoctorCmd())
	return cmd
}

func runCreate(cmd *cobra.Command, f *createFlags) error {
	store, err := config.Load()
	if err != nil {
		return err
	}
	settings, err := store.Settings()
	if err != nil {
		return err
	}

	opts := project.Options{
		Path:       f.path,
		Name:       f.name,
		TestRunner: settings.TestRunner,
		Quiet:      settings.Quiet,
	}
	if cmd.Flags().Changed(flagTestRunner) {
		opts.TestRunner = f.testRunner
	}
	if cmd.Flags().Changed(flagQuiet) {
		opts.Quiet = f.quiet
	}

	level := settings.LogLevel
	if f.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, Output: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	_, err = project.New(cmd.OutOrStdout(), logger).Materialize(opts)
	return err
}

// Execute runs the command tree with the process arguments and prints any
// error to stderr.
func Execute(version, commit, date string) error {
	return run(NewRootCommand(BuildInfo{Version: version, Commit: commit, Date: date}), os.Args[1:], os.Stderr)
}

func run(cmd *cobra.Command, args []string, stderr io.Writer) error {
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
