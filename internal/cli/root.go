package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/terminus/internal/config"
	"github.com/roach88/terminus/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	DB      string // SQLite file; overrides TERMINUS_DB
	Key     string // storage key; overrides TERMINUS_KEY
	Memory  bool   // use a throwaway in-memory store

	// Config supplies values for flags that were not given.
	// Loaded from the environment when nil.
	Config *config.Config

	// Logger is built from Config when nil.
	Logger *zap.Logger

	// Now overrides the wall clock (for testing).
	Now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the terminus CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terminus",
		Short: "Life Terminal Station - end-of-life planning",
		Long: `Record your wills, belongings, funeral wishes, farewell letters and
medical directive, and keep an eye on the countdown.

Everything is stored in a single local file. Nothing leaves this machine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "path to SQLite database (default $TERMINUS_DB or the user config dir)")
	cmd.PersistentFlags().StringVar(&opts.Key, "key", "", "storage key (default $TERMINUS_KEY or life_terminal_station)")
	cmd.PersistentFlags().BoolVar(&opts.Memory, "memory", false, "use an in-memory store that is discarded on exit")

	// Add subcommands
	cmd.AddCommand(NewWillCommand(opts))
	cmd.AddCommand(NewBelongingCommand(opts))
	cmd.AddCommand(NewLetterCommand(opts))
	cmd.AddCommand(NewLifeCommand(opts))
	cmd.AddCommand(NewFuneralCommand(opts))
	cmd.AddCommand(NewMedicalCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// resolve validates flags and fills in whatever the flags left unset from
// configuration.
func (opts *RootOptions) resolve(cmd *cobra.Command) error {
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError, ErrCodeInvalidInput,
			fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}

	if opts.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			return WrapExitError(ExitCommandError, ErrCodeInvalidInput, "invalid configuration", err)
		}
		opts.Config = cfg
	}
	if opts.DB == "" {
		opts.DB = opts.Config.DBPath
	}
	if opts.Key == "" {
		opts.Key = opts.Config.Key
	}

	if opts.Logger == nil {
		level := opts.Config.LogLevel
		if opts.Verbose {
			level = "debug"
		}
		logger, err := logging.New(level, opts.Config.LogFormat)
		if err != nil {
			return WrapExitError(ExitCommandError, ErrCodeInvalidInput, "invalid logging configuration", err)
		}
		opts.Logger = logger
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// Execute runs the CLI with the given arguments and returns the process exit
// code. Errors are reported on stdout in json mode and on stderr otherwise.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return execute(ctx, &RootOptions{}, args, stdout, stderr)
}

func execute(ctx context.Context, opts *RootOptions, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if opts.Logger != nil {
		_ = opts.Logger.Sync()
	}
	if err == nil {
		return ExitSuccess
	}

	format := opts.Format
	if !isValidFormat(format) {
		format = "text"
	}
	formatter := &OutputFormatter{Format: format, Writer: stdout, ErrWriter: stderr, Verbose: opts.Verbose}
	_ = formatter.Error(errorReason(err), err.Error(), nil)
	return GetExitCode(err)
}
