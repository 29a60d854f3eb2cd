package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/terminus/internal/export"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	As     string
	Output string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export everything for safekeeping or printing",
		Long: `Export the whole plan.

Formats:
  json  archive of the full document
  yaml  the same, in YAML
  xlsx  spreadsheet with wills, belongings and letters sheets
  html  printable plan; letter content is rendered from Markdown

Without -o the export is written to stdout.`,
		Example: `  terminus export --as html -o plan.html
  terminus export --as xlsx -o inventory.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", string(export.FormatJSON), "export format: "+choices(export.Formats))
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	format := export.Format(opts.As)
	if !isExportFormat(format) {
		return NewExitError(ExitCommandError, ErrCodeInvalidInput,
			fmt.Sprintf("invalid export format %q: must be one of %s", opts.As, choices(export.Formats)))
	}

	return withSession(cmd, opts.RootOptions, func(s *session) error {
		bundle, err := export.NewBundle(s.store.Document(), opts.Now())
		if err != nil {
			return WrapExitError(ExitFailure, ErrCodeExportFailed, "failed to start export", err)
		}

		var buf bytes.Buffer
		if err := bundle.Write(&buf, format); err != nil {
			return WrapExitError(ExitFailure, ErrCodeExportFailed, "failed to export", err)
		}

		if opts.Output == "" {
			_, err := io.Copy(cmd.OutOrStdout(), &buf)
			return err
		}

		if err := os.WriteFile(opts.Output, buf.Bytes(), 0o600); err != nil {
			return WrapExitError(ExitFailure, ErrCodeExportFailed, "failed to write output file", err)
		}
		s.formatter.VerboseLog("Wrote %d bytes", buf.Len())
		return s.formatter.Success(exportResult{ExportID: bundle.ExportID, Format: format, Path: opts.Output}, func(out io.Writer) {
			fmt.Fprintf(out, "Exported %s to %s (export %s)\n", format, opts.Output, bundle.ExportID)
		})
	})
}

type exportResult struct {
	ExportID string        `json:"exportId"`
	Format   export.Format `json:"format"`
	Path     string        `json:"path"`
}

func isExportFormat(f export.Format) bool {
	for _, known := range export.Formats {
		if f == known {
			return true
		}
	}
	return false
}
