package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/bookshelf/internal/catalog"
	"github.com/roach88/bookshelf/internal/export"
)

// RootOptions holds global flags for the bookshelf command.
type RootOptions struct {
	Verbose   bool
	Format    string // export encoding: "json" | "yaml"
	ExportDir string
}

// NewRootCommand creates the root command for the bookshelf CLI.
// Running it with no arguments starts the interactive catalog session.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bookshelf",
		Short: "Bookshelf - interactive book catalog",
		Long: `An interactive, in-memory book catalog.

Records live only for the duration of one session. The export menu
option writes a timestamped snapshot of the catalog to --export-dir
in the encoding chosen with --format.

Example:
  bookshelf
  bookshelf --format yaml --export-dir ./exports --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, export.ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", export.FormatJSON, "export encoding (json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.ExportDir, "export-dir", ".", "directory for export files")

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range export.ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func runSession(opts *RootOptions, cmd *cobra.Command) error {
	// Configure logging based on verbose flag. Diagnostic output goes
	// to stderr so the interactive transcript on stdout stays clean.
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	if info, err := os.Stat(opts.ExportDir); err != nil || !info.IsDir() {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("export directory %q is not a directory", opts.ExportDir))
	}

	session := NewSession(catalog.New(), cmd.InOrStdin(), cmd.OutOrStdout())
	session.Exporter = &export.Writer{Dir: opts.ExportDir, Format: opts.Format}

	slog.Debug("session starting", "format", opts.Format, "export_dir", opts.ExportDir)
	session.Run()
	slog.Debug("session ended", "records", session.Catalog.Len())
	return nil
}
