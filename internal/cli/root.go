// Package cli implements the zipkit command line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the zipkit CLI.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "zipkit",
		Short: "zipkit - build and read minimal ZIP archives",
		Long: `zipkit builds store-only (uncompressed) ZIP archives and reads
arbitrary ZIP input back out.

Use subcommands to perform different operations:
  - pack: Build an archive from files or a directory
  - unpack: Extract an archive to a directory
  - inspect: Show archive layout without extracting`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(NewPackCmd(&verbose))
	rootCmd.AddCommand(NewUnpackCmd(&verbose))
	rootCmd.AddCommand(NewInspectCmd())

	return rootCmd
}

// logger builds the slog logger commands hand to the library; non-verbose
// runs discard everything below warn.
func logger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
