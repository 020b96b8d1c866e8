package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meigma/zipkit"
)

// NewUnpackCmd creates the unpack subcommand. It extracts an archive's
// entries onto the filesystem.
func NewUnpackCmd(verbose *bool) *cobra.Command {
	var (
		destDir      string
		overwrite    bool
		workers      int
		maxEntries   int
		maxEntrySize uint64
	)

	cmd := &cobra.Command{
		Use:   "unpack ARCHIVE",
		Short: "Extract an archive to a directory",
		Long: `Extract every entry of ARCHIVE into the destination directory.

Entry names that would escape the destination are rejected. Input from
any ZIP writer is accepted, including deflate-compressed entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			var unpackOpts []zipkit.UnpackOption
			unpackOpts = append(unpackOpts, zipkit.UnpackWithLogger(logger(*verbose)))
			if maxEntries > 0 {
				unpackOpts = append(unpackOpts, zipkit.UnpackWithMaxEntries(maxEntries))
			}
			if maxEntrySize > 0 {
				unpackOpts = append(unpackOpts, zipkit.UnpackWithMaxEntrySize(maxEntrySize))
			}

			stats, err := zipkit.Extract(cmd.Context(), data, destDir,
				zipkit.ExtractWithOverwrite(overwrite),
				zipkit.ExtractWithWorkers(workers),
				zipkit.ExtractWithUnpackOptions(unpackOpts...),
			)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "extracted %d files (%d bytes, %d skipped) to %s\n",
				stats.FileCount, stats.TotalBytes, stats.Skipped, destDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&destDir, "dest", "d", ".", "Destination directory")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing files")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent file writers")
	cmd.Flags().IntVar(&maxEntries, "max-entries", 0, "Maximum entries to accept (0 = unlimited)")
	cmd.Flags().Uint64Var(&maxEntrySize, "max-entry-size", 0, "Maximum uncompressed entry size in bytes (0 = unlimited)")

	return cmd
}
