package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/meigma/zipkit"
)

// NewPackCmd creates the pack subcommand. It archives a directory tree
// into a store-only ZIP file.
func NewPackCmd(verbose *bool) *cobra.Command {
	var (
		output      string
		comment     string
		noChecksums bool
	)

	cmd := &cobra.Command{
		Use:   "pack DIR",
		Short: "Build an archive from a directory",
		Long: `Build a store-only ZIP archive from the regular files under DIR.

Entry names are recorded relative to DIR with forward slashes. When no
output path is given, a generated archive name is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = fmt.Sprintf("archive-%s.zip", uuid.New().String())
			}

			opts := []zipkit.PackOption{
				zipkit.PackWithLogger(logger(*verbose)),
			}
			if comment != "" {
				opts = append(opts, zipkit.PackWithComment(comment))
			}
			if noChecksums {
				opts = append(opts, zipkit.PackWithoutChecksums())
			}

			data, err := zipkit.PackDir(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			summary, err := zipkit.Inspect(data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "packed %d entries into %s (%d bytes)\n", summary.EntryCount, output, summary.Size)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Path of the archive to write")
	cmd.Flags().StringVar(&comment, "comment", "", "Archive comment stored in the trailer")
	cmd.Flags().BoolVar(&noChecksums, "no-checksums", false, "Leave CRC-32 fields zeroed")

	return cmd
}
