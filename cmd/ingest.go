package cmd

import (
	"fmt"
	"log/slog"

	"github.com/garagelog/photodex/internal/ingest"
	"github.com/spf13/cobra"
)

func newIngestCmd() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "ingest <folder>",
		Short: "Scan a folder and register new photos",
		Long: `Scans a folder for image files, extracts capture metadata and a dedupe
digest, and registers each new photo. A path that was ingested on a previous
run is silently skipped without re-reading the file.

The dedupe digest covers only the first 8 KiB of each file. That is fast, but
two distinct files sharing an identical prefix will carry the same digest; the
digest flags likely duplicates, it does not prove equality.`,
		Example: `  # Ingest a camera dump, including subfolders
  photodex ingest ~/inbox --recursive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := ingest.Run(st, args[0], recursive)
			if err != nil {
				return fmt.Errorf("failed to ingest %s: %w", args[0], err)
			}
			slog.Info("Ingest complete", "folder", args[0], "new", n)
			fmt.Printf("Ingested %d new photos\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recurse into subdirectories")

	return cmd
}
