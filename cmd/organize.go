package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/garagelog/photodex/internal/organize"
	"github.com/spf13/cobra"
)

func newOrganizeCmd() *cobra.Command {
	var copyFiles bool

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Move assigned photos into per-vehicle folders",
		Long: `Relocates every photo with a committed vehicle assignment into
<workspace>/Vehicles/<slug>/. Moves by default; --copy leaves the source in
place. Photos already relocated on a previous run are not touched again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("copy") {
				copyFiles = cfg.Copy
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			destRoot := filepath.Join(workspace, cfg.VehiclesDir)
			n, err := organize.Run(st, destRoot, copyFiles)
			if err != nil {
				return fmt.Errorf("failed to organize: %w", err)
			}
			if n == 0 {
				fmt.Println("No photos to organize.")
				return nil
			}
			slog.Info("Organize complete", "photos", n, "dest", destRoot)
			fmt.Printf("Organized %d photos into %s\n", n, destRoot)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyFiles, "copy", false, "Copy instead of move")

	return cmd
}
