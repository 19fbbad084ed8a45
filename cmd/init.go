package cmd

import (
	"fmt"
	"os"

	"github.com/garagelog/photodex/internal/store"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the workspace database and schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(workspace, 0755); err != nil {
				return fmt.Errorf("failed to create workspace %s: %w", workspace, err)
			}
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Migrate(); err != nil {
				return err
			}
			fmt.Printf("Initialized database at %s\n", store.DefaultPath(workspace))
			return nil
		},
	}
}
