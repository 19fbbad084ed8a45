package cmd

import (
	"os"

	"github.com/garagelog/photodex/internal/config"
	"github.com/garagelog/photodex/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	workspace string
	cfg       config.Config
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photodex",
		Short: "Vehicle photo organizer: ingest, cluster, suggest, review, organize",
		Long: `Photodex files an unsorted photo library into per-vehicle collections.

Photos are grouped into shooting sessions by capture time and GPS, each
unassigned photo is scored against the known vehicles, and an interactive
review loop lets you confirm or correct the suggestions before the files are
moved into place. All state lives in a SQLite database inside the workspace.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if !cmd.Root().PersistentFlags().Changed("workspace") {
				if env := os.Getenv("PHOTODEX_WORKSPACE"); env != "" {
					workspace = env
				}
			}

			var err error
			cfg, err = config.Load(workspace)
			return err
		},
	}

	cmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", ".",
		"Workspace directory holding the photo database and outputs")

	// Add subcommands
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newIngestCmd())
	cmd.AddCommand(newClusterCmd())
	cmd.AddCommand(newSeedCmd())
	cmd.AddCommand(newSuggestCmd())
	cmd.AddCommand(newReviewCmd())
	cmd.AddCommand(newOrganizeCmd())
	cmd.AddCommand(newStatsCmd())

	return cmd
}

// openStore opens the workspace database for one command invocation. Callers
// must Close it before returning.
func openStore() (*store.Store, error) {
	return store.Open(store.DefaultPath(workspace))
}
