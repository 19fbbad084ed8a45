package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/garagelog/photodex/internal/suggest"
	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Score unassigned photos against the known vehicles",
		Long: `Computes up to N scored vehicle candidates for every photo without an
assignment, combining a session-majority vote with spatial proximity to
sessions that already hold a vehicle's photos. Rerunning overwrites scores;
it never duplicates rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("topn") {
				topN = cfg.TopN
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := suggest.Run(st, topN)
			if errors.Is(err, suggest.ErrNoVehicles) {
				fmt.Println("No vehicles found. Seed some vehicles first.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to generate suggestions: %w", err)
			}
			slog.Info("Suggest complete", "photos", n, "topn", topN)
			fmt.Printf("Generated suggestions for %d photos\n", n)
			return nil
		},
	}

	cmd.Flags().IntVar(&topN, "topn", 3, "Candidates to keep per photo")

	return cmd
}
