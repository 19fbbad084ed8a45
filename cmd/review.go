package cmd

import (
	"fmt"
	"os"

	"github.com/garagelog/photodex/internal/review"
	"github.com/spf13/cobra"
)

func newReviewCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Interactively confirm or correct suggestions",
		Long: `Walks the best suggestion per unassigned photo in descending score order.
Press Enter to accept the suggestion, 's' to skip the photo, 'q' to stop, or
type a vehicle name to assign the photo to that vehicle (created on the spot
if unknown). Every decision is committed immediately, so quitting or an
interrupt loses nothing already decided.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = cfg.ReviewLimit
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			assigned, err := review.Run(cmd.Context(), st, os.Stdin, cmd.OutOrStdout(), limit)
			if err != nil {
				return err
			}
			fmt.Printf("\nAssigned %d photos\n", assigned)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "Maximum photos to review in one session")

	return cmd
}
