package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/garagelog/photodex/internal/cluster"
	"github.com/spf13/cobra"
)

func newClusterCmd() *cobra.Command {
	var timeMins float64
	var distM float64

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Group photos into sessions by capture time and GPS",
		Long: `Partitions all photos into sessions: runs of photos taken within the time
window and distance window of their predecessor. Rerunning replaces every
session; session ids are not stable across runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("time-mins") {
				timeMins = cfg.TimeWindowMins
			}
			if !cmd.Flags().Changed("dist-m") {
				distM = cfg.DistWindowM
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			window := time.Duration(timeMins * float64(time.Minute))
			n, err := cluster.Persist(st, window, distM)
			if err != nil {
				return fmt.Errorf("failed to cluster: %w", err)
			}
			slog.Info("Cluster complete", "sessions", n, "time_mins", timeMins, "dist_m", distM)
			fmt.Printf("Created %d sessions\n", n)
			return nil
		},
	}

	cmd.Flags().Float64Var(&timeMins, "time-mins", 45, "Time window in minutes")
	cmd.Flags().Float64Var(&distM, "dist-m", 150, "Distance window in meters")

	return cmd
}
