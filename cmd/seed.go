package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <vehicle-name> <photo>...",
		Short: "Assign known photos to a vehicle, creating it if needed",
		Long: `Resolves the vehicle by the slug of its name, creating it when no match
exists, and assigns each given photo to it. Photos must already be ingested;
a path that is not in the database is reported and skipped, the rest of the
list still seeds.`,
		Example: `  photodex seed "1977 K5 Blazer" inbox/IMG_2041.jpg inbox/IMG_2042.jpg`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			vehicle, err := st.EnsureVehicle(name)
			if err != nil {
				return err
			}

			seeded := 0
			for _, arg := range args[1:] {
				abs, err := filepath.Abs(arg)
				if err != nil {
					slog.Warn("Skipping unresolvable path", "path", arg, "err", err)
					continue
				}
				photo, err := st.PhotoByPath(abs)
				if err != nil {
					return err
				}
				if photo == nil {
					slog.Warn("Photo not ingested, skipping", "path", abs)
					continue
				}
				if err := st.LinkVehiclePhoto(vehicle.ID, photo.ID); err != nil {
					return err
				}
				if err := st.AssignVehicle(photo.ID, vehicle.ID); err != nil {
					return err
				}
				seeded++
			}

			fmt.Printf("Seeded vehicle %q (%s) with %d photos\n", vehicle.Name, vehicle.Slug, seeded)
			return nil
		},
	}
}
