package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print workspace counts as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			counts, err := st.Counts()
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(counts)
			if err != nil {
				return fmt.Errorf("failed to marshal stats: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}
}
