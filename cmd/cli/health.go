package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the scoring API is alive.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		health, err := rt.client.Health(cmd.Context())
		if err != nil {
			negativeColor.Fprintf(cmd.OutOrStdout(), "API injoignable: %v\n", err)
			return err
		}

		positiveColor.Fprintf(cmd.OutOrStdout(), "%s", health.Status)
		fmt.Fprintf(cmd.OutOrStdout(), " (timestamp %s)\n", health.Timestamp.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
