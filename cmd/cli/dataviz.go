package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDatavizOutput string

var datavizCmd = &cobra.Command{
	Use:   "dataviz",
	Short: "Fetch the income-vs-credit scatter plot from the API.",
	Long: `Fetches the scatter plot HTML document from the scoring API and writes it
to a file, ready to open in a browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		// The dataset path only rides along when overridden; the API applies
		// its own default otherwise.
		path := ""
		if flagDatasetPath != "" {
			path = flagDatasetPath
		}

		html, err := rt.client.Dataviz(cmd.Context(), path)
		if err != nil {
			return err
		}

		if err := os.WriteFile(flagDatavizOutput, []byte(html), 0o644); err != nil {
			return fmt.Errorf("write plot document: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Graphique enregistre dans %s\n", flagDatavizOutput)
		return nil
	},
}

func init() {
	datavizCmd.Flags().StringVarP(&flagDatavizOutput, "output", "o", "dataviz.html", "output HTML file")
	rootCmd.AddCommand(datavizCmd)
}
