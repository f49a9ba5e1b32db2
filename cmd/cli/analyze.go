package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize the credit and income distributions of the dataset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		summary, err := rt.analysis.Summarize(cmd.Context(), rt.path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		titleColor.Fprintf(out, "\nAnalyse du dataset\n\n")
		fmt.Fprintf(out, "Fichier  %s\n", summary.Path)
		fmt.Fprintf(out, "Lignes   %d\n", summary.Rows)

		for _, col := range summary.Columns {
			titleColor.Fprintf(out, "\n%s\n", col.Column)
			fmt.Fprintf(out, "  min     %.0f\n", col.Min)
			fmt.Fprintf(out, "  p25     %.0f\n", col.P25)
			fmt.Fprintf(out, "  median  %.0f\n", col.Median)
			fmt.Fprintf(out, "  mean    %.0f\n", col.Mean)
			fmt.Fprintf(out, "  p75     %.0f\n", col.P75)
			fmt.Fprintf(out, "  max     %.0f\n", col.Max)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
