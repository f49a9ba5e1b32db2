package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JulienRip/riskbanking/internal/domain/models"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/sdk/go/riskclient"
)

var (
	titleColor    = color.New(color.FgBlue, color.Bold)
	positiveColor = color.New(color.FgGreen)
	negativeColor = color.New(color.FgRed)
	warningColor  = color.New(color.FgYellow, color.Bold)
	mutedColor    = color.New(color.Faint)
)

var predictCmd = &cobra.Command{
	Use:   "predict <client_id>",
	Short: "Evaluate the default risk of one client.",
	Long: `Evaluates a client's default risk. The scoring API is called first; on any
failure (timeout, error status, malformed response) the same ratio-based
assessment is recomputed locally and tagged as such.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("client id must be numeric, got %q", args[0])
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		predictor := riskclient.NewPredictor(rt.client, rt.prediction, rt.log)
		assessment, warning, err := predictor.Predict(ctx, clientID, rt.path)
		if err != nil {
			return err
		}

		snapshot, factors, err := rt.prediction.Snapshot(ctx, clientID, rt.path)
		if err != nil {
			return err
		}

		renderAssessment(cmd, assessment, warning)
		renderProfile(cmd, snapshot)
		renderFactors(cmd, factors)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)
}

func renderAssessment(cmd *cobra.Command, a *models.RiskAssessment, warning string) {
	out := cmd.OutOrStdout()

	titleColor.Fprintf(out, "\nClient %d\n\n", a.ClientID)

	fmt.Fprintf(out, "Score de risque    %s %.3f\n", progressBar(a.Probability), a.Probability)
	fmt.Fprintf(out, "Niveau de risque   %s\n", tierLabel(a.RiskTier))
	fmt.Fprintf(out, "Prediction         %s\n", a.Decision)
	mutedColor.Fprintf(out, "Source             %s\n", a.Source)

	if warning != "" {
		warningColor.Fprintf(out, "\nAPI indisponible: %s\n", warning)
	}

	titleColor.Fprintf(out, "\nRecommandation\n")
	fmt.Fprintf(out, "%s\n", a.Explanation)
}

func renderProfile(cmd *cobra.Command, s *models.Snapshot) {
	out := cmd.OutOrStdout()

	titleColor.Fprintf(out, "\nProfil client\n")
	fmt.Fprintf(out, "Age                %s\n", intOrNA(s.AgeYears, "%d ans"))
	fmt.Fprintf(out, "Revenu annuel      %s\n", floatOrNA(s.Income, "%.0f"))
	fmt.Fprintf(out, "Montant credit     %s\n", floatOrNA(s.Credit, "%.0f"))
	fmt.Fprintf(out, "Ratio credit/revenu %s\n", floatOrNA(s.Ratio, "%.2f"))
	fmt.Fprintf(out, "Type de revenu     %s\n", stringOrNA(s.IncomeType))
	fmt.Fprintf(out, "Famille            %s\n", stringOrNA(s.Family))
}

func renderFactors(cmd *cobra.Command, f *models.InfluenceFactors) {
	out := cmd.OutOrStdout()

	titleColor.Fprintf(out, "\nFacteurs d'influence\n")
	if len(f.Positives) == 0 {
		fmt.Fprintln(out, "- Aucun point positif identifie.")
	}
	for _, p := range f.Positives {
		positiveColor.Fprintf(out, "+ %s\n", p)
	}
	if len(f.Negatives) == 0 {
		fmt.Fprintln(out, "- Aucun point de vigilance majeur.")
	}
	for _, n := range f.Negatives {
		negativeColor.Fprintf(out, "- %s\n", n)
	}
}

// progressBar renders a probability as a 20-cell bar.
func progressBar(p float64) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	filled := int(p * 20)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 20-filled) + "]"
}

func tierLabel(tier constants.RiskTier) string {
	switch tier {
	case constants.RiskTierHigh:
		return negativeColor.Sprint(string(tier))
	case constants.RiskTierModerate:
		return warningColor.Sprint(string(tier))
	default:
		return positiveColor.Sprint(string(tier))
	}
}

func intOrNA(v *int, format string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf(format, *v)
}

func floatOrNA(v *float64, format string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf(format, *v)
}

func stringOrNA(v string) string {
	if v == "" {
		return "Non renseigne"
	}
	return v
}
