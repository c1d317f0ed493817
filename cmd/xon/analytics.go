package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics <address>",
	Short: "Show the breach analytics profile for an email address",
	Long: `Show the aggregated exposure profile for an email address: risk
rating, breached sites, exposed data categories, yearly counts, and
paste appearances.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalytics,
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	analytics, err := client.BreachAnalytics(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(analyticsToOutput(analytics))
	}

	fmt.Println(analytics.Email)
	fmt.Printf("  risk: %s (score %d)\n", analytics.Risk.Label, analytics.Risk.Score)

	if !analytics.Breached {
		fmt.Println("  no known breaches")
		return nil
	}

	if len(analytics.Sites) > 0 {
		fmt.Printf("  breached sites: %s\n", strings.Join(analytics.Sites, ", "))
	}
	if len(analytics.ExposedData) > 0 {
		fmt.Println("  exposed data:")
		for _, k := range sortedKeys(analytics.ExposedData) {
			fmt.Printf("    %s: %d\n", k, analytics.ExposedData[k])
		}
	}
	if len(analytics.YearlyBreaches) > 0 {
		fmt.Println("  breaches per year:")
		for _, year := range sortedKeys(analytics.YearlyBreaches) {
			fmt.Printf("    %d: %d\n", year, analytics.YearlyBreaches[year])
		}
	}
	if analytics.Pastes.Count > 0 {
		fmt.Printf("  pastes: %d", analytics.Pastes.Count)
		if !analytics.Pastes.LastSeen.IsZero() {
			fmt.Printf(" (last seen %s)", analytics.Pastes.LastSeen.Format(dateLayout))
		}
		fmt.Println()
	}
	return nil
}
