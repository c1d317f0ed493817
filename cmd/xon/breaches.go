package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	xposedornot "github.com/xposedornot/client-go"
)

var breachesDomain string

var breachesCmd = &cobra.Command{
	Use:   "breaches",
	Short: "List known data breaches",
	Long: `List the breaches in the XposedOrNot database, optionally narrowed
to a single domain.`,
	Args: cobra.NoArgs,
	RunE: runBreaches,
}

func init() {
	breachesCmd.Flags().StringVar(&breachesDomain, "domain", "", "only list breaches for this domain")
}

func runBreaches(cmd *cobra.Command, args []string) error {
	var opts []xposedornot.BreachesOption
	if breachesDomain != "" {
		opts = append(opts, xposedornot.WithBreachDomain(breachesDomain))
	}

	breaches, err := client.Breaches(cmd.Context(), opts...)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(breachesToOutput(breaches))
	}

	if len(breaches) == 0 {
		fmt.Println("No breaches found.")
		return nil
	}

	for _, b := range breaches {
		fmt.Print(b.ID)
		if !b.Date.IsZero() {
			fmt.Printf(" (%s)", b.Date.Format(dateLayout))
		}
		if b.Domain != "" {
			fmt.Printf(" %s", b.Domain)
		}
		if b.ExposedRecords > 0 {
			fmt.Printf(" [%d records]", b.ExposedRecords)
		}
		fmt.Println()
		if len(b.ExposedData) > 0 {
			fmt.Printf("  exposed: %s\n", strings.Join(b.ExposedData, ", "))
		}
	}
	fmt.Printf("\n%d breach(es)\n", len(breaches))
	return nil
}
