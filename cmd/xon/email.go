package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	xposedornot "github.com/xposedornot/client-go"
)

var (
	emailDetails bool
	emailFile    string
)

var emailCmd = &cobra.Command{
	Use:   "email [address]",
	Short: "Check an email address against known breaches",
	Long: `Check whether an email address appears in known data breaches.

With --file, every address in the file (one per line, # comments allowed)
is checked concurrently and a per-address summary is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEmail,
}

func init() {
	emailCmd.Flags().BoolVar(&emailDetails, "details", false, "include full breach details")
	emailCmd.Flags().StringVar(&emailFile, "file", "", "check every address in a file, one per line")
}

func runEmail(cmd *cobra.Command, args []string) error {
	if emailFile != "" {
		return runEmailBulk(cmd.Context(), emailFile)
	}

	if len(args) != 1 {
		return fmt.Errorf("expected an email address argument (or --file)")
	}

	var opts []xposedornot.CheckEmailOption
	if emailDetails {
		opts = append(opts, xposedornot.WithBreachDetails())
	}

	exposure, err := client.CheckEmail(cmd.Context(), args[0], opts...)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(emailToOutput(exposure))
	}

	printEmailExposure(exposure)
	return nil
}

func printEmailExposure(e *xposedornot.EmailExposure) {
	if !e.Breached {
		fmt.Printf("%s: no known breaches\n", e.Email)
		return
	}

	fmt.Printf("%s: found in %d breach(es)\n", e.Email, len(e.Breaches))
	if len(e.Details) > 0 {
		for _, b := range e.Details {
			fmt.Printf("  - %s", b.ID)
			if !b.Date.IsZero() {
				fmt.Printf(" (%s)", b.Date.Format(dateLayout))
			}
			if len(b.ExposedData) > 0 {
				fmt.Printf(": %s", strings.Join(b.ExposedData, ", "))
			}
			fmt.Println()
		}
		return
	}
	for _, name := range e.Breaches {
		fmt.Printf("  - %s\n", name)
	}
}

// runEmailBulk checks every address in the file with a bounded worker
// pool. Individual failures are reported per address rather than
// aborting the batch.
func runEmailBulk(ctx context.Context, path string) error {
	addresses, err := readAddressFile(path)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return fmt.Errorf("no addresses found in %s", path)
	}

	logger.Info().
		Int("addresses", len(addresses)).
		Int("workers", cfg.Bulk.Workers).
		Msg("starting bulk check")

	results := make([]emailOutput, len(addresses))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Bulk.Workers)

	for i, address := range addresses {
		g.Go(func() error {
			// Stop scheduling work once the batch is cancelled.
			if err := ctx.Err(); err != nil {
				return err
			}

			exposure, err := client.CheckEmail(ctx, address)
			if err != nil {
				results[i] = emailOutput{Address: address, Error: err.Error()}
				return nil
			}
			results[i] = emailOutput{
				Address:  address,
				Breached: exposure.Breached,
				Breaches: exposure.Breaches,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(results)
	}

	var failed int
	for _, r := range results {
		switch {
		case r.Error != "":
			failed++
			fmt.Printf("%s: error: %s\n", r.Address, r.Error)
		case r.Breached:
			fmt.Printf("%s: found in %d breach(es): %s\n",
				r.Address, len(r.Breaches), strings.Join(r.Breaches, ", "))
		default:
			fmt.Printf("%s: no known breaches\n", r.Address)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}

// readAddressFile reads one address per line, skipping blank lines and
// # comments.
func readAddressFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open address file: %w", err)
	}
	defer f.Close()

	var addresses []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read address file: %w", err)
	}
	return addresses, nil
}
