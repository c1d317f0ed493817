package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var passwordCmd = &cobra.Command{
	Use:   "password <password>",
	Short: "Check a password against known breaches without revealing it",
	Long: `Check whether a password appears in known breaches. The password is
hashed locally and only the first ten hex characters of its Keccak-512
digest are sent to the API.`,
	Args: cobra.ExactArgs(1),
	RunE: runPassword,
}

func runPassword(cmd *cobra.Command, args []string) error {
	exposure, err := client.CheckPassword(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(passwordToOutput(exposure))
	}

	if !exposure.Exposed {
		fmt.Println("Password not found in known breaches.")
		return nil
	}

	fmt.Printf("Password exposed: seen %d time(s) in breach data\n", exposure.Count)
	if exposure.InWordlist {
		fmt.Println("  appears in common cracking wordlists")
	}
	c := exposure.Characteristics
	if c.Length > 0 {
		fmt.Printf("  composition: %d letters, %d digits, %d special (length %d)\n",
			c.Letters, c.Digits, c.SpecialChars, c.Length)
	}
	return nil
}
