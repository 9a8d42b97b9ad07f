package commands

import (
	"errors"
	"fmt"

	"github.com/ArowuTest/nft-raffle-backend/internal/owners"
	"github.com/spf13/cobra"
)

// ErrVerifyFailed is returned when the owner list has problems.
var ErrVerifyFailed = errors.New("owner list verification failed")

// VerifyCmd checks an owner list for duplicates, bad addresses and count.
func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the owner list before a raffle",
		RunE:  verify,
	}
	cmd.Flags().StringP("owners", "o", "owners.json", "owner list (JSON or CSV)")
	cmd.Flags().IntP("expected", "e", owners.DefaultExpected, "expected number of unique owners")
	return cmd
}

func verify(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("owners")
	expected, _ := cmd.Flags().GetInt("expected")

	list, err := owners.LoadFile(path)
	if err != nil {
		return err
	}
	report := owners.Verify(list, expected)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total addresses:  %d\n", report.Total)
	fmt.Fprintf(out, "Unique addresses: %d\n", report.Unique)
	fmt.Fprintf(out, "Expected:         %d\n", report.Expected)
	for _, d := range report.Duplicates {
		fmt.Fprintf(out, "Duplicate: %s\n", d)
	}
	for _, a := range report.Invalid {
		fmt.Fprintf(out, "Invalid:   %s\n", a)
	}

	if !report.OK() {
		fmt.Fprintln(out, "FAIL")
		return ErrVerifyFailed
	}
	fmt.Fprintln(out, "OK")
	return nil
}
