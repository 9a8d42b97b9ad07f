package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/owners"
	"github.com/ArowuTest/nft-raffle-backend/internal/raffle"
	"github.com/ArowuTest/nft-raffle-backend/internal/utils"
	"github.com/spf13/cobra"
)

// SimulateCmd runs a local draw over an owner file without touching the
// database.
func SimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a local draw over an owner list",
		RunE:  simulate,
	}
	cmd.Flags().StringP("owners", "o", "owners.json", "owner list (JSON or CSV)")
	cmd.Flags().IntP("winners", "w", 15, "number of winners")
	cmd.Flags().StringP("seed", "s", "", "seed for a reproducible draw")
	cmd.Flags().String("out", "", "write the result to this JSON file")
	return cmd
}

func simulate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("owners")
	winnerCount, _ := cmd.Flags().GetInt("winners")
	seed, _ := cmd.Flags().GetString("seed")
	outPath, _ := cmd.Flags().GetString("out")

	list, err := owners.LoadFile(path)
	if err != nil {
		return err
	}
	list, err = owners.NormalizeAll(list)
	if err != nil {
		return err
	}

	source := raffle.SourceCrypto
	var winners []string
	if seed != "" {
		source = raffle.SourceSeeded
		winners, err = raffle.SelectSeeded(list, winnerCount, seed)
	} else {
		winners, err = raffle.Select(list, winnerCount)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Drew %d winners from %d owners (%s)\n", len(winners), len(list), source)
	if seed != "" {
		fmt.Fprintf(out, "Seed commitment: %s\n", raffle.Commitment(seed))
	}
	for i, w := range winners {
		fmt.Fprintf(out, "%3d. %s  (%s)\n", i+1, w, utils.ShortenAddress(w))
	}

	if outPath == "" {
		return nil
	}
	report := models.RaffleReport{
		Winners:      winners,
		Timestamp:    time.Now().UTC(),
		TotalOwners:  len(list),
		WinnerCount:  len(winners),
		RandomSource: source,
		Seed:         seed,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Fprintf(out, "Results written to %s\n", outPath)
	return nil
}
