package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/owners"
	mongorepo "github.com/ArowuTest/nft-raffle-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/nft-raffle-backend/internal/services"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

// ImportLegacyCmd converts the old TypeScript owner constant into owners.json.
func ImportLegacyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-legacy",
		Short: "Convert a legacy PERMANENT_NFT_OWNERS source file to JSON",
		RunE:  importLegacy,
	}
	cmd.Flags().String("from", "", "legacy TypeScript source")
	cmd.Flags().String("to", "owners.json", "JSON file to write")
	cmd.MarkFlagRequired("from")
	return cmd
}

func importLegacy(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	src, err := os.ReadFile(from)
	if err != nil {
		return fmt.Errorf("read %s: %w", from, err)
	}
	list, err := owners.ExtractLegacy(string(src))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	normalized := make([]string, 0, len(list))
	for _, a := range list {
		n := owners.Normalize(a)
		if err := owners.Validate(n); err != nil {
			fmt.Fprintf(out, "Skipping invalid address %s\n", a)
			continue
		}
		normalized = append(normalized, n)
	}
	unique, dups := owners.Dedupe(normalized)
	for _, d := range dups {
		fmt.Fprintf(out, "Dropped duplicate %s\n", d)
	}

	if err := owners.SaveFile(to, unique); err != nil {
		return fmt.Errorf("write %s: %w", to, err)
	}
	fmt.Fprintf(out, "Wrote %d owners to %s\n", len(unique), to)
	return nil
}

// ImportRegistryCmd loads an owner file into a new registry.
func ImportRegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-registry",
		Short: "Create an owner registry in MongoDB from a JSON or CSV file",
		RunE:  importRegistry,
	}
	cmd.Flags().StringP("name", "n", "", "registry name")
	cmd.Flags().StringP("owners", "o", "owners.json", "owner list (JSON or CSV)")
	cmd.Flags().Bool("finalize", false, "finalize the registry after import")
	cmd.MarkFlagRequired("name")
	return cmd
}

func importRegistry(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	path, _ := cmd.Flags().GetString("owners")
	finalize, _ := cmd.Flags().GetBool("finalize")

	list, err := owners.LoadFile(path)
	if err != nil {
		return err
	}

	return withDatabase(cmd, func(ctx context.Context, _ *config.Config, db *mongo.Database) error {
		events := services.NewEventService(mongorepo.NewEventRepository(db))
		svc := services.NewRegistryService(mongorepo.NewRegistryRepository(db), events)
		registry, err := svc.CreateRegistry(ctx, models.CreateRegistryRequest{Name: name, Owners: list})
		if err != nil {
			return err
		}
		if finalize {
			if registry, err = svc.FinalizeRegistry(ctx, registry.ID.Hex()); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Registry %s (%s): %d owners, %s\n",
			registry.ID.Hex(), registry.Name, len(registry.Owners), registry.Status)
		return nil
	})
}
