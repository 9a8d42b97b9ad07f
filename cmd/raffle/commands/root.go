// Package commands holds the raffle operator CLI.
package commands

import (
	"context"
	"fmt"

	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	"github.com/ArowuTest/nft-raffle-backend/internal/logging"
	mongorepo "github.com/ArowuTest/nft-raffle-backend/internal/repositories/mongodb"
	mongodb "github.com/ArowuTest/nft-raffle-backend/pkg/mongodb"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

// RaffleCmd is the root command.
func RaffleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "raffle",
		Short:        "NFT owner raffle tooling",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().String("config", "", "directory holding config.yaml")

	cmd.AddCommand(
		VerifyCmd(),
		SimulateCmd(),
		ImportLegacyCmd(),
		ImportRegistryCmd(),
		CreateAdminCmd(),
	)
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error
	if dir != "" {
		cfg, err = config.Load(dir)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logging.SetupWriter(cmd.ErrOrStderr(), cfg.Log.Level)
	return cfg, nil
}

// withDatabase connects to MongoDB, ensures indexes and runs fn.
func withDatabase(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, db *mongo.Database) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB.Database)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	return fn(ctx, cfg, db)
}
