package commands

import (
	"context"
	"fmt"

	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	mongorepo "github.com/ArowuTest/nft-raffle-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/nft-raffle-backend/internal/services"
	"github.com/ArowuTest/nft-raffle-backend/internal/utils"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateAdminCmd stores an admin account.
func CreateAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin user",
		RunE:  createAdmin,
	}
	cmd.Flags().StringP("email", "e", "", "admin email")
	cmd.Flags().StringP("password", "p", "", "password; generated and printed when empty")
	cmd.MarkFlagRequired("email")
	return cmd
}

func createAdmin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	generated := false
	if password == "" {
		var err error
		if password, err = utils.GenerateRandomString(20); err != nil {
			return err
		}
		generated = true
	}

	return withDatabase(cmd, func(ctx context.Context, cfg *config.Config, db *mongo.Database) error {
		svc := services.NewAuthService(mongorepo.NewAdminUserRepository(db), cfg.JWT)
		user, err := svc.CreateAdmin(ctx, email, password)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", user.Email, user.ID.Hex())
		if generated {
			fmt.Fprintf(cmd.OutOrStdout(), "Generated password: %s\n", password)
		}
		return nil
	})
}
