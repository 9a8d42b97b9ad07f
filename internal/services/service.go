package services

import (
	"context"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
)

// RaffleService defines the interface for raffle-related operations
type RaffleService interface {
	// ScheduleRaffle creates a raffle over an existing registry
	ScheduleRaffle(ctx context.Context, req models.ScheduleRaffleRequest) (*models.Raffle, error)

	// ExecuteRaffle draws the winners of a scheduled raffle
	ExecuteRaffle(ctx context.Context, raffleID string, executedBy string) (*models.Raffle, error)

	// CancelRaffle cancels a raffle that has not run yet
	CancelRaffle(ctx context.Context, raffleID string) (*models.Raffle, error)

	// GetRaffle retrieves a raffle by its ID
	GetRaffle(ctx context.Context, raffleID string) (*models.Raffle, error)

	// ListRaffles lists raffles, optionally filtered by status
	ListRaffles(ctx context.Context, status string) ([]*models.Raffle, error)

	// GetWinners retrieves the winners of a raffle in draw order
	GetWinners(ctx context.Context, raffleID string) ([]*models.Winner, error)

	// GetSummary builds the display summary of a raffle
	GetSummary(ctx context.Context, raffleID string) (*models.RaffleSummary, error)

	// Draw runs a stateless draw over the given participants
	Draw(ctx context.Context, req models.DrawRequest) (*models.DrawResult, error)
}

// RegistryService defines the interface for owner registry operations
type RegistryService interface {
	CreateRegistry(ctx context.Context, req models.CreateRegistryRequest) (*models.OwnerRegistry, error)
	AddOwners(ctx context.Context, registryID string, owners []string) (*models.OwnerRegistry, error)
	FinalizeRegistry(ctx context.Context, registryID string) (*models.OwnerRegistry, error)
	GetRegistry(ctx context.Context, registryID string) (*models.OwnerRegistry, error)
	ListRegistries(ctx context.Context) ([]*models.OwnerRegistry, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	CreateAdmin(ctx context.Context, email, password string) (*models.AdminUser, error)
}
