package repositories

import (
	"context"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Implementations return mongo.ErrNoDocuments when a lookup or a guarded
// update matches nothing.

// RegistryRepository defines the interface for owner registry data operations
type RegistryRepository interface {
	Create(ctx context.Context, registry *models.OwnerRegistry) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.OwnerRegistry, error)
	FindAll(ctx context.Context) ([]*models.OwnerRegistry, error)
	// AddOwners appends owners to a registry that is still OPEN.
	AddOwners(ctx context.Context, id primitive.ObjectID, owners []string) error
	// Finalize moves an OPEN registry to FINALIZED.
	Finalize(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

// RaffleRepository defines the interface for raffle data operations
type RaffleRepository interface {
	Create(ctx context.Context, raffle *models.Raffle) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Raffle, error)
	// FindAll lists raffles newest first; an empty status matches all.
	FindAll(ctx context.Context, status models.RaffleStatus) ([]*models.Raffle, error)
	Update(ctx context.Context, raffle *models.Raffle) error
	// TransitionStatus sets status to "to" only if it currently equals "from".
	TransitionStatus(ctx context.Context, id primitive.ObjectID, from, to models.RaffleStatus) error
}

// WinnerRepository defines the interface for winner data operations
type WinnerRepository interface {
	CreateMany(ctx context.Context, winners []*models.Winner) error
	// FindByRaffleID returns winners in draw order.
	FindByRaffleID(ctx context.Context, raffleID primitive.ObjectID) ([]*models.Winner, error)
}

// AdminUserRepository defines the interface for admin user data operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

// EventRepository defines the interface for audit event data operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	// FindAll pages through events newest first; page starts at 1.
	FindAll(ctx context.Context, page, limit int) ([]*models.Event, error)
}
