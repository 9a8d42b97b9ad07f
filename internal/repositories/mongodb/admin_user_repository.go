package mongodb

import (
	"context"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Ensure adminUserRepository implements repositories.AdminUserRepository
var _ repositories.AdminUserRepository = (*adminUserRepository)(nil)

type adminUserRepository struct {
	collection *mongo.Collection
}

// NewAdminUserRepository creates a new repository for admin users
func NewAdminUserRepository(db *mongo.Database) repositories.AdminUserRepository {
	return &adminUserRepository{
		collection: db.Collection("admin_users"),
	}
}

// Create inserts a new admin user
func (r *adminUserRepository) Create(ctx context.Context, adminUser *models.AdminUser) error {
	adminUser.ID = primitive.NewObjectID()
	adminUser.CreatedAt = time.Now()
	adminUser.UpdatedAt = adminUser.CreatedAt
	_, err := r.collection.InsertOne(ctx, adminUser)
	return err
}

// FindByEmail finds an admin user by their email address.
// Returns mongo.ErrNoDocuments when no account matches.
func (r *adminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var adminUser models.AdminUser
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&adminUser)
	if err != nil {
		return nil, err
	}
	return &adminUser, nil
}
