package mongodb

import (
	"context"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RegistryRepository implements the repositories.RegistryRepository interface
type RegistryRepository struct {
	collection *mongo.Collection
}

// NewRegistryRepository creates a new RegistryRepository
func NewRegistryRepository(db *mongo.Database) repositories.RegistryRepository {
	return &RegistryRepository{
		collection: db.Collection("owner_registries"),
	}
}

// Create creates a new registry
func (r *RegistryRepository) Create(ctx context.Context, registry *models.OwnerRegistry) error {
	registry.CreatedAt = time.Now()
	registry.UpdatedAt = registry.CreatedAt
	if registry.Owners == nil {
		registry.Owners = []string{}
	}
	registry.OwnerCount = len(registry.Owners)
	res, err := r.collection.InsertOne(ctx, registry)
	if err != nil {
		return err
	}
	registry.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a registry by ID
func (r *RegistryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.OwnerRegistry, error) {
	var registry models.OwnerRegistry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&registry)
	if err != nil {
		return nil, err
	}
	return &registry, nil
}

// FindAll finds all registries. Owner lists are left empty; OwnerCount
// carries their size.
func (r *RegistryRepository) FindAll(ctx context.Context) ([]*models.OwnerRegistry, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetProjection(bson.M{"owners": 0})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var registries []*models.OwnerRegistry
	if err := cursor.All(ctx, &registries); err != nil {
		return nil, err
	}
	if registries == nil {
		registries = []*models.OwnerRegistry{}
	}
	for _, reg := range registries {
		reg.Owners = []string{}
	}
	return registries, nil
}

// AddOwners appends owners while the registry is OPEN and holds none of them.
// It returns mongo.ErrNoDocuments when either condition fails.
func (r *RegistryRepository) AddOwners(ctx context.Context, id primitive.ObjectID, owners []string) error {
	filter := bson.M{
		"_id":    id,
		"status": models.RegistryStatusOpen,
		"owners": bson.M{"$nin": owners},
	}
	update := bson.M{
		"$push": bson.M{"owners": bson.M{"$each": owners}},
		"$inc":  bson.M{"ownerCount": len(owners)},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Finalize moves an OPEN registry to FINALIZED
func (r *RegistryRepository) Finalize(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	filter := bson.M{"_id": id, "status": models.RegistryStatusOpen}
	update := bson.M{"$set": bson.M{
		"status":      models.RegistryStatusFinalized,
		"finalizedAt": at,
		"updatedAt":   at,
	}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
