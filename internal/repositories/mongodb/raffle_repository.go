package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RaffleRepository implements the repositories.RaffleRepository interface
type RaffleRepository struct {
	collection *mongo.Collection
}

// NewRaffleRepository creates a new RaffleRepository
func NewRaffleRepository(db *mongo.Database) repositories.RaffleRepository {
	return &RaffleRepository{
		collection: db.Collection("raffles"),
	}
}

// Create creates a new raffle
func (r *RaffleRepository) Create(ctx context.Context, raffle *models.Raffle) error {
	raffle.CreatedAt = time.Now()
	raffle.UpdatedAt = raffle.CreatedAt
	res, err := r.collection.InsertOne(ctx, raffle)
	if err != nil {
		return err
	}
	raffle.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a raffle by ID
func (r *RaffleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Raffle, error) {
	var raffle models.Raffle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&raffle)
	if err != nil {
		return nil, err
	}
	return &raffle, nil
}

// FindAll finds raffles, optionally filtered by status
func (r *RaffleRepository) FindAll(ctx context.Context, status models.RaffleStatus) ([]*models.Raffle, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to execute find query: %w", err)
	}
	defer cursor.Close(ctx)

	var raffles []*models.Raffle
	if err := cursor.All(ctx, &raffles); err != nil {
		return nil, fmt.Errorf("failed to decode raffles: %w", err)
	}
	if raffles == nil {
		raffles = []*models.Raffle{}
	}
	return raffles, nil
}

// Update replaces a raffle document
func (r *RaffleRepository) Update(ctx context.Context, raffle *models.Raffle) error {
	raffle.UpdatedAt = time.Now()
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": raffle.ID}, raffle)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// TransitionStatus is a compare-and-set on the status field
func (r *RaffleRepository) TransitionStatus(ctx context.Context, id primitive.ObjectID, from, to models.RaffleStatus) error {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
