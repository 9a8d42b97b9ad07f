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

// WinnerRepository implements the repositories.WinnerRepository interface
type WinnerRepository struct {
	collection *mongo.Collection
}

// NewWinnerRepository creates a new WinnerRepository
func NewWinnerRepository(db *mongo.Database) repositories.WinnerRepository {
	return &WinnerRepository{
		collection: db.Collection("winners"),
	}
}

// CreateMany inserts all winners of one draw
func (r *WinnerRepository) CreateMany(ctx context.Context, winners []*models.Winner) error {
	if len(winners) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, len(winners))
	for i, w := range winners {
		w.CreatedAt = now
		docs[i] = w
	}
	res, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			winners[i].ID = oid
		}
	}
	return nil
}

// FindByRaffleID finds winners of a raffle in draw order
func (r *WinnerRepository) FindByRaffleID(ctx context.Context, raffleID primitive.ObjectID) ([]*models.Winner, error) {
	opts := options.Find().SetSort(bson.M{"position": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"raffleId": raffleID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var winners []*models.Winner
	if err := cursor.All(ctx, &winners); err != nil {
		return nil, err
	}
	if winners == nil {
		winners = []*models.Winner{}
	}
	return winners, nil
}
