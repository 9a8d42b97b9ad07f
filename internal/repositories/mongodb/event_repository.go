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

// EventRepository implements repositories.EventRepository
type EventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *mongo.Database) repositories.EventRepository {
	return &EventRepository{
		collection: db.Collection("events"),
	}
}

// Create stores an event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	res, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return err
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll returns one page of events, newest first
func (r *EventRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Event, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"created_at": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*models.Event{}
	}
	return events, nil
}
