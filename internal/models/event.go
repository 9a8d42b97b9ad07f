package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType names an audited state change.
type EventType string

const (
	EventRegistryCreated   EventType = "REGISTRY_CREATED"
	EventOwnersAdded       EventType = "OWNERS_ADDED"
	EventRegistryFinalized EventType = "REGISTRY_FINALIZED"
	EventRaffleScheduled   EventType = "RAFFLE_SCHEDULED"
	EventRaffleCompleted   EventType = "RAFFLE_COMPLETED"
	EventRaffleFailed      EventType = "RAFFLE_FAILED"
	EventRaffleCancelled   EventType = "RAFFLE_CANCELLED"
)

// Event is one entry of the audit trail kept in the "events" collection.
type Event struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Type       EventType          `json:"type" bson:"type"`
	RegistryID primitive.ObjectID `json:"registryId,omitempty" bson:"registry_id,omitempty"`
	RaffleID   primitive.ObjectID `json:"raffleId,omitempty" bson:"raffle_id,omitempty"`
	Actor      string             `json:"actor,omitempty" bson:"actor,omitempty"`
	Message    string             `json:"message" bson:"message"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
}

// NewEvent creates an Event stamped with the current time
func NewEvent(t EventType, message string) *Event {
	return &Event{
		Type:      t,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
