package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegistryStatus represents the status of an owner registry
type RegistryStatus string

const (
	RegistryStatusOpen      RegistryStatus = "OPEN"
	RegistryStatusFinalized RegistryStatus = "FINALIZED"
)

// OwnerRegistry is the eligible participant set of one or more raffles.
// Owners can be appended while OPEN; a FINALIZED registry is immutable.
type OwnerRegistry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Owners      []string           `bson:"owners" json:"owners"`
	OwnerCount  int                `bson:"ownerCount" json:"ownerCount"`
	Status      RegistryStatus     `bson:"status" json:"status"`
	FinalizedAt time.Time          `bson:"finalizedAt,omitempty" json:"finalizedAt,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateRegistryRequest is the input for creating a registry
type CreateRegistryRequest struct {
	Name   string   `json:"name" binding:"required"`
	Owners []string `json:"owners"`
}

// AddOwnersRequest is the input for appending owners to an open registry
type AddOwnersRequest struct {
	Owners []string `json:"owners" binding:"required"`
}
