package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Winner represents a winner in a raffle
type Winner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RaffleID  primitive.ObjectID `bson:"raffleId" json:"raffleId"`
	Address   string             `bson:"address" json:"address"`
	Position  int                `bson:"position" json:"position"` // 1-based draw order
	WinDate   time.Time          `bson:"winDate" json:"winDate"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
