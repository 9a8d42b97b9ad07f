package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RaffleStatus represents the status of a raffle
type RaffleStatus string

const (
	RaffleStatusScheduled RaffleStatus = "SCHEDULED"
	RaffleStatusExecuting RaffleStatus = "EXECUTING"
	RaffleStatusCompleted RaffleStatus = "COMPLETED"
	RaffleStatusFailed    RaffleStatus = "FAILED"
	RaffleStatusCancelled RaffleStatus = "CANCELLED"
)

// Raffle is one draw of winners over a finalized owner registry.
// Seed stays empty until the raffle completes; only SeedCommitment is
// published before that.
type Raffle struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	RegistryID         primitive.ObjectID `bson:"registryId" json:"registryId"`
	WinnerCount        int                `bson:"winnerCount" json:"winnerCount"`
	Status             RaffleStatus       `bson:"status" json:"status"`
	RandomSource       string             `bson:"randomSource" json:"randomSource"` // crypto or seeded
	SeedCommitment     string             `bson:"seedCommitment,omitempty" json:"seedCommitment,omitempty"`
	Seed               string             `bson:"seed,omitempty" json:"seed,omitempty"`
	TotalParticipants  int                `bson:"totalParticipants" json:"totalParticipants"`
	Winners            []string           `bson:"winners" json:"winners"`
	NumWinners         int                `bson:"numWinners" json:"numWinners"`
	ExecutedBy         string             `bson:"executedBy,omitempty" json:"executedBy,omitempty"`
	ExecutionStartTime time.Time          `bson:"executionStartTime,omitempty" json:"executionStartTime,omitempty"`
	ExecutionEndTime   time.Time          `bson:"executionEndTime,omitempty" json:"executionEndTime,omitempty"`
	ExecutionLog       []string           `bson:"executionLog,omitempty" json:"executionLog,omitempty"`
	ErrorMessage       string             `bson:"errorMessage,omitempty" json:"errorMessage,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`

	// PendingSeed holds the secret seed between scheduling and completion.
	// It is persisted under its own key and never serialized to JSON.
	PendingSeed string `bson:"pendingSeed,omitempty" json:"-"`
}

// ScheduleRaffleRequest is the input for scheduling a raffle
type ScheduleRaffleRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	RegistryID   string `json:"registryId" binding:"required"`
	WinnerCount  *int   `json:"winnerCount"`  // defaults to the configured count
	RandomSource string `json:"randomSource"` // defaults to the configured source
	Seed         string `json:"seed"`         // seeded raffles only; generated when empty
}

// DrawRequest is the input of a stateless draw
type DrawRequest struct {
	Participants []string `json:"participants" binding:"max=10000"`
	WinnerCount  int      `json:"winnerCount"`
	Seed         string   `json:"seed,omitempty"`
}

// DrawResult is the output of a stateless draw
type DrawResult struct {
	Winners      []string `json:"winners"`
	WinnerCount  int      `json:"winnerCount"`
	TotalOwners  int      `json:"totalOwners"`
	RandomSource string   `json:"randomSource"`
	Seed         string   `json:"seed,omitempty"`
}

// Logf appends a timestamped line to the execution log.
func (r *Raffle) Logf(format string, args ...any) {
	r.ExecutionLog = append(r.ExecutionLog, fmt.Sprintf("%s: %s", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...)))
}
