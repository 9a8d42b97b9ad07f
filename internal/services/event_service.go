package services

import (
	"context"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

const (
	defaultEventLimit = 20
	maxEventLimit     = 100
)

// EventServiceInterface exposes the audit trail
type EventServiceInterface interface {
	ListEvents(ctx context.Context, page, limit int) ([]*models.Event, error)
}

// EventService records and lists audit events. A nil *EventService records
// nothing.
type EventService struct {
	eventRepo repositories.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// Record stores an event. A failed write is logged and does not fail the
// operation being audited.
func (s *EventService) Record(ctx context.Context, event *models.Event) {
	if s == nil {
		return
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		slog.Error("Failed to record audit event", "error", err, "type", event.Type)
	}
}

// ListEvents returns a page of events, newest first
func (s *EventService) ListEvents(ctx context.Context, page, limit int) ([]*models.Event, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}
	return s.eventRepo.FindAll(ctx, page, limit)
}
