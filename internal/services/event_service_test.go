package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventServiceListEvents(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		svc.Record(ctx, models.NewEvent(models.EventRaffleScheduled, "scheduled"))
	}
	svc.Record(ctx, models.NewEvent(models.EventRaffleCancelled, "cancelled"))

	events, err := svc.ListEvents(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, models.EventRaffleCancelled, events[0].Type)

	page2, err := svc.ListEvents(ctx, 2, 3)
	require.NoError(t, err)
	assert.Len(t, page2, 1)
}

func TestEventServiceRecordIgnoresFailures(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("disk full")}
	NewEventService(repo).Record(context.Background(), models.NewEvent(models.EventRaffleFailed, "x"))
	assert.Empty(t, repo.types())

	var nilService *EventService
	nilService.Record(context.Background(), models.NewEvent(models.EventRaffleFailed, "x"))
}
