package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/owners"
	"github.com/ArowuTest/nft-raffle-backend/internal/raffle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateRegistryNormalizesOwners(t *testing.T) {
	svc := NewRegistryService(newFakeRegistryRepo(), nil)

	reg, err := svc.CreateRegistry(context.Background(), models.CreateRegistryRequest{
		Name:   " Genesis holders ",
		Owners: []string{" 0xABC ", "0xdef"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Genesis holders", reg.Name)
	assert.Equal(t, []string{"0xabc", "0xdef"}, reg.Owners)
	assert.Equal(t, models.RegistryStatusOpen, reg.Status)
	assert.False(t, reg.ID.IsZero())
}

func TestCreateRegistryRejectsBadInput(t *testing.T) {
	svc := NewRegistryService(newFakeRegistryRepo(), nil)
	ctx := context.Background()

	_, err := svc.CreateRegistry(ctx, models.CreateRegistryRequest{Name: "dup", Owners: []string{"0xabc", "0xABC"}})
	require.ErrorIs(t, err, raffle.ErrDuplicateInput)
	assert.Contains(t, err.Error(), "0xabc")

	_, err = svc.CreateRegistry(ctx, models.CreateRegistryRequest{Name: "bad", Owners: []string{"alice"}})
	require.ErrorIs(t, err, owners.ErrInvalidAddress)
}

func TestAddOwners(t *testing.T) {
	svc := NewRegistryService(newFakeRegistryRepo(), nil)
	ctx := context.Background()
	reg, err := svc.CreateRegistry(ctx, models.CreateRegistryRequest{Name: "r", Owners: []string{"0x1"}})
	require.NoError(t, err)

	updated, err := svc.AddOwners(ctx, reg.ID.Hex(), []string{"0x2", "0x3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0x1", "0x2", "0x3"}, updated.Owners)
	assert.Equal(t, 3, updated.OwnerCount)

	_, err = svc.AddOwners(ctx, reg.ID.Hex(), []string{"0x2"})
	require.ErrorIs(t, err, raffle.ErrDuplicateInput)

	_, err = svc.FinalizeRegistry(ctx, reg.ID.Hex())
	require.NoError(t, err)

	_, err = svc.AddOwners(ctx, reg.ID.Hex(), []string{"0x4"})
	require.ErrorIs(t, err, ErrRegistryFinalized)
}

func TestAddOwnersConcurrentSameOwner(t *testing.T) {
	repo := newFakeRegistryRepo()
	repo.findDelay = 5 * time.Millisecond
	svc := NewRegistryService(repo, nil)
	ctx := context.Background()
	reg, err := svc.CreateRegistry(ctx, models.CreateRegistryRequest{Name: "r", Owners: []string{"0x1"}})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AddOwners(ctx, reg.ID.Hex(), []string{"0x2"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, raffle.ErrDuplicateInput)
	}
	assert.Equal(t, 1, succeeded)

	final, err := svc.FinalizeRegistry(ctx, reg.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []string{"0x1", "0x2"}, final.Owners)
	assert.Equal(t, 2, final.OwnerCount)
}

func TestListRegistriesCarriesOwnerCount(t *testing.T) {
	svc := NewRegistryService(newFakeRegistryRepo(), nil)
	ctx := context.Background()
	_, err := svc.CreateRegistry(ctx, models.CreateRegistryRequest{Name: "r", Owners: []string{"0x1", "0x2"}})
	require.NoError(t, err)

	list, err := svc.ListRegistries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotNil(t, list[0].Owners)
	assert.Empty(t, list[0].Owners)
	assert.Equal(t, 2, list[0].OwnerCount)
}

func TestFinalizeRegistry(t *testing.T) {
	svc := NewRegistryService(newFakeRegistryRepo(), nil)
	ctx := context.Background()

	empty, err := svc.CreateRegistry(ctx, models.CreateRegistryRequest{Name: "empty"})
	require.NoError(t, err)
	_, err = svc.FinalizeRegistry(ctx, empty.ID.Hex())
	require.ErrorIs(t, err, ErrRegistryEmpty)

	reg, err := svc.CreateRegistry(ctx, models.CreateRegistryRequest{Name: "r", Owners: []string{"0x1"}})
	require.NoError(t, err)
	final, err := svc.FinalizeRegistry(ctx, reg.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.RegistryStatusFinalized, final.Status)
	assert.False(t, final.FinalizedAt.IsZero())

	_, err = svc.FinalizeRegistry(ctx, reg.ID.Hex())
	require.ErrorIs(t, err, ErrRegistryFinalized)
}

func TestGetRegistryErrors(t *testing.T) {
	svc := NewRegistryService(newFakeRegistryRepo(), nil)
	ctx := context.Background()

	_, err := svc.GetRegistry(ctx, "not-an-id")
	require.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.GetRegistry(ctx, primitive.NewObjectID().Hex())
	require.ErrorIs(t, err, ErrNotFound)
}
