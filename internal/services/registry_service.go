package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/owners"
	"github.com/ArowuTest/nft-raffle-backend/internal/raffle"
	"github.com/ArowuTest/nft-raffle-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// RegistryServiceImpl implements RegistryService
type RegistryServiceImpl struct {
	registryRepo repositories.RegistryRepository
	events       *EventService
	now          func() time.Time
}

// NewRegistryService creates a new RegistryService. events may be nil.
func NewRegistryService(registryRepo repositories.RegistryRepository, events *EventService) *RegistryServiceImpl {
	return &RegistryServiceImpl{registryRepo: registryRepo, events: events, now: time.Now}
}

// CreateRegistry stores a new OPEN registry. Owners are normalized and must
// be unique.
func (s *RegistryServiceImpl) CreateRegistry(ctx context.Context, req models.CreateRegistryRequest) (*models.OwnerRegistry, error) {
	list, err := cleanOwners(req.Owners, nil)
	if err != nil {
		return nil, err
	}

	now := s.now()
	registry := &models.OwnerRegistry{
		Name:      strings.TrimSpace(req.Name),
		Owners:    list,
		Status:    models.RegistryStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.registryRepo.Create(ctx, registry); err != nil {
		slog.Error("CreateRegistry: failed to store registry", "error", err, "name", registry.Name)
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}
	slog.Info("Registry created", "registryId", registry.ID.Hex(), "owners", len(list))
	s.audit(ctx, models.EventRegistryCreated, registry, fmt.Sprintf("registry %q created with %d owners", registry.Name, len(list)))
	return registry, nil
}

// AddOwners appends owners to an OPEN registry.
func (s *RegistryServiceImpl) AddOwners(ctx context.Context, registryID string, list []string) (*models.OwnerRegistry, error) {
	id, err := parseID(registryID)
	if err != nil {
		return nil, err
	}
	registry, err := s.registryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("registry", err)
	}
	if registry.Status == models.RegistryStatusFinalized {
		return nil, ErrRegistryFinalized
	}

	added, err := cleanOwners(list, registry.Owners)
	if err != nil {
		return nil, err
	}
	if len(added) == 0 {
		return registry, nil
	}

	if err := s.registryRepo.AddOwners(ctx, id, added); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, s.addConflict(ctx, id, added)
		}
		return nil, fmt.Errorf("failed to add owners: %w", err)
	}
	slog.Info("Owners added to registry", "registryId", registryID, "added", len(added))
	s.audit(ctx, models.EventOwnersAdded, registry, fmt.Sprintf("%d owners added", len(added)))
	return s.GetRegistry(ctx, registryID)
}

// FinalizeRegistry freezes an OPEN registry with at least one owner.
func (s *RegistryServiceImpl) FinalizeRegistry(ctx context.Context, registryID string) (*models.OwnerRegistry, error) {
	id, err := parseID(registryID)
	if err != nil {
		return nil, err
	}
	registry, err := s.registryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("registry", err)
	}
	if registry.Status == models.RegistryStatusFinalized {
		return nil, ErrRegistryFinalized
	}
	if len(registry.Owners) == 0 {
		return nil, ErrRegistryEmpty
	}

	if err := s.registryRepo.Finalize(ctx, id, s.now()); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRegistryFinalized
		}
		return nil, fmt.Errorf("failed to finalize registry: %w", err)
	}
	slog.Info("Registry finalized", "registryId", registryID, "owners", len(registry.Owners))
	s.audit(ctx, models.EventRegistryFinalized, registry, fmt.Sprintf("registry finalized with %d owners", len(registry.Owners)))
	return s.GetRegistry(ctx, registryID)
}

// addConflict explains a rejected append: the registry was finalized or
// another writer registered one of the owners between the read and the write.
func (s *RegistryServiceImpl) addConflict(ctx context.Context, id primitive.ObjectID, added []string) error {
	current, err := s.registryRepo.FindByID(ctx, id)
	if err != nil {
		return notFound("registry", err)
	}
	if current.Status == models.RegistryStatusFinalized {
		return ErrRegistryFinalized
	}
	if _, err := cleanOwners(added, current.Owners); err != nil {
		return err
	}
	return fmt.Errorf("failed to add owners: registry %s changed concurrently", id.Hex())
}

// GetRegistry retrieves a registry by ID
func (s *RegistryServiceImpl) GetRegistry(ctx context.Context, registryID string) (*models.OwnerRegistry, error) {
	id, err := parseID(registryID)
	if err != nil {
		return nil, err
	}
	registry, err := s.registryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("registry", err)
	}
	return registry, nil
}

// ListRegistries lists all registries
func (s *RegistryServiceImpl) ListRegistries(ctx context.Context) ([]*models.OwnerRegistry, error) {
	registries, err := s.registryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registries: %w", err)
	}
	return registries, nil
}

func (s *RegistryServiceImpl) audit(ctx context.Context, t models.EventType, registry *models.OwnerRegistry, msg string) {
	e := models.NewEvent(t, msg)
	e.RegistryID = registry.ID
	s.events.Record(ctx, e)
}

// cleanOwners normalizes list and rejects duplicates within it or against
// existing.
func cleanOwners(list, existing []string) ([]string, error) {
	normalized, err := owners.NormalizeAll(list)
	if err != nil {
		return nil, err
	}
	unique, dups := owners.Dedupe(normalized)
	if len(dups) > 0 {
		return nil, fmt.Errorf("%w: %s", raffle.ErrDuplicateInput, strings.Join(dups, ", "))
	}
	known := make(map[string]struct{}, len(existing))
	for _, o := range existing {
		known[o] = struct{}{}
	}
	for _, o := range unique {
		if _, ok := known[o]; ok {
			return nil, fmt.Errorf("%w: %s already registered", raffle.ErrDuplicateInput, o)
		}
	}
	return unique, nil
}
