package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	"github.com/ArowuTest/nft-raffle-backend/internal/metrics"
	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/raffle"
	"github.com/ArowuTest/nft-raffle-backend/internal/repositories"
	"github.com/ArowuTest/nft-raffle-backend/internal/utils"
	lru "github.com/hashicorp/golang-lru"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// executeTimeout bounds the work done after a raffle is claimed.
const executeTimeout = 30 * time.Second

// RaffleServiceImpl implements RaffleService
type RaffleServiceImpl struct {
	raffleRepo   repositories.RaffleRepository
	registryRepo repositories.RegistryRepository
	winnerRepo   repositories.WinnerRepository
	cfg          config.RaffleConfig
	metrics      *metrics.Metrics
	events       *EventService
	summaries    *lru.Cache // completed raffles only; nil disables caching
	now          func() time.Time
}

// NewRaffleService creates a new RaffleService. m and events may be nil.
func NewRaffleService(
	raffleRepo repositories.RaffleRepository,
	registryRepo repositories.RegistryRepository,
	winnerRepo repositories.WinnerRepository,
	cfg config.RaffleConfig,
	m *metrics.Metrics,
	events *EventService,
) (*RaffleServiceImpl, error) {
	if cfg.RandomSource != raffle.SourceCrypto && cfg.RandomSource != raffle.SourceSeeded {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRandomSource, cfg.RandomSource)
	}
	s := &RaffleServiceImpl{
		raffleRepo:   raffleRepo,
		registryRepo: registryRepo,
		winnerRepo:   winnerRepo,
		cfg:          cfg,
		metrics:      m,
		events:       events,
		now:          time.Now,
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New(cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create summary cache: %w", err)
		}
		s.summaries = cache
	}
	return s, nil
}

// ScheduleRaffle creates a SCHEDULED raffle over an existing registry. Seeded
// raffles get their commitment published now and the seed revealed after
// the draw.
func (s *RaffleServiceImpl) ScheduleRaffle(ctx context.Context, req models.ScheduleRaffleRequest) (*models.Raffle, error) {
	registryID, err := parseID(req.RegistryID)
	if err != nil {
		return nil, err
	}

	winnerCount := s.cfg.DefaultWinnerCount
	if req.WinnerCount != nil {
		winnerCount = *req.WinnerCount
	}
	if winnerCount < 0 {
		return nil, fmt.Errorf("%w: winner count %d is negative", raffle.ErrInvalidArgument, winnerCount)
	}

	source := req.RandomSource
	if source == "" {
		source = s.cfg.RandomSource
	}
	if source != raffle.SourceCrypto && source != raffle.SourceSeeded {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRandomSource, source)
	}
	if req.Seed != "" && source != raffle.SourceSeeded {
		return nil, fmt.Errorf("%w: a seed requires the %q random source", raffle.ErrInvalidArgument, raffle.SourceSeeded)
	}

	if _, err := s.registryRepo.FindByID(ctx, registryID); err != nil {
		return nil, notFound("registry", err)
	}

	now := s.now()
	r := &models.Raffle{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		RegistryID:   registryID,
		WinnerCount:  winnerCount,
		Status:       models.RaffleStatusScheduled,
		RandomSource: source,
		Winners:      []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if source == raffle.SourceSeeded {
		seed := req.Seed
		if seed == "" {
			if seed, err = raffle.NewSeed(); err != nil {
				return nil, fmt.Errorf("failed to generate seed: %w", err)
			}
		}
		r.PendingSeed = seed
		r.SeedCommitment = raffle.Commitment(seed)
	}

	if err := s.raffleRepo.Create(ctx, r); err != nil {
		slog.Error("ScheduleRaffle: failed to store raffle", "error", err, "registryId", req.RegistryID)
		return nil, fmt.Errorf("failed to schedule raffle: %w", err)
	}
	slog.Info("Raffle scheduled", "raffleId", r.ID.Hex(), "registryId", req.RegistryID, "winnerCount", winnerCount, "randomSource", source)
	s.audit(ctx, models.EventRaffleScheduled, r, "", fmt.Sprintf("raffle %q scheduled for %d winners (%s)", r.Name, winnerCount, source))
	return r, nil
}

// ExecuteRaffle draws the winners of a SCHEDULED raffle over its finalized
// registry. Only one caller can move a raffle out of SCHEDULED; the raffle
// ends COMPLETED or FAILED.
func (s *RaffleServiceImpl) ExecuteRaffle(ctx context.Context, raffleID string, executedBy string) (result *models.Raffle, err error) {
	id, err := parseID(raffleID)
	if err != nil {
		return nil, err
	}

	// 1. Load the raffle and its registry
	r, err := s.raffleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("raffle", err)
	}
	if r.Status != models.RaffleStatusScheduled {
		slog.Warn("ExecuteRaffle: raffle not in SCHEDULED state", "raffleId", raffleID, "status", r.Status)
		return r, fmt.Errorf("%w (current: %s)", ErrRaffleNotSchedulable, r.Status)
	}
	registry, err := s.registryRepo.FindByID(ctx, r.RegistryID)
	if err != nil {
		return nil, notFound("registry", err)
	}
	if registry.Status != models.RegistryStatusFinalized {
		return r, ErrRegistryNotFinalized
	}

	// 2. Claim the raffle
	if err := s.raffleRepo.TransitionStatus(ctx, id, models.RaffleStatusScheduled, models.RaffleStatusExecuting); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			slog.Warn("ExecuteRaffle: raffle claimed by another caller", "raffleId", raffleID)
			return nil, ErrRaffleNotSchedulable
		}
		return nil, fmt.Errorf("failed to mark raffle as executing: %w", err)
	}

	// Once claimed, the raffle must reach COMPLETED or FAILED even if the caller goes away.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), executeTimeout)
	defer cancel()

	start := s.now()
	r.Status = models.RaffleStatusExecuting
	r.ExecutedBy = executedBy
	r.ExecutionStartTime = start
	r.Logf("Starting execution by %s", executedBy)

	defer func() {
		if p := recover(); p != nil {
			r.Status = models.RaffleStatusFailed
			r.ErrorMessage = fmt.Sprintf("panic during execution: %v", p)
			r.Logf("PANIC: %v", p)
			err = fmt.Errorf("raffle execution panicked: %v", p)
		} else if err != nil {
			r.Status = models.RaffleStatusFailed
			r.ErrorMessage = err.Error()
			r.Logf("ERROR: %s", err.Error())
		} else {
			r.Status = models.RaffleStatusCompleted
			r.Seed = r.PendingSeed
			r.PendingSeed = ""
			r.Logf("Execution completed successfully")
		}
		r.ExecutionEndTime = s.now()
		r.UpdatedAt = r.ExecutionEndTime

		if updateErr := s.raffleRepo.Update(ctx, r); updateErr != nil {
			slog.Error("ExecuteRaffle: CRITICAL: failed to update final raffle status", "error", updateErr, "raffleId", raffleID, "finalStatusAttempt", r.Status)
			if err == nil {
				err = fmt.Errorf("failed to store raffle result: %w", updateErr)
			}
		}

		outcome := metrics.OutcomeCompleted
		if r.Status != models.RaffleStatusCompleted {
			outcome = metrics.OutcomeFailed
		}
		s.metrics.ObserveDraw(outcome, r.NumWinners, r.ExecutionEndTime.Sub(start))
		if r.Status == models.RaffleStatusCompleted {
			s.audit(ctx, models.EventRaffleCompleted, r, executedBy, fmt.Sprintf("%d winners drawn from %d owners", r.NumWinners, r.TotalParticipants))
		} else {
			s.audit(ctx, models.EventRaffleFailed, r, executedBy, r.ErrorMessage)
		}
		result = r
	}()

	// 3. Draw
	r.TotalParticipants = len(registry.Owners)
	r.Logf("Registry %s: %d eligible owners", registry.ID.Hex(), len(registry.Owners))

	source, err := newSource(r.RandomSource, r.PendingSeed)
	if err != nil {
		return r, err
	}
	winners, err := raffle.NewSelector(source).Select(registry.Owners, r.WinnerCount)
	if err != nil {
		return r, fmt.Errorf("failed to select winners: %w", err)
	}

	// 4. Record winners
	winDate := s.now()
	records := make([]*models.Winner, 0, len(winners))
	for i, addr := range winners {
		records = append(records, &models.Winner{
			RaffleID:  r.ID,
			Address:   addr,
			Position:  i + 1,
			WinDate:   winDate,
			CreatedAt: winDate,
		})
		r.Logf("Winner #%d: %s", i+1, utils.ShortenAddress(addr))
	}
	if len(records) > 0 {
		if err = s.winnerRepo.CreateMany(ctx, records); err != nil {
			return r, fmt.Errorf("failed to store winners: %w", err)
		}
	}

	r.Winners = winners
	r.NumWinners = len(winners)
	slog.Info("Raffle executed", "raffleId", raffleID, "winners", len(winners), "participants", r.TotalParticipants)
	return r, nil
}

// CancelRaffle cancels a SCHEDULED raffle.
func (s *RaffleServiceImpl) CancelRaffle(ctx context.Context, raffleID string) (*models.Raffle, error) {
	id, err := parseID(raffleID)
	if err != nil {
		return nil, err
	}
	err = s.raffleRepo.TransitionStatus(ctx, id, models.RaffleStatusScheduled, models.RaffleStatusCancelled)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if _, findErr := s.raffleRepo.FindByID(ctx, id); findErr != nil {
			return nil, notFound("raffle", findErr)
		}
		return nil, ErrRaffleNotSchedulable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel raffle: %w", err)
	}
	slog.Info("Raffle cancelled", "raffleId", raffleID)
	r, err := s.GetRaffle(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, models.EventRaffleCancelled, r, "", "raffle cancelled")
	return r, nil
}

// GetRaffle retrieves a raffle by ID
func (s *RaffleServiceImpl) GetRaffle(ctx context.Context, raffleID string) (*models.Raffle, error) {
	id, err := parseID(raffleID)
	if err != nil {
		return nil, err
	}
	r, err := s.raffleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("raffle", err)
	}
	return r, nil
}

// ListRaffles lists raffles newest first. An empty status lists all.
func (s *RaffleServiceImpl) ListRaffles(ctx context.Context, status string) ([]*models.Raffle, error) {
	st := models.RaffleStatus(strings.ToUpper(status))
	switch st {
	case "", models.RaffleStatusScheduled, models.RaffleStatusExecuting,
		models.RaffleStatusCompleted, models.RaffleStatusFailed, models.RaffleStatusCancelled:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	raffles, err := s.raffleRepo.FindAll(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("failed to list raffles: %w", err)
	}
	return raffles, nil
}

// GetWinners returns the winners of a raffle in draw order
func (s *RaffleServiceImpl) GetWinners(ctx context.Context, raffleID string) ([]*models.Winner, error) {
	r, err := s.GetRaffle(ctx, raffleID)
	if err != nil {
		return nil, err
	}
	winners, err := s.winnerRepo.FindByRaffleID(ctx, r.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load winners: %w", err)
	}
	return winners, nil
}

// GetSummary builds the results view of a raffle. Completed raffles never
// change, so their summaries are cached.
func (s *RaffleServiceImpl) GetSummary(ctx context.Context, raffleID string) (*models.RaffleSummary, error) {
	if s.summaries != nil {
		if v, ok := s.summaries.Get(raffleID); ok {
			return v.(*models.RaffleSummary), nil
		}
	}

	r, err := s.GetRaffle(ctx, raffleID)
	if err != nil {
		return nil, err
	}

	totalOwners := r.TotalParticipants
	if r.Status == models.RaffleStatusScheduled {
		registry, err := s.registryRepo.FindByID(ctx, r.RegistryID)
		if err != nil {
			return nil, notFound("registry", err)
		}
		totalOwners = len(registry.Owners)
	}

	raffleDate := r.ExecutionEndTime
	if raffleDate.IsZero() {
		raffleDate = r.CreatedAt
	}

	summary := &models.RaffleSummary{
		RaffleID:       r.ID.Hex(),
		Name:           r.Name,
		Description:    r.Description,
		Status:         r.Status,
		TotalOwners:    totalOwners,
		WinnersCount:   len(r.Winners),
		RaffleDate:     raffleDate,
		RandomSource:   r.RandomSource,
		SeedCommitment: r.SeedCommitment,
		Seed:           r.Seed,
		Winners:        make([]models.WinnerEntry, 0, len(r.Winners)),
	}
	for i, addr := range r.Winners {
		summary.Winners = append(summary.Winners, models.WinnerEntry{
			Position:     i + 1,
			Address:      addr,
			ShortAddress: utils.ShortenAddress(addr),
		})
	}

	if s.summaries != nil && r.Status == models.RaffleStatusCompleted {
		s.summaries.Add(raffleID, summary)
	}
	return summary, nil
}

// Draw runs a stateless draw. Participants are used exactly as given; a seed
// switches to the reproducible source.
func (s *RaffleServiceImpl) Draw(ctx context.Context, req models.DrawRequest) (*models.DrawResult, error) {
	sourceName := raffle.SourceCrypto
	if req.Seed != "" {
		sourceName = raffle.SourceSeeded
	}
	source, err := newSource(sourceName, req.Seed)
	if err != nil {
		return nil, err
	}
	winners, err := raffle.NewSelector(source).Select(req.Participants, req.WinnerCount)
	if err != nil {
		return nil, err
	}
	slog.Debug("Stateless draw", "participants", len(req.Participants), "winners", len(winners), "randomSource", sourceName)
	return &models.DrawResult{
		Winners:      winners,
		WinnerCount:  len(winners),
		TotalOwners:  len(req.Participants),
		RandomSource: sourceName,
		Seed:         req.Seed,
	}, nil
}

func (s *RaffleServiceImpl) audit(ctx context.Context, t models.EventType, r *models.Raffle, actor, msg string) {
	e := models.NewEvent(t, msg)
	e.RaffleID = r.ID
	e.RegistryID = r.RegistryID
	e.Actor = actor
	s.events.Record(ctx, e)
}

// newSource builds the named random source. Seeded sources need a seed.
func newSource(name, seed string) (raffle.RandomSource, error) {
	switch name {
	case raffle.SourceCrypto:
		return raffle.CryptoSource{}, nil
	case raffle.SourceSeeded:
		src, err := raffle.NewSeededSource(seed)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", raffle.ErrInvalidArgument, err)
		}
		return src, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRandomSource, name)
	}
}
