package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRegistryRepo struct {
	mu        sync.Mutex
	docs      map[primitive.ObjectID]models.OwnerRegistry
	findDelay time.Duration
}

func newFakeRegistryRepo() *fakeRegistryRepo {
	return &fakeRegistryRepo{docs: map[primitive.ObjectID]models.OwnerRegistry{}}
}

func (f *fakeRegistryRepo) Create(_ context.Context, r *models.OwnerRegistry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = primitive.NewObjectID()
	r.OwnerCount = len(r.Owners)
	cp := *r
	cp.Owners = slices.Clone(r.Owners)
	f.docs[r.ID] = cp
	return nil
}

func (f *fakeRegistryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.OwnerRegistry, error) {
	if f.findDelay > 0 {
		time.Sleep(f.findDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.docs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	r.Owners = slices.Clone(r.Owners)
	return &r, nil
}

func (f *fakeRegistryRepo) FindAll(_ context.Context) ([]*models.OwnerRegistry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.OwnerRegistry{}
	for _, r := range f.docs {
		r.Owners = []string{}
		out = append(out, &r)
	}
	return out, nil
}

func (f *fakeRegistryRepo) AddOwners(_ context.Context, id primitive.ObjectID, list []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.docs[id]
	if !ok || r.Status != models.RegistryStatusOpen {
		return mongo.ErrNoDocuments
	}
	for _, o := range list {
		if slices.Contains(r.Owners, o) {
			return mongo.ErrNoDocuments
		}
	}
	r.Owners = append(slices.Clone(r.Owners), list...)
	r.OwnerCount += len(list)
	f.docs[id] = r
	return nil
}

func (f *fakeRegistryRepo) Finalize(_ context.Context, id primitive.ObjectID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.docs[id]
	if !ok || r.Status != models.RegistryStatusOpen {
		return mongo.ErrNoDocuments
	}
	r.Status = models.RegistryStatusFinalized
	r.FinalizedAt = at
	f.docs[id] = r
	return nil
}

type fakeRaffleRepo struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Raffle
}

func newFakeRaffleRepo() *fakeRaffleRepo {
	return &fakeRaffleRepo{docs: map[primitive.ObjectID]models.Raffle{}}
}

func (f *fakeRaffleRepo) Create(_ context.Context, r *models.Raffle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = primitive.NewObjectID()
	f.docs[r.ID] = cloneRaffle(*r)
	return nil
}

func (f *fakeRaffleRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Raffle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.docs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	r = cloneRaffle(r)
	return &r, nil
}

func (f *fakeRaffleRepo) FindAll(_ context.Context, status models.RaffleStatus) ([]*models.Raffle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Raffle{}
	for _, r := range f.docs {
		if status != "" && r.Status != status {
			continue
		}
		r = cloneRaffle(r)
		out = append(out, &r)
	}
	return out, nil
}

func (f *fakeRaffleRepo) Update(ctx context.Context, r *models.Raffle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.docs[r.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.docs[r.ID] = cloneRaffle(*r)
	return nil
}

func (f *fakeRaffleRepo) TransitionStatus(_ context.Context, id primitive.ObjectID, from, to models.RaffleStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.docs[id]
	if !ok || r.Status != from {
		return mongo.ErrNoDocuments
	}
	r.Status = to
	f.docs[id] = r
	return nil
}

func (f *fakeRaffleRepo) stored(id primitive.ObjectID) models.Raffle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneRaffle(f.docs[id])
}

func cloneRaffle(r models.Raffle) models.Raffle {
	r.Winners = slices.Clone(r.Winners)
	r.ExecutionLog = slices.Clone(r.ExecutionLog)
	return r
}

type fakeWinnerRepo struct {
	mu       sync.Mutex
	winners  []*models.Winner
	err      error
	onCreate func()
}

func (f *fakeWinnerRepo) CreateMany(ctx context.Context, winners []*models.Winner) error {
	if f.onCreate != nil {
		f.onCreate()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, w := range winners {
		w.ID = primitive.NewObjectID()
		f.winners = append(f.winners, w)
	}
	return nil
}

func (f *fakeWinnerRepo) FindByRaffleID(_ context.Context, raffleID primitive.ObjectID) ([]*models.Winner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Winner{}
	for _, w := range f.winners {
		if w.RaffleID == raffleID {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeAdminRepo struct {
	mu    sync.Mutex
	users map[string]models.AdminUser
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{users: map[string]models.AdminUser{}}
}

func (f *fakeAdminRepo) Create(_ context.Context, u *models.AdminUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = primitive.NewObjectID()
	f.users[u.Email] = *u
	return nil
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &u, nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []*models.Event
	err    error
}

func (f *fakeEventRepo) Create(ctx context.Context, e *models.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	e.ID = primitive.NewObjectID()
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventRepo) FindAll(_ context.Context, page, limit int) ([]*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Event{}
	for i := len(f.events) - 1 - (page-1)*limit; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.events[i])
	}
	return out, nil
}

func (f *fakeEventRepo) types() []models.EventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.EventType, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}
