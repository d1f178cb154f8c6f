package services

import (
	"context"
	"sync"
	"time"

	"github.com/apexshade/playbook/internal/models"
	"github.com/apexshade/playbook/internal/utils"
)

// fakeInteractionRepo mirrors the Mongo repo's contract in memory: atomic
// per-record operations, newest-first listing, ErrNotFound on missing ids.
type fakeInteractionRepo struct {
	mu   sync.Mutex
	rows []models.Interaction
}

func (f *fakeInteractionRepo) Create(_ context.Context, in *models.Interaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, *in)
	return nil
}

func (f *fakeInteractionRepo) ListByStatus(_ context.Context, status string) ([]models.Interaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Interaction
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].Status == status {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *fakeInteractionRepo) Approve(_ context.Context, interactionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].InteractionID == interactionID {
			f.rows[i].Status = models.StatusApproved
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeInteractionRepo) Delete(_ context.Context, interactionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].InteractionID == interactionID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeInteractionRepo) get(interactionID string) (models.Interaction, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.InteractionID == interactionID {
			return r, true
		}
	}
	return models.Interaction{}, false
}

// stubProvider returns a canned script, or an error when set.
type stubProvider struct {
	script  string
	err     error
	waitCtx bool // block until the context expires, then return its error

	mu         sync.Mutex
	lastSystem string
	lastUser   string
}

func (p *stubProvider) Generate(ctx context.Context, system, user string) (string, error) {
	p.mu.Lock()
	p.lastSystem = system
	p.lastUser = user
	p.mu.Unlock()

	if p.waitCtx {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if p.err != nil {
		return "", p.err
	}
	return p.script, nil
}

func (p *stubProvider) Close() error { return nil }

// fakeCache is an in-memory cache.Cache for retriever tests.
type fakeCache struct {
	mu   sync.Mutex
	vals map[string]string
	gets int
	sets int
	dels int
}

func newFakeCache() *fakeCache {
	return &fakeCache{vals: map[string]string{}}
}

func (f *fakeCache) GetString(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	v, ok := f.vals[key]
	return v, ok, nil
}

func (f *fakeCache) SetString(_ context.Context, key, val string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.vals[key] = val
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dels++
	for _, k := range keys {
		delete(f.vals, k)
	}
	return nil
}
