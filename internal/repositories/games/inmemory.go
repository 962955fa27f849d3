package games

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*GameData
}

// NewInMemory creates a new in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*GameData),
	}
}

// Save stores a game
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data := cloneData(input.Data)
	data.SavedAt = r.clock.Now()
	r.store[data.ID] = data

	return &SaveOutput{Data: cloneData(data)}, nil
}

// Get retrieves a game by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.store[input.ID]
	if !ok {
		return nil, errors.NotFoundf(errNotFound, input.ID)
	}

	return &GetOutput{Data: cloneData(data)}, nil
}

// List returns saved games, newest first
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	out := make([]*GameData, 0, len(r.store))
	for _, data := range r.store {
		out = append(out, cloneData(data))
	}
	r.mu.RUnlock()

	sortNewestFirst(out)
	if input.Limit > 0 && len(out) > input.Limit {
		out = out[:input.Limit]
	}
	return &ListOutput{Games: out}, nil
}

// Delete removes a game
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[input.ID]; !ok {
		return nil, errors.NotFoundf(errNotFound, input.ID)
	}
	delete(r.store, input.ID)
	return &DeleteOutput{}, nil
}

func cloneData(d *GameData) *GameData {
	c := *d
	c.Units = append([]UnitData(nil), d.Units...)
	return &c
}

func sortNewestFirst(games []*GameData) {
	sort.SliceStable(games, func(i, j int) bool {
		if games[i].SavedAt.Equal(games[j].SavedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].SavedAt.After(games[j].SavedAt)
	})
}
