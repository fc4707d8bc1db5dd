package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"fixify/store"
)

// ErrActorNotFound signals that no actor with the given id exists.
var ErrActorNotFound = errors.New("identity: actor not found")

// Repository handles persistence of actor records.
type Repository interface {
	GetByID(ctx context.Context, id string) (Actor, error)
	Put(ctx context.Context, actor Actor) error
	Delete(ctx context.Context, id string) error
}

// SlotRepository implements Repository on the users slot of a snapshot
// store. The whole actor set is rehydrated per read and overwritten
// wholesale per write.
type SlotRepository struct {
	mu    sync.Mutex
	slots store.Store
}

// NewRepository creates a slot-backed actor repository.
func NewRepository(slots store.Store) *SlotRepository {
	return &SlotRepository{slots: slots}
}

func (r *SlotRepository) load(ctx context.Context) (map[string]Actor, error) {
	data, err := r.slots.Load(ctx, store.SlotUsers)
	if err != nil {
		if errors.Is(err, store.ErrSlotNotFound) {
			return make(map[string]Actor), nil
		}
		return nil, fmt.Errorf("identity: load users slot: %w", err)
	}

	actors := make(map[string]Actor)
	if err := json.Unmarshal(data, &actors); err != nil {
		return nil, fmt.Errorf("identity: decode users slot: %w", err)
	}
	return actors, nil
}

func (r *SlotRepository) save(ctx context.Context, actors map[string]Actor) error {
	data, err := json.Marshal(actors)
	if err != nil {
		return fmt.Errorf("identity: encode users slot: %w", err)
	}
	if err := r.slots.Save(ctx, store.SlotUsers, data); err != nil {
		return fmt.Errorf("identity: save users slot: %w", err)
	}
	return nil
}

// GetByID retrieves an actor record.
func (r *SlotRepository) GetByID(ctx context.Context, id string) (Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actors, err := r.load(ctx)
	if err != nil {
		return Actor{}, err
	}

	actor, ok := actors[id]
	if !ok {
		return Actor{}, ErrActorNotFound
	}
	return actor, nil
}

// Put inserts or replaces an actor record.
func (r *SlotRepository) Put(ctx context.Context, actor Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	actors, err := r.load(ctx)
	if err != nil {
		return err
	}

	actors[actor.ID] = actor
	return r.save(ctx, actors)
}

// Delete removes an actor record. Deleting an unknown id is a no-op.
func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	actors, err := r.load(ctx)
	if err != nil {
		return err
	}

	delete(actors, id)
	return r.save(ctx, actors)
}
