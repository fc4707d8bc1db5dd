package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fixify/store"
)

// Repository handles persistence of the flat message list. The snapshot
// model reads and writes the list wholesale; callers serialize their own
// read-modify-write cycles.
type Repository interface {
	List(ctx context.Context) ([]Message, error)
	SaveAll(ctx context.Context, msgs []Message) error
}

// SlotRepository implements Repository on the messages slot of a snapshot
// store.
type SlotRepository struct {
	slots store.Store
}

// NewRepository creates a slot-backed message repository.
func NewRepository(slots store.Store) *SlotRepository {
	return &SlotRepository{slots: slots}
}

// List returns every stored message. A slot that has never been written
// yields an empty list.
func (r *SlotRepository) List(ctx context.Context) ([]Message, error) {
	data, err := r.slots.Load(ctx, store.SlotMessages)
	if err != nil {
		if errors.Is(err, store.ErrSlotNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("chat: load messages slot: %w", err)
	}

	var msgs []Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("chat: decode messages slot: %w", err)
	}
	return msgs, nil
}

// SaveAll overwrites the messages slot with the given list.
func (r *SlotRepository) SaveAll(ctx context.Context, msgs []Message) error {
	if msgs == nil {
		msgs = []Message{}
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("chat: encode messages slot: %w", err)
	}
	if err := r.slots.Save(ctx, store.SlotMessages, data); err != nil {
		return fmt.Errorf("chat: save messages slot: %w", err)
	}
	return nil
}
