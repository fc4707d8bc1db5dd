package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fixify/store"
)

// Repository handles persistence of the full job list. The snapshot model
// reads and writes the list wholesale; callers are responsible for
// serializing read-modify-write cycles.
type Repository interface {
	List(ctx context.Context) ([]Job, error)
	SaveAll(ctx context.Context, jobs []Job) error
}

// SlotRepository implements Repository on the jobs slot of a snapshot store.
type SlotRepository struct {
	slots store.Store
}

// NewRepository creates a slot-backed job repository.
func NewRepository(slots store.Store) *SlotRepository {
	return &SlotRepository{slots: slots}
}

// List returns every stored job. A slot that has never been written yields
// an empty list.
func (r *SlotRepository) List(ctx context.Context) ([]Job, error) {
	data, err := r.slots.Load(ctx, store.SlotJobs)
	if err != nil {
		if errors.Is(err, store.ErrSlotNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("job: load jobs slot: %w", err)
	}

	var jobs []Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("job: decode jobs slot: %w", err)
	}
	return jobs, nil
}

// SaveAll overwrites the jobs slot with the given list.
func (r *SlotRepository) SaveAll(ctx context.Context, jobs []Job) error {
	if jobs == nil {
		jobs = []Job{}
	}
	data, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("job: encode jobs slot: %w", err)
	}
	if err := r.slots.Save(ctx, store.SlotJobs, data); err != nil {
		return fmt.Errorf("job: save jobs slot: %w", err)
	}
	return nil
}
