package job

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fixify/geo"
	"fixify/identity"
)

var (
	// ErrUnauthenticated signals a mutation attempted with no acting user.
	ErrUnauthenticated = errors.New("job: authentication required")
	// ErrNotFound signals a lookup for a job that does not exist.
	ErrNotFound = errors.New("job: not found")
	// ErrInvalidParams signals a create call with missing or invalid fields.
	ErrInvalidParams = errors.New("job: invalid job parameters")
)

// Registry is the authority over the job list: creation, lookups, the
// status state machine, and the per-actor derived views. All derived views
// are computed on demand from the canonical list rather than kept as cached
// state.
type Registry struct {
	mu    sync.Mutex
	repo  Repository
	now   func() time.Time
	idGen func() string
}

// NewRegistry creates a job registry over the given repository.
func NewRegistry(repo Repository) *Registry {
	return &Registry{
		repo:  repo,
		now:   time.Now,
		idGen: func() string { return "job-" + uuid.NewString() },
	}
}

// Create adds a new posting with status open. The poster fields are copied
// from the acting user and are immutable afterwards.
func (r *Registry) Create(ctx context.Context, actor identity.Actor, params CreateParams) (Job, error) {
	if actor.ID == "" {
		return Job{}, ErrUnauthenticated
	}
	if params.Title == "" {
		return Job{}, fmt.Errorf("%w: title is required", ErrInvalidParams)
	}
	if !ValidCategory(params.Category) {
		return Job{}, fmt.Errorf("%w: unknown category %q", ErrInvalidParams, params.Category)
	}
	if params.Budget <= 0 {
		return Job{}, fmt.Errorf("%w: budget must be positive", ErrInvalidParams)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	jobs, err := r.repo.List(ctx)
	if err != nil {
		return Job{}, err
	}

	j := Job{
		ID:          r.idGen(),
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		Budget:      params.Budget,
		Location:    params.Location,
		Status:      StatusOpen,
		CreatedAt:   r.now().UTC(),
		UserID:      actor.ID,
		UserName:    actor.Name,
		UserImage:   actor.ProfileImage,
	}

	if err := r.repo.SaveAll(ctx, append(jobs, j)); err != nil {
		return Job{}, err
	}
	return j, nil
}

// GetByID returns the job with the given id.
func (r *Registry) GetByID(ctx context.Context, id string) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs, err := r.repo.List(ctx)
	if err != nil {
		return Job{}, err
	}
	for _, j := range jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return Job{}, ErrNotFound
}

// Transition advances a job to the next lifecycle state on behalf of the
// acting user. Accepting an open job assigns it to the acting worker in the
// same step. Illegal or unauthorized transitions fail without touching the
// job list.
func (r *Registry) Transition(ctx context.Context, actor identity.Actor, jobID string, to Status) (Job, error) {
	if actor.ID == "" {
		return Job{}, ErrUnauthenticated
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	jobs, err := r.repo.List(ctx)
	if err != nil {
		return Job{}, err
	}

	idx := -1
	for i, j := range jobs {
		if j.ID == jobID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Job{}, ErrNotFound
	}

	j := jobs[idx]
	if err := checkTransition(j, actor, to); err != nil {
		return Job{}, err
	}

	if j.Status == StatusOpen {
		j.WorkerID = actor.ID
		j.WorkerName = actor.Name
		j.WorkerImage = actor.ProfileImage
	}
	j.Status = to
	jobs[idx] = j

	if err := r.repo.SaveAll(ctx, jobs); err != nil {
		return Job{}, err
	}
	return j, nil
}

// Postings returns the jobs posted by the acting homeowner.
func (r *Registry) Postings(ctx context.Context, actor identity.Actor) ([]Job, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	jobs, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if j.UserID == actor.ID {
			out = append(out, j)
		}
	}
	return out, nil
}

// Assignments returns the jobs assigned to the acting worker.
func (r *Registry) Assignments(ctx context.Context, actor identity.Actor) ([]Job, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	jobs, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if j.WorkerID == actor.ID {
			out = append(out, j)
		}
	}
	return out, nil
}

// Nearby returns the open jobs annotated with their distance from the
// acting worker's location, nearest first. A worker with no location on
// file gets an empty view.
func (r *Registry) Nearby(ctx context.Context, actor identity.Actor) ([]NearbyJob, error) {
	if actor.ID == "" {
		return nil, ErrUnauthenticated
	}
	if actor.Location == nil {
		return []NearbyJob{}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	jobs, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	origin := actor.Location.Point
	out := make([]NearbyJob, 0, len(jobs))
	for _, j := range jobs {
		if j.Status != StatusOpen {
			continue
		}
		out = append(out, NearbyJob{
			Job:      j,
			Distance: geo.Distance(origin, j.Location.Point),
		})
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].Distance < out[k].Distance
	})
	return out, nil
}

// EnsureSeed writes the starter job set if the slot has never been
// populated.
func (r *Registry) EnsureSeed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs, err := r.repo.List(ctx)
	if err != nil {
		return err
	}
	if jobs != nil {
		return nil
	}
	return r.repo.SaveAll(ctx, seedJobs(r.now().UTC()))
}
