package job

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fixify/geo"
	"fixify/identity"
	"fixify/store"
)

func newTestRegistry() *Registry {
	reg := NewRegistry(NewRepository(store.NewMemoryStore()))
	n := 0
	reg.idGen = func() string {
		n++
		return fmt.Sprintf("job-%d", n)
	}
	return reg
}

func homeowner(id, name string) identity.Actor {
	return identity.Actor{
		ID:           id,
		Name:         name,
		Role:         identity.RoleUser,
		ProfileImage: "https://ui-avatars.com/api/?name=" + name,
	}
}

func worker(id, name string, loc *geo.Location) identity.Actor {
	return identity.Actor{
		ID:           id,
		Name:         name,
		Role:         identity.RoleWorker,
		Location:     loc,
		ProfileImage: "https://ui-avatars.com/api/?name=" + name,
	}
}

func nycLocation(lat, lng float64) geo.Location {
	return geo.Location{Point: geo.Point{Lat: lat, Lng: lng}, Address: "New York, NY"}
}

func TestRegistry_CreateSetsPosterAndStatus(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()
	alice := homeowner("user-a", "Alice")

	j, err := reg.Create(ctx, alice, CreateParams{
		Title:    "Fix leaking sink",
		Category: "Plumbing",
		Budget:   100,
		Location: nycLocation(40.7128, -74.0060),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if j.Status != StatusOpen {
		t.Errorf("expected status open, got %q", j.Status)
	}
	if j.UserID != alice.ID || j.UserName != alice.Name || j.UserImage != alice.ProfileImage {
		t.Errorf("poster fields not copied from actor: %+v", j)
	}
	if j.WorkerID != "" {
		t.Errorf("open job must have no assignee, got %q", j.WorkerID)
	}
	if j.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}

	got, err := reg.GetByID(ctx, j.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.ID != j.ID {
		t.Fatalf("expected persisted job, got %+v", got)
	}
}

func TestRegistry_CreateUnauthenticated(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()

	_, err := reg.Create(ctx, identity.Actor{}, CreateParams{
		Title:    "Fix sink",
		Category: "Plumbing",
		Budget:   100,
	})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	// The job set must be unchanged.
	jobs, err := reg.repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected empty job set, got %d jobs", len(jobs))
	}
}

func TestRegistry_CreateValidation(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()
	alice := homeowner("user-a", "Alice")

	cases := []struct {
		name   string
		params CreateParams
	}{
		{"missing title", CreateParams{Category: "Plumbing", Budget: 50}},
		{"unknown category", CreateParams{Title: "t", Category: "Roofing", Budget: 50}},
		{"zero budget", CreateParams{Title: "t", Category: "Other", Budget: 0}},
		{"negative budget", CreateParams{Title: "t", Category: "Other", Budget: -10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := reg.Create(ctx, alice, tc.params); !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestRegistry_GetByIDNotFound(t *testing.T) {
	reg := newTestRegistry()

	if _, err := reg.GetByID(context.Background(), "job-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistry_AcceptAssignsWorkerAtomically(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()
	alice := homeowner("user-a", "Alice")
	loc := nycLocation(40.7128, -74.0060)
	bob := worker("worker-b", "Bob", &loc)

	j, err := reg.Create(ctx, alice, CreateParams{
		Title:    "Fix sink",
		Category: "Plumbing",
		Budget:   100,
		Location: nycLocation(40.7128, -74.0060),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	accepted, err := reg.Transition(ctx, bob, j.ID, StatusAssigned)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != StatusAssigned {
		t.Errorf("expected assigned, got %q", accepted.Status)
	}
	if accepted.WorkerID != bob.ID || accepted.WorkerName != bob.Name {
		t.Errorf("assignee fields not populated with accepting worker: %+v", accepted)
	}

	// The nearby view for the worker must no longer include the job.
	nearby, err := reg.Nearby(ctx, bob)
	if err != nil {
		t.Fatalf("nearby: %v", err)
	}
	for _, n := range nearby {
		if n.ID == j.ID {
			t.Fatalf("assigned job still present in nearby view")
		}
	}
}

func TestRegistry_FullLifecycle(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()
	alice := homeowner("user-a", "Alice")
	bob := worker("worker-b", "Bob", nil)

	j, err := reg.Create(ctx, alice, CreateParams{
		Title:    "Paint fence",
		Category: "Painting",
		Budget:   200,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, next := range []Status{StatusAssigned, StatusInProgress, StatusCompleted} {
		if j, err = reg.Transition(ctx, bob, j.ID, next); err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
	}
	if j.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q", j.Status)
	}

	// Terminal state: no further moves in any direction.
	for _, to := range []Status{StatusOpen, StatusAssigned, StatusInProgress, StatusCompleted} {
		if _, err := reg.Transition(ctx, bob, j.ID, to); !errors.Is(err, ErrIllegalTransition) {
			t.Errorf("expected ErrIllegalTransition from completed to %s, got %v", to, err)
		}
	}
}

func TestRegistry_TransitionGuards(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()
	alice := homeowner("user-a", "Alice")
	bob := worker("worker-b", "Bob", nil)
	carl := worker("worker-c", "Carl", nil)

	j, err := reg.Create(ctx, alice, CreateParams{
		Title:    "Clean gutters",
		Category: "Cleaning",
		Budget:   80,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := reg.Transition(ctx, identity.Actor{}, j.ID, StatusAssigned); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := reg.Transition(ctx, alice, j.ID, StatusAssigned); !errors.Is(err, ErrForbidden) {
		t.Errorf("poster accepting own job: expected ErrForbidden, got %v", err)
	}
	if _, err := reg.Transition(ctx, bob, "job-missing", StatusAssigned); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if _, err := reg.Transition(ctx, bob, j.ID, StatusAssigned); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if _, err := reg.Transition(ctx, carl, j.ID, StatusInProgress); !errors.Is(err, ErrForbidden) {
		t.Errorf("unassigned worker advancing: expected ErrForbidden, got %v", err)
	}

	// A failed transition must leave the job untouched.
	got, err := reg.GetByID(ctx, j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusAssigned || got.WorkerID != bob.ID {
		t.Fatalf("job mutated by rejected transition: %+v", got)
	}
}

func TestRegistry_PostingsAndAssignments(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()
	alice := homeowner("user-a", "Alice")
	dana := homeowner("user-d", "Dana")
	bob := worker("worker-b", "Bob", nil)

	j1, err := reg.Create(ctx, alice, CreateParams{Title: "a", Category: "Other", Budget: 10})
	if err != nil {
		t.Fatalf("create j1: %v", err)
	}
	if _, err := reg.Create(ctx, dana, CreateParams{Title: "b", Category: "Other", Budget: 10}); err != nil {
		t.Fatalf("create j2: %v", err)
	}

	postings, err := reg.Postings(ctx, alice)
	if err != nil {
		t.Fatalf("postings: %v", err)
	}
	if len(postings) != 1 || postings[0].ID != j1.ID {
		t.Fatalf("expected only alice's posting, got %+v", postings)
	}

	if _, err := reg.Transition(ctx, bob, j1.ID, StatusAssigned); err != nil {
		t.Fatalf("accept: %v", err)
	}
	assignments, err := reg.Assignments(ctx, bob)
	if err != nil {
		t.Fatalf("assignments: %v", err)
	}
	if len(assignments) != 1 || assignments[0].ID != j1.ID {
		t.Fatalf("expected bob's assignment, got %+v", assignments)
	}
}

func TestRegistry_NearbyOrdersByDistance(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()
	alice := homeowner("user-a", "Alice")

	// Create far before near to prove the sort is by distance, not insertion.
	far, err := reg.Create(ctx, alice, CreateParams{
		Title: "far", Category: "Other", Budget: 10,
		Location: nycLocation(40.7828, -73.9360),
	})
	if err != nil {
		t.Fatalf("create far: %v", err)
	}
	near, err := reg.Create(ctx, alice, CreateParams{
		Title: "near", Category: "Other", Budget: 10,
		Location: nycLocation(40.7138, -74.0050),
	})
	if err != nil {
		t.Fatalf("create near: %v", err)
	}

	loc := nycLocation(40.7128, -74.0060)
	bob := worker("worker-b", "Bob", &loc)

	nearby, err := reg.Nearby(ctx, bob)
	if err != nil {
		t.Fatalf("nearby: %v", err)
	}
	if len(nearby) != 2 {
		t.Fatalf("expected 2 open jobs, got %d", len(nearby))
	}
	if nearby[0].ID != near.ID || nearby[1].ID != far.ID {
		t.Fatalf("expected ascending distance order, got %s then %s", nearby[0].ID, nearby[1].ID)
	}
	if nearby[0].Distance > nearby[1].Distance {
		t.Fatalf("distances out of order: %v then %v", nearby[0].Distance, nearby[1].Distance)
	}
}

func TestRegistry_NearbyWithoutLocation(t *testing.T) {
	reg := newTestRegistry()
	ctx := context.Background()
	alice := homeowner("user-a", "Alice")
	bob := worker("worker-b", "Bob", nil)

	if _, err := reg.Create(ctx, alice, CreateParams{Title: "a", Category: "Other", Budget: 10}); err != nil {
		t.Fatalf("create: %v", err)
	}

	nearby, err := reg.Nearby(ctx, bob)
	if err != nil {
		t.Fatalf("nearby: %v", err)
	}
	if len(nearby) != 0 {
		t.Fatalf("worker without location should see an empty view, got %d", len(nearby))
	}
}

func TestRegistry_EnsureSeed(t *testing.T) {
	reg := newTestRegistry()
	reg.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	if err := reg.EnsureSeed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	jobs, err := reg.repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 seeded jobs, got %d", len(jobs))
	}

	// Seeding again must not duplicate.
	if err := reg.EnsureSeed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	jobs, err = reg.repo.List(ctx)
	if err != nil {
		t.Fatalf("relist: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("seed not idempotent: %d jobs", len(jobs))
	}

	assigned, err := reg.GetByID(ctx, "job-3")
	if err != nil {
		t.Fatalf("get seeded job: %v", err)
	}
	if assigned.Status != StatusAssigned || assigned.WorkerID == "" {
		t.Fatalf("seeded assigned job malformed: %+v", assigned)
	}
}
