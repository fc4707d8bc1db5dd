package identity

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fixify/geo"
)

var (
	// ErrInvalidRole signals a role outside the user/worker pair.
	ErrInvalidRole = errors.New("identity: invalid role")
	// ErrMissingEmail signals a login or register call without an email.
	ErrMissingEmail = errors.New("identity: email is required")
	// ErrMissingName signals a register call without a display name.
	ErrMissingName = errors.New("identity: name is required")
)

// Default profile values assigned to synthesized actors.
var defaultLocation = geo.Location{
	Point:   geo.Point{Lat: 40.7128, Lng: -74.0060},
	Address: "New York, NY",
}

var defaultWorkerSkills = []string{"Plumbing", "Electrical", "Carpentry"}

// Service holds actor records and issues sessions. Login and Register
// perform no credential verification: they always succeed and synthesize a
// fresh actor record with default profile data.
type Service struct {
	mu     sync.Mutex
	repo   Repository
	tokens *TokenIssuer
	now    func() time.Time
	idGen  func() string
}

// NewService creates an identity service over the given repository.
func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
		idGen:  func() string { return "user-" + uuid.NewString() },
	}
}

// Login synthesizes an actor for the email/role pair and returns it with a
// session token. The display name is the email local part; workers receive
// a default skill set. The secret is hashed before the record is stored and
// is never checked against a prior registration.
func (s *Service) Login(ctx context.Context, email, secret string, role Role) (Session, error) {
	if email == "" {
		return Session{}, ErrMissingEmail
	}
	if !ValidRole(role) {
		return Session{}, ErrInvalidRole
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	actor := Actor{
		ID:           s.idGen(),
		Name:         name,
		Email:        email,
		Role:         role,
		Location:     cloneLocation(&defaultLocation),
		ProfileImage: avatarURL(name),
		Rating:       4.5,
		CreatedAt:    s.now().UTC(),
	}
	if role == RoleWorker {
		actor.Skills = append([]string(nil), defaultWorkerSkills...)
	}

	return s.startSession(ctx, actor, secret)
}

// Register synthesizes a new actor with the supplied display name. Workers
// start with an empty skill set and everyone starts unrated.
func (s *Service) Register(ctx context.Context, name, email, secret string, role Role) (Session, error) {
	if name == "" {
		return Session{}, ErrMissingName
	}
	if email == "" {
		return Session{}, ErrMissingEmail
	}
	if !ValidRole(role) {
		return Session{}, ErrInvalidRole
	}

	actor := Actor{
		ID:           s.idGen(),
		Name:         name,
		Email:        email,
		Role:         role,
		Location:     cloneLocation(&defaultLocation),
		ProfileImage: avatarURL(name),
		Rating:       0,
		CreatedAt:    s.now().UTC(),
	}
	if role == RoleWorker {
		actor.Skills = []string{}
	}

	return s.startSession(ctx, actor, secret)
}

func (s *Service) startSession(ctx context.Context, actor Actor, secret string) (Session, error) {
	if secret != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
		if err != nil {
			return Session{}, fmt.Errorf("identity: hash secret: %w", err)
		}
		actor.SecretHash = string(hash)
	}

	if err := s.repo.Put(ctx, actor); err != nil {
		return Session{}, err
	}

	token, err := s.tokens.Issue(actor.ID, actor.Role)
	if err != nil {
		return Session{}, err
	}

	return Session{Actor: actor, Token: token}, nil
}

// Logout removes the actor record from the store.
func (s *Service) Logout(ctx context.Context, actorID string) error {
	return s.repo.Delete(ctx, actorID)
}

// GetByID returns the actor record for the given id.
func (s *Service) GetByID(ctx context.Context, actorID string) (Actor, error) {
	return s.repo.GetByID(ctx, actorID)
}

// UpdateProfile merges the supplied fields into the actor record and
// persists the result. Id, email, and role are never changed.
func (s *Service) UpdateProfile(ctx context.Context, actorID string, update ProfileUpdate) (Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return Actor{}, err
	}

	if update.Name != nil && *update.Name != "" {
		actor.Name = *update.Name
	}
	if update.ProfileImage != nil {
		actor.ProfileImage = *update.ProfileImage
	}
	if update.Skills != nil {
		actor.Skills = append([]string(nil), (*update.Skills)...)
	}
	if update.Rating != nil {
		actor.Rating = *update.Rating
	}
	if update.Location != nil {
		actor.Location = cloneLocation(update.Location)
	}

	if err := s.repo.Put(ctx, actor); err != nil {
		return Actor{}, err
	}
	return actor, nil
}

// UpdateLocation replaces the actor's location.
func (s *Service) UpdateLocation(ctx context.Context, actorID string, lat, lng float64, address string) (Actor, error) {
	loc := geo.Location{Point: geo.Point{Lat: lat, Lng: lng}, Address: address}
	return s.UpdateProfile(ctx, actorID, ProfileUpdate{Location: &loc})
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

func cloneLocation(loc *geo.Location) *geo.Location {
	if loc == nil {
		return nil
	}
	c := *loc
	return &c
}
