package identity

import (
	"time"

	"fixify/geo"
)

// Role distinguishes homeowners ("user") from service providers ("worker").
type Role string

const (
	RoleUser   Role = "user"
	RoleWorker Role = "worker"
)

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role Role) bool {
	return role == RoleUser || role == RoleWorker
}

// Actor is the current homeowner or worker. The JSON tags define the slot
// snapshot format, which mirrors the persisted user record of the original
// storage layout.
type Actor struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Role         Role          `json:"userType"`
	SecretHash   string        `json:"secretHash,omitempty"`
	Location     *geo.Location `json:"location,omitempty"`
	ProfileImage string        `json:"profileImage,omitempty"`
	Skills       []string      `json:"skills,omitempty"`
	Rating       float64       `json:"rating"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Session bundles the actor with the bearer token minted for it.
type Session struct {
	Actor Actor
	Token string
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave the
// corresponding field untouched; id, email, and role are fixed at
// login/register and cannot be updated.
type ProfileUpdate struct {
	Name         *string
	ProfileImage *string
	Skills       *[]string
	Rating       *float64
	Location     *geo.Location
}
