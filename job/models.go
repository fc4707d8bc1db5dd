package job

import (
	"time"

	"fixify/geo"
)

// Status is the lifecycle state of a job posting.
type Status string

const (
	StatusOpen       Status = "open"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusAssigned, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Categories is the fixed set of service categories a job may carry.
var Categories = []string{
	"Plumbing",
	"Electrical",
	"Carpentry",
	"Painting",
	"Cleaning",
	"Junk Removal",
	"Other",
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Job is a posted service request. Poster fields are immutable after
// creation; assignee fields are set if and only if the status has left
// "open". The JSON tags define the slot snapshot format.
type Job struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Budget      float64      `json:"budget"`
	Location    geo.Location `json:"location"`
	Status      Status       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UserID      string       `json:"userId"`
	UserName    string       `json:"userName"`
	UserImage   string       `json:"userImage,omitempty"`
	WorkerID    string       `json:"workerId,omitempty"`
	WorkerName  string       `json:"workerName,omitempty"`
	WorkerImage string       `json:"workerImage,omitempty"`
}

// NearbyJob annotates a job with its distance from the viewing worker. The
// distance is computed per query and never persisted.
type NearbyJob struct {
	Job
	Distance float64 `json:"distance"`
}

// CreateParams enumerates the caller-supplied fields of a new posting. Id,
// status, timestamp, and poster fields are assigned by the registry.
type CreateParams struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Budget      float64      `json:"budget"`
	Location    geo.Location `json:"location"`
}
