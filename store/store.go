// Package store provides the string-keyed snapshot slots backing the domain
// services. Each slot holds one JSON-serialized document that is read whole
// and overwritten whole on every mutation; there are no partial updates and
// no schema versioning.
package store

import (
	"context"
	"errors"
)

// Slot keys used by the domain services.
const (
	SlotUsers    = "fixify_users"
	SlotJobs     = "fixify_jobs"
	SlotMessages = "fixify_messages"
)

// ErrSlotNotFound signals that a slot has never been written.
var ErrSlotNotFound = errors.New("store: slot not found")

// Store is a durable key-value slot store. Implementations must treat Save
// as a wholesale overwrite of the slot's previous contents.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
