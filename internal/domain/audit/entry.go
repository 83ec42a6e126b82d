// Package audit holds the append-only interaction trail. Entries record what
// was done to which entity and are never mutated or deleted.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mailroom/backend/internal/domain/shared"
)

// Entity type labels used across the trail
const (
	EntityCorrespondence = "Correspondence"
	EntityCompany        = "Company"
)

// Entry is one immutable line of the interaction trail
type Entry struct {
	ID         uuid.UUID
	EntityType string
	EntityID   string
	Action     string
	Details    string
	CreatedAt  time.Time
}

// NewEntry creates an audit entry for an action taken against an entity
func NewEntry(entityType, entityID, action, details string) Entry {
	return Entry{
		ID:         uuid.New(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
		CreatedAt:  time.Now(),
	}
}

// Recorder appends entries to the trail. It is injected into the services that
// produce entries so tests can substitute a capturing fake.
type Recorder interface {
	Record(ctx context.Context, entityType, entityID, action, details string) error
}

// Repository defines the interface for reading and appending the trail
type Repository interface {
	// Append stores a new entry
	Append(ctx context.Context, entry Entry) error

	// FindByAction finds entries whose action contains the given fragment,
	// case-insensitively, newest first. An empty fragment matches everything.
	FindByAction(ctx context.Context, action string, filter shared.Filter) ([]Entry, error)

	// Count counts entries matching the action fragment
	Count(ctx context.Context, action string) (int64, error)
}
