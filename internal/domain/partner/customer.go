package partner

import (
	"strings"
	"time"

	"github.com/mailroom/backend/internal/domain/shared"
)

// Customer is the local mirror of a directory customer. Its identity is the
// directory's own identifier, never generated here. A customer row is written
// once, on first sighting, and reused as-is afterwards: the directory stays the
// system of record for its fields.
type Customer struct {
	DirectoryID int64
	Name        string
	FirstName   string
	Email       string
	Phone       string
	TaxID       string // business registration number; empty for individual registrations
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCustomer creates a local mirror for a directory identity
func NewCustomer(directoryID int64, name string) (*Customer, error) {
	if directoryID <= 0 {
		return nil, shared.NewDomainError("INVALID_DIRECTORY_ID", "Directory ID must be positive")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}

	now := time.Now()
	return &Customer{
		DirectoryID: directoryID,
		Name:        strings.TrimSpace(name),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// HasBusinessRegistration reports whether the directory knows a business tax id
// for this customer. Its absence drives the contract-amendment branch.
func (c *Customer) HasBusinessRegistration() bool {
	return c.TaxID != ""
}
