package partner

import (
	"context"
)

// CustomerRepository defines the interface for customer mirror persistence
type CustomerRepository interface {
	// FindByDirectoryID finds a customer by its directory identifier
	FindByDirectoryID(ctx context.Context, directoryID int64) (*Customer, error)

	// Create inserts a new customer mirror. Returns shared.ErrAlreadyExists
	// when a row for the directory identifier is already present.
	Create(ctx context.Context, customer *Customer) error
}
