package partner

import (
	"context"

	"github.com/mailroom/backend/internal/domain/shared"
)

// CompanyRepository defines the interface for company mirror persistence
type CompanyRepository interface {
	// FindByName finds a company by its exact name
	FindByName(ctx context.Context, name string) (*Company, error)

	// Create inserts a new company mirror. The name carries a unique
	// constraint; Create returns shared.ErrAlreadyExists when another row with
	// the same name already exists, so callers can re-fetch instead of
	// duplicating.
	Create(ctx context.Context, company *Company) error

	// FindAll finds all company mirrors matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Company, error)

	// Count counts company mirrors matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
