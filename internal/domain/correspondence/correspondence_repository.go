package correspondence

import (
	"context"

	"github.com/google/uuid"
	"github.com/mailroom/backend/internal/domain/shared"
)

// WithCompany is a read model joining a correspondence item with the company
// mirror matching its addressee name, when one exists. Company fields are flat
// strings so the read model carries no write semantics.
type WithCompany struct {
	Correspondence
	CompanyStatus    string
	CompanySituation string
	CompanyMessage   string
}

// Repository defines the interface for correspondence persistence
type Repository interface {
	// FindByID finds a correspondence item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Correspondence, error)

	// FindAll finds all correspondence items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Correspondence, error)

	// Count counts correspondence items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// FindAllWithCompany finds correspondence items joined with the company
	// mirror matching their addressee name. Items without a matching company
	// are included with empty company fields.
	FindAllWithCompany(ctx context.Context, filter shared.Filter) ([]WithCompany, error)

	// Save creates or updates a correspondence item
	Save(ctx context.Context, item *Correspondence) error

	// Delete deletes a correspondence item
	Delete(ctx context.Context, id uuid.UUID) error
}
