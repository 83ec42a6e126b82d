package correspondence

import (
	"context"
	"errors"

	"github.com/mailroom/backend/internal/domain/directory"
	"github.com/mailroom/backend/internal/domain/partner"
	"github.com/mailroom/backend/internal/domain/shared"
)

// Reconciler implements find-or-create for the customer and company mirrors.
// Both mirrors carry a uniqueness invariant (one row per directory id, one row
// per company name); the invariant is closed against concurrent creation by
// the unique constraints underneath the Create methods: a loser of the race
// gets ErrAlreadyExists and re-reads the winner's row.
type Reconciler struct {
	customerRepo partner.CustomerRepository
	companyRepo  partner.CompanyRepository
}

// NewReconciler creates a new Reconciler
func NewReconciler(customerRepo partner.CustomerRepository, companyRepo partner.CompanyRepository) *Reconciler {
	return &Reconciler{
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
	}
}

// FindOrCreateCustomer returns the customer mirror for a directory identity,
// creating it on first sighting. An existing row is returned untouched; the
// directory stays the system of record for its fields.
func (r *Reconciler) FindOrCreateCustomer(ctx context.Context, record directory.CustomerRecord) (*partner.Customer, error) {
	existing, err := r.customerRepo.FindByDirectoryID(ctx, record.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	customer, err := partner.NewCustomer(record.ID, record.Name)
	if err != nil {
		return nil, err
	}
	customer.FirstName = record.FirstName
	customer.Email = record.PrimaryEmail()
	customer.Phone = record.Phone
	customer.TaxID = record.TaxID

	if err := r.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return r.customerRepo.FindByDirectoryID(ctx, record.ID)
		}
		return nil, err
	}
	return customer, nil
}

// FindOrCreateCompany returns the company mirror for an addressee name,
// creating it on first sighting. The amendment flag only applies to a newly
// created row: an existing company is reused as-is and never downgraded by a
// later pass. The second return value reports whether the row was created by
// this call.
func (r *Reconciler) FindOrCreateCompany(ctx context.Context, name string, record directory.CustomerRecord, flagAmendment bool) (*partner.Company, bool, error) {
	existing, err := r.companyRepo.FindByName(ctx, name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, false, err
	}

	company, err := partner.NewCompany(name)
	if err != nil {
		return nil, false, err
	}
	company.SetContact(record.PrimaryEmail(), record.Phone)
	if record.TaxID != "" {
		company.SetTaxID(record.TaxID)
	}
	if flagAmendment {
		company.FlagMissingAmendment("contract amendment required to convert individual to business registration")
	}

	if err := r.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			winner, ferr := r.companyRepo.FindByName(ctx, name)
			if ferr != nil {
				return nil, false, ferr
			}
			return winner, false, nil
		}
		return nil, false, err
	}
	return company, true, nil
}
