package partner

import (
	"strings"

	"github.com/mailroom/backend/internal/domain/shared"
)

// CompanyStatus represents the contractual standing of a company
type CompanyStatus string

const (
	CompanyStatusRegular          CompanyStatus = "regular"
	CompanyStatusMissingAmendment CompanyStatus = "missing_amendment" // contract still on an individual registration
)

// CompanySituation represents how the company is registered with the directory
type CompanySituation string

const (
	SituationBusinessID   CompanySituation = "business_id"
	SituationIndividualID CompanySituation = "individual_id"
)

// Company is the local mirror of a contracting occupant, keyed by name rather
// than by directory id. Rows are created lazily by classification and reused
// across passes; an existing row is never downgraded, later passes take it
// as-is.
type Company struct {
	shared.BaseAggregateRoot
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Status    CompanyStatus
	Situation CompanySituation
	Message   string
}

// NewCompany creates a company mirror in regular standing
func NewCompany(name string) (*Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}

	return &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Status:            CompanyStatusRegular,
		Situation:         SituationBusinessID,
	}, nil
}

// SetContact records contact details sourced from the directory
func (c *Company) SetContact(email, phone string) {
	c.Email = email
	c.Phone = phone
	c.Touch()
	c.IncrementVersion()
}

// SetTaxID records the business registration number
func (c *Company) SetTaxID(taxID string) {
	c.TaxID = taxID
	c.Touch()
	c.IncrementVersion()
}

// FlagMissingAmendment marks the company as registered under an individual id
// pending a contract amendment. Applied only when the row is first created.
func (c *Company) FlagMissingAmendment(message string) {
	c.Status = CompanyStatusMissingAmendment
	c.Situation = SituationIndividualID
	c.Message = message
	c.Touch()
	c.IncrementVersion()
}

// RequiresAmendment reports whether the contract still needs converting to a
// business registration
func (c *Company) RequiresAmendment() bool {
	return c.Status == CompanyStatusMissingAmendment
}
