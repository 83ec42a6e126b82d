// Package directory defines the contract with the external company directory,
// the system of record for contracted occupants of the office address.
package directory

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the directory could not be reached or answered with
// a failure. It is distinct from an empty result: zero matches is a valid
// business outcome, an outage is not.
var ErrUnavailable = errors.New("company directory unavailable")

// CustomerRecord is one directory match for a company-name search
type CustomerRecord struct {
	ID        int64
	Name      string
	FirstName string
	TaxID     string // business registration number; empty for individual registrations
	Emails    []string
	Phone     string
}

// PrimaryEmail returns the first known contact email, or empty when the
// directory has none on file.
func (r CustomerRecord) PrimaryEmail() string {
	if len(r.Emails) == 0 {
		return ""
	}
	return r.Emails[0]
}

// CompanyDirectory searches the external directory by company name. Searching
// with an empty name is a valid call; implementations return the matches the
// directory reports, which may be broader than the search term.
type CompanyDirectory interface {
	SearchByName(ctx context.Context, name string) ([]CustomerRecord, error)
}
