package correspondence

import (
	"strings"
	"time"

	"github.com/mailroom/backend/internal/domain/shared"
)

// Status represents the disposition of a correspondence item
type Status string

const (
	// StatusUnset marks items received with no addressee name; no disposition applies
	StatusUnset Status = "unset"
	// StatusUnderReview marks items addressed to a known occupant awaiting pickup handling
	StatusUnderReview Status = "under_review"
	// StatusReturned marks items addressed to a company with no contract at this address
	StatusReturned Status = "returned"
	// StatusMisuse marks confirmed unauthorized use of the address.
	// No classification branch assigns it today; it is reachable only through the
	// administrative status override.
	StatusMisuse Status = "misuse"
)

// ParseStatus validates a raw status value
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case StatusUnset, StatusUnderReview, StatusReturned, StatusMisuse:
		return s, nil
	default:
		return "", shared.NewDomainError("INVALID_STATUS", "Unknown correspondence status: "+raw)
	}
}

// Correspondence represents one piece of physical mail delivered to the office.
// It is the aggregate root of the classification flow.
type Correspondence struct {
	shared.BaseAggregateRoot
	Sender       string
	CompanyName  string // addressee as written on the envelope; empty is meaningful
	Status       Status
	ReceivedDate time.Time
	NoticeDate   *time.Time
	PhotoRef     string // opaque reference to the stored photo, never interpreted here
}

// New creates a correspondence item as it arrives at the front desk,
// before classification has run.
func New(sender, companyName, photoRef string) (*Correspondence, error) {
	if strings.TrimSpace(sender) == "" {
		return nil, shared.NewDomainError("INVALID_SENDER", "Sender cannot be empty")
	}

	return &Correspondence{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Sender:            strings.TrimSpace(sender),
		CompanyName:       strings.TrimSpace(companyName),
		Status:            StatusUnset,
		PhotoRef:          photoRef,
	}, nil
}

// MarkReceived stamps the received date. The date is set once; re-running
// classification over an already stamped item keeps the original date.
func (c *Correspondence) MarkReceived(at time.Time) {
	if !c.ReceivedDate.IsZero() {
		return
	}
	c.ReceivedDate = at
	c.Touch()
	c.IncrementVersion()
}

// AssignStatus records the disposition decided by classification or by an
// administrative override. Any status may replace any other; transition
// legality is deliberately not enforced here.
func (c *Correspondence) AssignStatus(s Status) error {
	switch s {
	case StatusUnset, StatusUnderReview, StatusReturned, StatusMisuse:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown correspondence status: "+string(s))
	}

	c.Status = s
	c.Touch()
	c.IncrementVersion()
	return nil
}

// SetNoticeDate records when the occupant was notified through the directory system
func (c *Correspondence) SetNoticeDate(at time.Time) {
	d := at
	c.NoticeDate = &d
	c.Touch()
	c.IncrementVersion()
}

// HasAddressee reports whether the envelope named a destination company
func (c *Correspondence) HasAddressee() bool {
	return c.CompanyName != ""
}
