package correspondence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mailroom/backend/internal/domain/audit"
	"github.com/mailroom/backend/internal/domain/correspondence"
	"github.com/mailroom/backend/internal/domain/directory"
	"github.com/mailroom/backend/internal/domain/notification"
	"github.com/mailroom/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service orchestrates the classification of incoming correspondence: directory
// lookup, entity reconciliation, status assignment, notification, audit trail.
type Service struct {
	repo       correspondence.Repository
	reconciler *Reconciler
	directory  directory.CompanyDirectory
	dispatcher notification.Dispatcher
	recorder   audit.Recorder
	logger     *zap.Logger
}

// NewService creates a new correspondence Service
func NewService(
	repo correspondence.Repository,
	reconciler *Reconciler,
	dir directory.CompanyDirectory,
	dispatcher notification.Dispatcher,
	recorder audit.Recorder,
	logger *zap.Logger,
) *Service {
	return &Service{
		repo:       repo,
		reconciler: reconciler,
		directory:  dir,
		dispatcher: dispatcher,
		recorder:   recorder,
		logger:     logger,
	}
}

// Process classifies one incoming piece of mail and persists the outcome.
// Directory outages abort the pass; notification and audit failures do not.
func (s *Service) Process(ctx context.Context, req ProcessRequest) (*Response, error) {
	item, err := correspondence.New(req.Sender, req.CompanyName, req.PhotoRef)
	if err != nil {
		return nil, err
	}
	item.MarkReceived(time.Now())

	matches, err := s.searchDirectory(ctx, item.CompanyName)
	if err != nil {
		return nil, err
	}

	if len(matches) > 0 {
		// First match in directory order is authoritative
		if err := s.classifyMatched(ctx, item, matches[0]); err != nil {
			return nil, err
		}
	} else if !item.HasAddressee() {
		if err := s.repo.Save(ctx, item); err != nil {
			return nil, err
		}
		s.record(ctx, audit.EntityCorrespondence, item.ID.String(),
			"Received with no registered addressee",
			fmt.Sprintf("received from sender '%s' with no destination provided", item.Sender))
		response := ToResponse(item)
		return &response, nil
	} else {
		if err := item.AssignStatus(correspondence.StatusReturned); err != nil {
			return nil, err
		}
		s.record(ctx, audit.EntityCorrespondence, item.ID.String(),
			"No matching address",
			fmt.Sprintf("received from company '%s' possibly using this address without authorization", item.CompanyName))
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	response := ToResponse(item)
	return &response, nil
}

// classifyMatched handles the branch where the addressee is a known directory
// identity: reconcile the customer mirror, then branch on whether the identity
// carries a business registration.
func (s *Service) classifyMatched(ctx context.Context, item *correspondence.Correspondence, match directory.CustomerRecord) error {
	if _, err := s.reconciler.FindOrCreateCustomer(ctx, match); err != nil {
		return err
	}

	if err := item.AssignStatus(correspondence.StatusUnderReview); err != nil {
		return err
	}

	// The directory record decides the branch, not the local mirror: an
	// occupant who registered a business since first sighting gets the
	// business branch even though the mirror row is never rewritten.
	// The mirror is keyed by the directory's name for the match, not by
	// whatever the envelope said.
	if match.TaxID == "" {
		company, _, err := s.reconciler.FindOrCreateCompany(ctx, match.Name, match, true)
		if err != nil {
			return err
		}

		notice := notification.Notice{
			Kind:        notification.KindAmendmentRequest,
			Destination: match.PrimaryEmail(),
			CompanyName: company.Name,
		}
		if err := s.dispatcher.Send(ctx, notice); err != nil {
			s.logger.Warn("amendment notification failed",
				zap.String("company", company.Name),
				zap.Error(err))
		}

		s.record(ctx, audit.EntityCompany, company.ID.String(),
			"Amendment Notice Sent",
			"amendment request email sent to convert individual registration to business registration")
		return nil
	}

	company, _, err := s.reconciler.FindOrCreateCompany(ctx, match.Name, match, false)
	if err != nil {
		return err
	}
	s.record(ctx, audit.EntityCorrespondence, company.ID.String(),
		"Correspondence Notice",
		fmt.Sprintf("correspondence reported to customer '%s'", match.Name))
	return nil
}

// GetByID retrieves a correspondence item by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Response, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}
	response := ToResponse(item)
	return &response, nil
}

// List retrieves correspondence items with filtering and pagination
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Response, int64, error) {
	domainFilter := toDomainFilter(filter)

	items, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToResponses(items), total, nil
}

// ListWithCompany retrieves correspondence items joined with the company
// mirror matching their addressee
func (s *Service) ListWithCompany(ctx context.Context, filter ListFilter) ([]WithCompanyResponse, int64, error) {
	domainFilter := toDomainFilter(filter)

	items, err := s.repo.FindAllWithCompany(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToWithCompanyResponses(items), total, nil
}

// SetStatus applies an administrative status override. Any status may replace
// any other; the old and new values are written to the audit trail.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, raw string) (*Response, error) {
	status, err := correspondence.ParseStatus(raw)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}

	previous := item.Status
	if err := item.AssignStatus(status); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.record(ctx, audit.EntityCorrespondence, item.ID.String(),
		"Status Changed",
		fmt.Sprintf("status changed from '%s' to '%s'", previous, status))

	response := ToResponse(item)
	return &response, nil
}

// SetNoticeDate records when the occupant was notified through the directory
func (s *Service) SetNoticeDate(ctx context.Context, id uuid.UUID, at time.Time) (*Response, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}

	item.SetNoticeDate(at)
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.record(ctx, audit.EntityCorrespondence, item.ID.String(),
		"Notice Date Updated",
		fmt.Sprintf("directory notice date set to %s", at.Format("2006-01-02")))

	response := ToResponse(item)
	return &response, nil
}

// Delete removes a correspondence item
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.notFound(err, id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, audit.EntityCorrespondence, id.String(),
		"Deleted",
		fmt.Sprintf("correspondence from sender '%s' removed", item.Sender))
	return nil
}

// SearchDirectory exposes the directory lookup used by classification, with
// the same client-side narrowing applied
func (s *Service) SearchDirectory(ctx context.Context, name string) ([]DirectoryMatchResponse, error) {
	matches, err := s.searchDirectory(ctx, name)
	if err != nil {
		return nil, err
	}
	return ToDirectoryMatchResponses(matches), nil
}

// searchDirectory queries the directory and narrows the results client-side:
// directory answers can be broader than the search term, so only records whose
// name or first name contains the term (case-insensitive) are kept. An empty
// name skips the lookup entirely and reports zero matches.
func (s *Service) searchDirectory(ctx context.Context, name string) ([]directory.CustomerRecord, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}

	records, err := s.directory.SearchByName(ctx, name)
	if err != nil {
		if errors.Is(err, directory.ErrUnavailable) {
			return nil, shared.NewDomainError("DIRECTORY_UNAVAILABLE", "Company directory could not be reached")
		}
		return nil, err
	}

	term := strings.ToLower(name)
	matches := make([]directory.CustomerRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.FirstName), term) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// record appends an audit entry. A failed append is reported but never rolls
// back the classification outcome.
func (s *Service) record(ctx context.Context, entityType, entityID, action, details string) {
	if err := s.recorder.Record(ctx, entityType, entityID, action, details); err != nil {
		s.logger.Warn("audit append failed",
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID),
			zap.String("action", action),
			zap.Error(err))
	}
}

func (s *Service) notFound(err error, id uuid.UUID) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Correspondence %s not found", id))
	}
	return err
}

func toDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	return domainFilter
}
