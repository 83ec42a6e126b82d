package correspondence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mailroom/backend/internal/domain/audit"
	"github.com/mailroom/backend/internal/domain/correspondence"
	"github.com/mailroom/backend/internal/domain/directory"
	"github.com/mailroom/backend/internal/domain/notification"
	"github.com/mailroom/backend/internal/domain/partner"
	"github.com/mailroom/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mocks and fakes
// =============================================================================

// MockCorrespondenceRepository is a mock implementation of correspondence.Repository
type MockCorrespondenceRepository struct {
	mock.Mock
}

func (m *MockCorrespondenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*correspondence.Correspondence, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*correspondence.Correspondence), args.Error(1)
}

func (m *MockCorrespondenceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]correspondence.Correspondence, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]correspondence.Correspondence), args.Error(1)
}

func (m *MockCorrespondenceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCorrespondenceRepository) FindAllWithCompany(ctx context.Context, filter shared.Filter) ([]correspondence.WithCompany, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]correspondence.WithCompany), args.Error(1)
}

func (m *MockCorrespondenceRepository) Save(ctx context.Context, item *correspondence.Correspondence) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCorrespondenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByDirectoryID(ctx context.Context, directoryID int64) (*partner.Customer, error) {
	args := m.Called(ctx, directoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockCompanyRepository is a mock implementation of partner.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByName(ctx context.Context, name string) (*partner.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Company), args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *partner.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Company, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Company), args.Error(1)
}

func (m *MockCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockDirectory is a mock implementation of directory.CompanyDirectory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) SearchByName(ctx context.Context, name string) ([]directory.CustomerRecord, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.CustomerRecord), args.Error(1)
}

// MockDispatcher is a mock implementation of notification.Dispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Send(ctx context.Context, notice notification.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

// recordedEntry is one observed audit append
type recordedEntry struct {
	EntityType string
	EntityID   string
	Action     string
	Details    string
}

// capturingRecorder is an audit.Recorder fake that captures entries so tests
// can assert exact trail content
type capturingRecorder struct {
	mu      sync.Mutex
	entries []recordedEntry
	err     error
}

func (r *capturingRecorder) Record(ctx context.Context, entityType, entityID, action, details string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, recordedEntry{entityType, entityID, action, details})
	return nil
}

type serviceFixture struct {
	repo       *MockCorrespondenceRepository
	customers  *MockCustomerRepository
	companies  *MockCompanyRepository
	dir        *MockDirectory
	dispatcher *MockDispatcher
	recorder   *capturingRecorder
	service    *Service
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		repo:       new(MockCorrespondenceRepository),
		customers:  new(MockCustomerRepository),
		companies:  new(MockCompanyRepository),
		dir:        new(MockDirectory),
		dispatcher: new(MockDispatcher),
		recorder:   &capturingRecorder{},
	}
	reconciler := NewReconciler(f.customers, f.companies)
	f.service = NewService(f.repo, reconciler, f.dir, f.dispatcher, f.recorder, zap.NewNop())
	return f
}

// =============================================================================
// Process
// =============================================================================

func TestService_Process_NoAddressee(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.repo.On("Save", ctx, mock.AnythingOfType("*correspondence.Correspondence")).Return(nil)

	result, err := f.service.Process(ctx, ProcessRequest{Sender: "Receita Federal"})

	require.NoError(t, err)
	assert.Equal(t, string(correspondence.StatusUnset), result.Status)
	assert.False(t, result.ReceivedDate.IsZero())

	// empty addressee never reaches the directory
	f.dir.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
	f.repo.AssertNumberOfCalls(t, "Save", 1)

	require.Len(t, f.recorder.entries, 1)
	entry := f.recorder.entries[0]
	assert.Equal(t, audit.EntityCorrespondence, entry.EntityType)
	assert.Equal(t, result.ID.String(), entry.EntityID)
	assert.Equal(t, "Received with no registered addressee", entry.Action)
	assert.Contains(t, entry.Details, "Receita Federal")
}

func TestService_Process_NoMatch_Returned(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.dir.On("SearchByName", ctx, "Acme Corp").Return([]directory.CustomerRecord{}, nil)
	f.repo.On("Save", ctx, mock.AnythingOfType("*correspondence.Correspondence")).Return(nil)

	result, err := f.service.Process(ctx, ProcessRequest{Sender: "Bank", CompanyName: "Acme Corp"})

	require.NoError(t, err)
	assert.Equal(t, string(correspondence.StatusReturned), result.Status)

	require.Len(t, f.recorder.entries, 1)
	entry := f.recorder.entries[0]
	assert.Equal(t, "No matching address", entry.Action)
	assert.Contains(t, entry.Details, "Acme Corp")
	f.dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestService_Process_DirectoryUnavailable(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.dir.On("SearchByName", ctx, "Acme Corp").Return(nil, directory.ErrUnavailable)

	result, err := f.service.Process(ctx, ProcessRequest{Sender: "Bank", CompanyName: "Acme Corp"})

	assert.Nil(t, result)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "DIRECTORY_UNAVAILABLE", domainErr.Code)

	// an outage is not a no-match: nothing may be persisted
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	assert.Empty(t, f.recorder.entries)
}

func TestService_Process_IndividualRegistration(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	match := directory.CustomerRecord{
		ID:     7,
		Name:   "Acme Corp",
		Emails: []string{"owner@acme.example"},
		Phone:  "11999990000",
	}
	f.dir.On("SearchByName", ctx, "Acme Corp").Return([]directory.CustomerRecord{match}, nil)
	f.customers.On("FindByDirectoryID", ctx, int64(7)).Return(nil, shared.ErrNotFound)
	f.customers.On("Create", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)
	f.companies.On("FindByName", ctx, "Acme Corp").Return(nil, shared.ErrNotFound)
	f.companies.On("Create", ctx, mock.AnythingOfType("*partner.Company")).Return(nil)
	f.dispatcher.On("Send", ctx, mock.AnythingOfType("notification.Notice")).Return(nil)
	f.repo.On("Save", ctx, mock.AnythingOfType("*correspondence.Correspondence")).Return(nil)

	result, err := f.service.Process(ctx, ProcessRequest{Sender: "Bank", CompanyName: "Acme Corp"})

	require.NoError(t, err)
	assert.Equal(t, string(correspondence.StatusUnderReview), result.Status)

	created := f.companies.Calls[1].Arguments.Get(1).(*partner.Company)
	assert.Equal(t, partner.CompanyStatusMissingAmendment, created.Status)
	assert.Equal(t, partner.SituationIndividualID, created.Situation)

	notice := f.dispatcher.Calls[0].Arguments.Get(1).(notification.Notice)
	assert.Equal(t, notification.KindAmendmentRequest, notice.Kind)
	assert.Equal(t, "owner@acme.example", notice.Destination)
	assert.Equal(t, "Acme Corp", notice.CompanyName)

	require.Len(t, f.recorder.entries, 1)
	entry := f.recorder.entries[0]
	assert.Equal(t, audit.EntityCompany, entry.EntityType)
	assert.Equal(t, created.ID.String(), entry.EntityID)
	assert.Equal(t, "Amendment Notice Sent", entry.Action)
}

func TestService_Process_BusinessRegistration(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	match := directory.CustomerRecord{ID: 7, Name: "Acme Corp", TaxID: "12345678000190"}
	existing, _ := partner.NewCompany("Acme Corp")
	customer, _ := partner.NewCustomer(7, "Acme Corp")

	f.dir.On("SearchByName", ctx, "Acme Corp").Return([]directory.CustomerRecord{match}, nil)
	f.customers.On("FindByDirectoryID", ctx, int64(7)).Return(customer, nil)
	f.companies.On("FindByName", ctx, "Acme Corp").Return(existing, nil)
	f.repo.On("Save", ctx, mock.AnythingOfType("*correspondence.Correspondence")).Return(nil)

	result, err := f.service.Process(ctx, ProcessRequest{Sender: "Bank", CompanyName: "Acme Corp"})

	require.NoError(t, err)
	assert.Equal(t, string(correspondence.StatusUnderReview), result.Status)

	// existing company reused untouched, no create, no notification
	f.companies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	assert.Equal(t, partner.CompanyStatusRegular, existing.Status)

	require.Len(t, f.recorder.entries, 1)
	entry := f.recorder.entries[0]
	assert.Equal(t, audit.EntityCorrespondence, entry.EntityType)
	assert.Equal(t, "Correspondence Notice", entry.Action)
	assert.Contains(t, entry.Details, "Acme Corp")
}

func TestService_Process_NarrowsDirectoryResults(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	// the directory answers broadly; only containing names count, and the
	// first surviving match in directory order is authoritative
	records := []directory.CustomerRecord{
		{ID: 1, Name: "Globex"},
		{ID: 2, Name: "ACME CORP HOLDING", TaxID: "12345678000190"},
		{ID: 3, Name: "Acme Corp"},
	}
	customer, _ := partner.NewCustomer(2, "ACME CORP HOLDING")
	company, _ := partner.NewCompany("ACME CORP HOLDING")

	f.dir.On("SearchByName", ctx, "Acme Corp").Return(records, nil)
	f.customers.On("FindByDirectoryID", ctx, int64(2)).Return(customer, nil)
	f.companies.On("FindByName", ctx, "ACME CORP HOLDING").Return(company, nil)
	f.repo.On("Save", ctx, mock.AnythingOfType("*correspondence.Correspondence")).Return(nil)

	result, err := f.service.Process(ctx, ProcessRequest{Sender: "Bank", CompanyName: "Acme Corp"})

	require.NoError(t, err)
	assert.Equal(t, string(correspondence.StatusUnderReview), result.Status)
	f.customers.AssertCalled(t, "FindByDirectoryID", ctx, int64(2))
}

func TestService_Process_CompanyKeyedByDirectoryName(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	// the envelope says "Acme" but the registered name is longer; the
	// mirror row must carry the directory's name, not the envelope's
	match := directory.CustomerRecord{
		ID:     2,
		Name:   "Acme Corp Holding SA",
		Emails: []string{"owner@acme.example"},
	}
	f.dir.On("SearchByName", ctx, "Acme").Return([]directory.CustomerRecord{match}, nil)
	f.customers.On("FindByDirectoryID", ctx, int64(2)).Return(nil, shared.ErrNotFound)
	f.customers.On("Create", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)
	f.companies.On("FindByName", ctx, "Acme Corp Holding SA").Return(nil, shared.ErrNotFound)
	f.companies.On("Create", ctx, mock.AnythingOfType("*partner.Company")).Return(nil)
	f.dispatcher.On("Send", ctx, mock.AnythingOfType("notification.Notice")).Return(nil)
	f.repo.On("Save", ctx, mock.AnythingOfType("*correspondence.Correspondence")).Return(nil)

	result, err := f.service.Process(ctx, ProcessRequest{Sender: "Bank", CompanyName: "Acme"})

	require.NoError(t, err)
	assert.Equal(t, string(correspondence.StatusUnderReview), result.Status)
	assert.Equal(t, "Acme", result.CompanyName)

	f.companies.AssertCalled(t, "FindByName", ctx, "Acme Corp Holding SA")
	created := f.companies.Calls[1].Arguments.Get(1).(*partner.Company)
	assert.Equal(t, "Acme Corp Holding SA", created.Name)

	notice := f.dispatcher.Calls[0].Arguments.Get(1).(notification.Notice)
	assert.Equal(t, "Acme Corp Holding SA", notice.CompanyName)
}

func TestService_Process_NotificationFailureNonFatal(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	match := directory.CustomerRecord{ID: 7, Name: "Acme Corp"}
	f.dir.On("SearchByName", ctx, "Acme Corp").Return([]directory.CustomerRecord{match}, nil)
	f.customers.On("FindByDirectoryID", ctx, int64(7)).Return(nil, shared.ErrNotFound)
	f.customers.On("Create", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)
	f.companies.On("FindByName", ctx, "Acme Corp").Return(nil, shared.ErrNotFound)
	f.companies.On("Create", ctx, mock.AnythingOfType("*partner.Company")).Return(nil)
	f.dispatcher.On("Send", ctx, mock.AnythingOfType("notification.Notice")).Return(errors.New("smtp refused"))
	f.repo.On("Save", ctx, mock.AnythingOfType("*correspondence.Correspondence")).Return(nil)

	result, err := f.service.Process(ctx, ProcessRequest{Sender: "Bank", CompanyName: "Acme Corp"})

	require.NoError(t, err)
	assert.Equal(t, string(correspondence.StatusUnderReview), result.Status)
	require.Len(t, f.recorder.entries, 1)
	assert.Equal(t, "Amendment Notice Sent", f.recorder.entries[0].Action)
}

func TestService_Process_AuditFailureNonFatal(t *testing.T) {
	f := newServiceFixture()
	f.recorder.err = errors.New("trail down")
	ctx := context.Background()

	f.dir.On("SearchByName", ctx, "Acme Corp").Return([]directory.CustomerRecord{}, nil)
	f.repo.On("Save", ctx, mock.AnythingOfType("*correspondence.Correspondence")).Return(nil)

	result, err := f.service.Process(ctx, ProcessRequest{Sender: "Bank", CompanyName: "Acme Corp"})

	require.NoError(t, err)
	assert.Equal(t, string(correspondence.StatusReturned), result.Status)
	f.repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestService_Process_EmptySender(t *testing.T) {
	f := newServiceFixture()

	result, err := f.service.Process(context.Background(), ProcessRequest{Sender: "  "})

	assert.Nil(t, result)
	assert.Error(t, err)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// =============================================================================
// Status override and notice date
// =============================================================================

func TestService_SetStatus_Success(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	item, _ := correspondence.New("Bank", "Acme Corp", "")
	require.NoError(t, item.AssignStatus(correspondence.StatusUnderReview))

	f.repo.On("FindByID", ctx, item.ID).Return(item, nil)
	f.repo.On("Save", ctx, item).Return(nil)

	result, err := f.service.SetStatus(ctx, item.ID, "returned")

	require.NoError(t, err)
	assert.Equal(t, string(correspondence.StatusReturned), result.Status)

	require.Len(t, f.recorder.entries, 1)
	entry := f.recorder.entries[0]
	assert.Equal(t, "Status Changed", entry.Action)
	assert.Contains(t, entry.Details, "under_review")
	assert.Contains(t, entry.Details, "returned")
}

func TestService_SetStatus_NotFound(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	id := uuid.New()

	f.repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	result, err := f.service.SetStatus(ctx, id, "returned")

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Contains(t, domainErr.Message, id.String())
}

func TestService_SetStatus_InvalidValue(t *testing.T) {
	f := newServiceFixture()

	result, err := f.service.SetStatus(context.Background(), uuid.New(), "archived")

	assert.Nil(t, result)
	assert.Error(t, err)
	f.repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestService_SetNoticeDate_Success(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	item, _ := correspondence.New("Bank", "Acme Corp", "")
	at := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	f.repo.On("FindByID", ctx, item.ID).Return(item, nil)
	f.repo.On("Save", ctx, item).Return(nil)

	result, err := f.service.SetNoticeDate(ctx, item.ID, at)

	require.NoError(t, err)
	require.NotNil(t, result.NoticeDate)
	assert.Equal(t, at, *result.NoticeDate)

	require.Len(t, f.recorder.entries, 1)
	assert.Equal(t, "Notice Date Updated", f.recorder.entries[0].Action)
	assert.Contains(t, f.recorder.entries[0].Details, "2024-03-12")
}

func TestService_SetNoticeDate_NotFound(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	id := uuid.New()

	f.repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	result, err := f.service.SetNoticeDate(ctx, id, time.Now())

	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

// =============================================================================
// Listing and deletion
// =============================================================================

func TestService_List_Success(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	item, _ := correspondence.New("Bank", "Acme Corp", "")
	f.repo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return([]correspondence.Correspondence{*item}, nil)
	f.repo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	results, total, err := f.service.List(ctx, ListFilter{Status: "unset"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "Acme Corp", results[0].CompanyName)

	filter := f.repo.Calls[0].Arguments.Get(1).(shared.Filter)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.PageSize)
	assert.Equal(t, "unset", filter.Filters["status"])
}

func TestService_ListWithCompany_Success(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	item, _ := correspondence.New("Bank", "Acme Corp", "")
	joined := []correspondence.WithCompany{{
		Correspondence:   *item,
		CompanyStatus:    string(partner.CompanyStatusMissingAmendment),
		CompanySituation: string(partner.SituationIndividualID),
	}}
	f.repo.On("FindAllWithCompany", ctx, mock.AnythingOfType("shared.Filter")).Return(joined, nil)
	f.repo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	results, total, err := f.service.ListWithCompany(ctx, ListFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "missing_amendment", results[0].CompanyStatus)
}

func TestService_Delete_Success(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	item, _ := correspondence.New("Bank", "Acme Corp", "")
	f.repo.On("FindByID", ctx, item.ID).Return(item, nil)
	f.repo.On("Delete", ctx, item.ID).Return(nil)

	err := f.service.Delete(ctx, item.ID)

	require.NoError(t, err)
	require.Len(t, f.recorder.entries, 1)
	assert.Equal(t, "Deleted", f.recorder.entries[0].Action)
	assert.Contains(t, f.recorder.entries[0].Details, "Bank")
}

func TestService_Delete_NotFound(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	id := uuid.New()

	f.repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	err := f.service.Delete(ctx, id)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// =============================================================================
// Directory search endpoint
// =============================================================================

func TestService_SearchDirectory_Narrows(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	records := []directory.CustomerRecord{
		{ID: 1, Name: "Globex"},
		{ID: 2, Name: "Acme Corp", FirstName: ""},
		{ID: 3, Name: "Smith", FirstName: "Acme Corporate Services"},
	}
	f.dir.On("SearchByName", ctx, "acme").Return(records, nil)

	results, err := f.service.SearchDirectory(ctx, "acme")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(2), results[0].ID)
	assert.Equal(t, int64(3), results[1].ID)
}

func TestService_SearchDirectory_EmptyName(t *testing.T) {
	f := newServiceFixture()

	results, err := f.service.SearchDirectory(context.Background(), "  ")

	require.NoError(t, err)
	assert.Empty(t, results)
	f.dir.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
}
