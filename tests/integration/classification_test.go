package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	correspondenceapp "github.com/mailroom/backend/internal/application/correspondence"
	"github.com/mailroom/backend/internal/domain/correspondence"
	"github.com/mailroom/backend/internal/domain/directory"
	"github.com/mailroom/backend/internal/domain/notification"
	"github.com/mailroom/backend/internal/infrastructure/persistence"
)

// stubDirectory answers every search with a fixed set of records
type stubDirectory struct {
	records []directory.CustomerRecord
}

func (s stubDirectory) SearchByName(ctx context.Context, name string) ([]directory.CustomerRecord, error) {
	return s.records, nil
}

// captureDispatcher records every notice instead of sending mail
type captureDispatcher struct {
	mu      sync.Mutex
	notices []notification.Notice
}

func (d *captureDispatcher) Send(ctx context.Context, notice notification.Notice) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices = append(d.notices, notice)
	return nil
}

func newClassificationService(tdb *TestDB, dir stubDirectory, dispatcher *captureDispatcher) *correspondenceapp.Service {
	auditRepo := persistence.NewGormAuditRepository(tdb.DB)
	return correspondenceapp.NewService(
		persistence.NewGormCorrespondenceRepository(tdb.DB),
		correspondenceapp.NewReconciler(
			persistence.NewGormCustomerRepository(tdb.DB),
			persistence.NewGormCompanyRepository(tdb.DB),
		),
		dir,
		dispatcher,
		auditRepo,
		zap.NewNop(),
	)
}

func TestClassificationFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	ctx := context.Background()

	t.Run("individual registration gets amendment request", func(t *testing.T) {
		tdb.CleanTables()
		dispatcher := &captureDispatcher{}
		service := newClassificationService(tdb, stubDirectory{
			records: []directory.CustomerRecord{
				{ID: 1, Name: "Acme Consulting", Emails: []string{"owner@acme.example"}},
			},
		}, dispatcher)

		resp, err := service.Process(ctx, correspondenceapp.ProcessRequest{
			Sender:      "Tax Office",
			CompanyName: "Acme Consulting",
		})
		require.NoError(t, err)
		assert.Equal(t, string(correspondence.StatusUnderReview), resp.Status)

		require.Len(t, dispatcher.notices, 1)
		assert.Equal(t, notification.KindAmendmentRequest, dispatcher.notices[0].Kind)
		assert.Equal(t, "owner@acme.example", dispatcher.notices[0].Destination)

		var companyCount, auditCount int64
		require.NoError(t, tdb.DB.Table("companies").Where("status = ?", "missing_amendment").Count(&companyCount).Error)
		assert.Equal(t, int64(1), companyCount)
		require.NoError(t, tdb.DB.Table("audit_entries").Where("action = ?", "Amendment Notice Sent").Count(&auditCount).Error)
		assert.Equal(t, int64(1), auditCount)
	})

	t.Run("business registration passes without notification", func(t *testing.T) {
		tdb.CleanTables()
		dispatcher := &captureDispatcher{}
		service := newClassificationService(tdb, stubDirectory{
			records: []directory.CustomerRecord{
				{ID: 2, Name: "Delta Logistics", TaxID: "FI55555555"},
			},
		}, dispatcher)

		resp, err := service.Process(ctx, correspondenceapp.ProcessRequest{
			Sender:      "Customs",
			CompanyName: "Delta Logistics",
		})
		require.NoError(t, err)
		assert.Equal(t, string(correspondence.StatusUnderReview), resp.Status)
		assert.Empty(t, dispatcher.notices)

		var count int64
		require.NoError(t, tdb.DB.Table("companies").Where("status = ?", "regular").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("unknown addressee is returned to sender", func(t *testing.T) {
		tdb.CleanTables()
		dispatcher := &captureDispatcher{}
		service := newClassificationService(tdb, stubDirectory{}, dispatcher)

		resp, err := service.Process(ctx, correspondenceapp.ProcessRequest{
			Sender:      "Bank",
			CompanyName: "Ghost Ltd",
		})
		require.NoError(t, err)
		assert.Equal(t, string(correspondence.StatusReturned), resp.Status)

		var count int64
		require.NoError(t, tdb.DB.Table("audit_entries").Where("action = ?", "No matching address").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing addressee stays unset", func(t *testing.T) {
		tdb.CleanTables()
		dispatcher := &captureDispatcher{}
		service := newClassificationService(tdb, stubDirectory{}, dispatcher)

		resp, err := service.Process(ctx, correspondenceapp.ProcessRequest{
			Sender: "Post Office",
		})
		require.NoError(t, err)
		assert.Equal(t, string(correspondence.StatusUnset), resp.Status)

		var count int64
		require.NoError(t, tdb.DB.Table("correspondences").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
