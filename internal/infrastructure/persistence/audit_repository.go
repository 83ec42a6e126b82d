package persistence

import (
	"context"

	"github.com/mailroom/backend/internal/domain/audit"
	"github.com/mailroom/backend/internal/domain/shared"
	"github.com/mailroom/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAuditRepository implements audit.Repository and audit.Recorder using
// GORM. The table is append-only; nothing here updates or deletes rows.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GormAuditRepository
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append stores a new trail entry
func (r *GormAuditRepository) Append(ctx context.Context, entry audit.Entry) error {
	model := models.AuditEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// Record builds an entry from its parts and appends it, satisfying
// audit.Recorder so services do not construct entries themselves.
func (r *GormAuditRepository) Record(ctx context.Context, entityType, entityID, action, details string) error {
	return r.Append(ctx, audit.NewEntry(entityType, entityID, action, details))
}

// FindByAction finds entries whose action contains the given fragment,
// newest first
func (r *GormAuditRepository) FindByAction(ctx context.Context, action string, filter shared.Filter) ([]audit.Entry, error) {
	var entryModels []models.AuditEntryModel
	query := r.db.WithContext(ctx).Model(&models.AuditEntryModel{})
	query = r.applyAction(query, action)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, AuditEntrySortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]audit.Entry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = model.ToDomain()
	}
	return entries, nil
}

// Count counts entries matching the action fragment
func (r *GormAuditRepository) Count(ctx context.Context, action string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.AuditEntryModel{})
	query = r.applyAction(query, action)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAuditRepository) applyAction(query *gorm.DB, action string) *gorm.DB {
	if action != "" {
		query = query.Where("action ILIKE ?", "%"+action+"%")
	}
	return query
}
