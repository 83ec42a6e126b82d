package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mailroom/backend/internal/domain/correspondence"
	"github.com/mailroom/backend/internal/domain/shared"
	"github.com/mailroom/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCorrespondenceRepository implements correspondence.Repository using GORM
type GormCorrespondenceRepository struct {
	db *gorm.DB
}

// NewGormCorrespondenceRepository creates a new GormCorrespondenceRepository
func NewGormCorrespondenceRepository(db *gorm.DB) *GormCorrespondenceRepository {
	return &GormCorrespondenceRepository{db: db}
}

// FindByID finds a correspondence item by its ID
func (r *GormCorrespondenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*correspondence.Correspondence, error) {
	var model models.CorrespondenceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all correspondence items matching the filter
func (r *GormCorrespondenceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]correspondence.Correspondence, error) {
	var itemModels []models.CorrespondenceModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CorrespondenceModel{}), filter, true)

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]correspondence.Correspondence, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// Count counts correspondence items matching the filter
func (r *GormCorrespondenceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CorrespondenceModel{}), filter, false)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindAllWithCompany finds correspondence items left-joined with the company
// mirror matching their addressee name
func (r *GormCorrespondenceRepository) FindAllWithCompany(ctx context.Context, filter shared.Filter) ([]correspondence.WithCompany, error) {
	var rows []models.CorrespondenceWithCompanyRow
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CorrespondenceModel{}), filter, true).
		Select("correspondences.*, companies.status AS company_status, companies.situation AS company_situation, companies.message AS company_message").
		Joins("LEFT JOIN companies ON companies.name = correspondences.company_name")

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]correspondence.WithCompany, len(rows))
	for i := range rows {
		items[i] = rows[i].ToDomain()
	}
	return items, nil
}

// Save creates or updates a correspondence item
func (r *GormCorrespondenceRepository) Save(ctx context.Context, item *correspondence.Correspondence) error {
	model := models.CorrespondenceModelFromDomain(item)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a correspondence item
func (r *GormCorrespondenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CorrespondenceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCorrespondenceRepository) applyFilter(query *gorm.DB, filter shared.Filter, paginate bool) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("sender ILIKE ? OR company_name ILIKE ?", pattern, pattern)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("correspondences.status = ?", status)
	}

	if !paginate {
		return query
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CorrespondenceSortFields, "created_at")
	query = query.Order("correspondences." + orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}
