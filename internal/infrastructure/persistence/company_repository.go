package persistence

import (
	"context"
	"errors"

	"github.com/mailroom/backend/internal/domain/partner"
	"github.com/mailroom/backend/internal/domain/shared"
	"github.com/mailroom/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCompanyRepository implements partner.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByName finds a company mirror by its exact name
func (r *GormCompanyRepository) FindByName(ctx context.Context, name string) (*partner.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Create inserts a new company mirror. The unique index on name turns a lost
// creation race into ErrAlreadyExists; callers re-fetch the winner's row.
func (r *GormCompanyRepository) Create(ctx context.Context, company *partner.Company) error {
	model := models.CompanyModelFromDomain(company)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindAll finds all company mirrors matching the filter
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Company, error) {
	var companyModels []models.CompanyModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CompanyModel{}), filter, true)

	if err := query.Find(&companyModels).Error; err != nil {
		return nil, err
	}

	companies := make([]partner.Company, len(companyModels))
	for i, model := range companyModels {
		companies[i] = *model.ToDomain()
	}
	return companies, nil
}

// Count counts company mirrors matching the filter
func (r *GormCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CompanyModel{}), filter, false)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCompanyRepository) applyFilter(query *gorm.DB, filter shared.Filter, paginate bool) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if situation, ok := filter.Filters["situation"]; ok {
		query = query.Where("situation = ?", situation)
	}

	if !paginate {
		return query
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CompanySortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}
