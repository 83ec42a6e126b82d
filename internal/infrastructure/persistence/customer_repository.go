package persistence

import (
	"context"
	"errors"

	"github.com/mailroom/backend/internal/domain/partner"
	"github.com/mailroom/backend/internal/domain/shared"
	"github.com/mailroom/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByDirectoryID finds a customer mirror by its directory identifier
func (r *GormCustomerRepository) FindByDirectoryID(ctx context.Context, directoryID int64) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "directory_id = ?", directoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Create inserts a new customer mirror. A primary-key collision means another
// pass mirrored the same identity first; callers re-fetch on ErrAlreadyExists.
func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}
