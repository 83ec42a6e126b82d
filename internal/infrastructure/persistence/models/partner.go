package models

import (
	"time"

	"github.com/mailroom/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer mirror. The primary
// key is the directory's identifier, never generated locally.
type CustomerModel struct {
	DirectoryID int64     `gorm:"primaryKey;autoIncrement:false"`
	Name        string    `gorm:"type:varchar(200);not null"`
	FirstName   string    `gorm:"type:varchar(100)"`
	Email       string    `gorm:"type:varchar(200)"`
	Phone       string    `gorm:"type:varchar(50)"`
	TaxID       string    `gorm:"type:varchar(50)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		DirectoryID: m.DirectoryID,
		Name:        m.Name,
		FirstName:   m.FirstName,
		Email:       m.Email,
		Phone:       m.Phone,
		TaxID:       m.TaxID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CustomerModelFromDomain creates a persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	return &CustomerModel{
		DirectoryID: c.DirectoryID,
		Name:        c.Name,
		FirstName:   c.FirstName,
		Email:       c.Email,
		Phone:       c.Phone,
		TaxID:       c.TaxID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CompanyModel is the persistence model for the Company mirror. The unique
// index on name is what closes the concurrent-creation race in reconciliation.
type CompanyModel struct {
	AggregateModel
	Name      string                   `gorm:"type:varchar(200);not null;uniqueIndex"`
	TaxID     string                   `gorm:"type:varchar(50)"`
	Email     string                   `gorm:"type:varchar(200)"`
	Phone     string                   `gorm:"type:varchar(50)"`
	Status    partner.CompanyStatus    `gorm:"type:varchar(30);not null;default:'regular'"`
	Situation partner.CompanySituation `gorm:"type:varchar(30);not null;default:'business_id'"`
	Message   string                   `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company
func (m *CompanyModel) ToDomain() *partner.Company {
	return &partner.Company{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		TaxID:             m.TaxID,
		Email:             m.Email,
		Phone:             m.Phone,
		Status:            m.Status,
		Situation:         m.Situation,
		Message:           m.Message,
	}
}

// FromDomain populates the persistence model from a domain Company
func (m *CompanyModel) FromDomain(c *partner.Company) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.TaxID = c.TaxID
	m.Email = c.Email
	m.Phone = c.Phone
	m.Status = c.Status
	m.Situation = c.Situation
	m.Message = c.Message
}

// CompanyModelFromDomain creates a persistence model from a domain Company
func CompanyModelFromDomain(c *partner.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}
