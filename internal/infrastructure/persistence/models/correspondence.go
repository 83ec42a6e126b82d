package models

import (
	"time"

	"github.com/mailroom/backend/internal/domain/correspondence"
)

// CorrespondenceModel is the persistence model for the Correspondence entity
type CorrespondenceModel struct {
	AggregateModel
	Sender       string                `gorm:"type:varchar(200);not null"`
	CompanyName  string                `gorm:"type:varchar(200);index"`
	Status       correspondence.Status `gorm:"type:varchar(20);not null;default:'unset';index"`
	ReceivedDate time.Time             `gorm:"type:date"`
	NoticeDate   *time.Time            `gorm:"type:date"`
	PhotoRef     string                `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CorrespondenceModel) TableName() string {
	return "correspondences"
}

// ToDomain converts the persistence model to a domain Correspondence entity
func (m *CorrespondenceModel) ToDomain() *correspondence.Correspondence {
	return &correspondence.Correspondence{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Sender:            m.Sender,
		CompanyName:       m.CompanyName,
		Status:            m.Status,
		ReceivedDate:      m.ReceivedDate,
		NoticeDate:        m.NoticeDate,
		PhotoRef:          m.PhotoRef,
	}
}

// FromDomain populates the persistence model from a domain Correspondence entity
func (m *CorrespondenceModel) FromDomain(c *correspondence.Correspondence) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Sender = c.Sender
	m.CompanyName = c.CompanyName
	m.Status = c.Status
	m.ReceivedDate = c.ReceivedDate
	m.NoticeDate = c.NoticeDate
	m.PhotoRef = c.PhotoRef
}

// CorrespondenceModelFromDomain creates a persistence model from a domain entity
func CorrespondenceModelFromDomain(c *correspondence.Correspondence) *CorrespondenceModel {
	m := &CorrespondenceModel{}
	m.FromDomain(c)
	return m
}

// CorrespondenceWithCompanyRow is the scan target for the addressee join query
type CorrespondenceWithCompanyRow struct {
	CorrespondenceModel
	CompanyStatus    *string
	CompanySituation *string
	CompanyMessage   *string
}

// ToDomain converts the joined row to the domain read model
func (r *CorrespondenceWithCompanyRow) ToDomain() correspondence.WithCompany {
	out := correspondence.WithCompany{
		Correspondence: *r.CorrespondenceModel.ToDomain(),
	}
	if r.CompanyStatus != nil {
		out.CompanyStatus = *r.CompanyStatus
	}
	if r.CompanySituation != nil {
		out.CompanySituation = *r.CompanySituation
	}
	if r.CompanyMessage != nil {
		out.CompanyMessage = *r.CompanyMessage
	}
	return out
}
