package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mailroom/backend/internal/domain/audit"
)

// AuditEntryModel is the persistence model for audit trail entries.
// Rows are append-only; there is no update path.
type AuditEntryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	EntityType string    `gorm:"type:varchar(50);not null;index"`
	EntityID   string    `gorm:"type:varchar(100);not null;index"`
	Action     string    `gorm:"type:varchar(120);not null"`
	Details    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AuditEntryModel) TableName() string {
	return "audit_entries"
}

// ToDomain converts the persistence model to a domain Entry
func (m *AuditEntryModel) ToDomain() audit.Entry {
	return audit.Entry{
		ID:         m.ID,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Action:     m.Action,
		Details:    m.Details,
		CreatedAt:  m.CreatedAt,
	}
}

// AuditEntryModelFromDomain creates a persistence model from a domain Entry
func AuditEntryModelFromDomain(e audit.Entry) *AuditEntryModel {
	return &AuditEntryModel{
		ID:         e.ID,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Action:     e.Action,
		Details:    e.Details,
		CreatedAt:  e.CreatedAt,
	}
}
