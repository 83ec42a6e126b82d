package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string returns DESC", "", "DESC"},
		{"ASC uppercase returns ASC", "ASC", "ASC"},
		{"asc lowercase returns ASC", "asc", "ASC"},
		{"DESC uppercase returns DESC", "DESC", "DESC"},
		{"invalid value returns DESC", "INVALID", "DESC"},
		{"sql injection attempt returns DESC", "ASC; DROP TABLE correspondences;--", "DESC"},
		{"whitespace around ASC returns ASC", "  asc  ", "ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSortOrder(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		allowedMap   map[string]bool
		defaultField string
		expected     string
	}{
		{"empty string returns default", "", CorrespondenceSortFields, "created_at", "created_at"},
		{"valid field returns field", "sender", CorrespondenceSortFields, "created_at", "sender"},
		{"invalid field returns default", "photo_ref", CorrespondenceSortFields, "created_at", "created_at"},
		{"sql injection attempt returns default", "id; DROP TABLE correspondences;--", CorrespondenceSortFields, "created_at", "created_at"},
		{"case sensitive - uppercase invalid", "SENDER", CorrespondenceSortFields, "created_at", "created_at"},
		{"whitespace around valid field returns field", "  status  ", CorrespondenceSortFields, "created_at", "status"},
		{"company field against company whitelist", "situation", CompanySortFields, "name", "situation"},
		{"audit field against audit whitelist", "entity_type", AuditEntrySortFields, "created_at", "entity_type"},
		{"field from other whitelist returns default", "sender", CompanySortFields, "name", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSortField(tt.input, tt.allowedMap, tt.defaultField)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSortFieldsWhitelists(t *testing.T) {
	whitelists := map[string]map[string]bool{
		"CorrespondenceSortFields": CorrespondenceSortFields,
		"CompanySortFields":        CompanySortFields,
		"AuditEntrySortFields":     AuditEntrySortFields,
	}

	for name, fields := range whitelists {
		t.Run(name+" contains id and created_at", func(t *testing.T) {
			assert.True(t, fields["id"])
			assert.True(t, fields["created_at"])
		})
	}
}
