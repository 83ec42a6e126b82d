package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns the defaultField if the input is empty or not whitelisted.
// Sort fields end up concatenated into ORDER BY clauses, so nothing outside
// the whitelist may ever pass through.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CorrespondenceSortFields contains allowed sort fields for correspondence items
var CorrespondenceSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"sender":        true,
	"company_name":  true,
	"status":        true,
	"received_date": true,
	"notice_date":   true,
}

// CompanySortFields contains allowed sort fields for company mirrors
var CompanySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"status":     true,
	"situation":  true,
}

// AuditEntrySortFields contains allowed sort fields for audit entries
var AuditEntrySortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"entity_type": true,
	"action":      true,
}
