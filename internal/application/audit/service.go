package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mailroom/backend/internal/domain/audit"
	"github.com/mailroom/backend/internal/domain/shared"
)

// EntryResponse represents an audit entry in API responses
type EntryResponse struct {
	ID         uuid.UUID `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListFilter represents filter options for trail queries
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Action   string `form:"action"`
}

// Service exposes read access to the interaction trail
type Service struct {
	repo audit.Repository
}

// NewService creates a new audit Service
func NewService(repo audit.Repository) *Service {
	return &Service{repo: repo}
}

// ListByAction retrieves trail entries whose action contains the given
// fragment, newest first. An empty fragment lists everything.
func (s *Service) ListByAction(ctx context.Context, filter ListFilter) ([]EntryResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	entries, err := s.repo.FindByAction(ctx, filter.Action, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter.Action)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = EntryResponse{
			ID:         e.ID,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Action:     e.Action,
			Details:    e.Details,
			CreatedAt:  e.CreatedAt,
		}
	}
	return responses, total, nil
}
