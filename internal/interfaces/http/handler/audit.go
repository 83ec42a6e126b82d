package handler

import (
	"github.com/gin-gonic/gin"
	auditapp "github.com/mailroom/backend/internal/application/audit"
)

// AuditHandler exposes the read-only interaction trail
type AuditHandler struct {
	BaseHandler
	service *auditapp.Service
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(service *auditapp.Service) *AuditHandler {
	return &AuditHandler{service: service}
}

// List retrieves trail entries, optionally narrowed to actions containing a
// fragment
func (h *AuditHandler) List(c *gin.Context) {
	var filter auditapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	entries, total, err := h.service.ListByAction(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, entries, total, page, pageSize)
}

// RegisterRoutes registers audit trail routes on the API group
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit-entries", h.List)
}
