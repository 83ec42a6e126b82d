package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/mailroom/backend/internal/application/partner"
)

// CompanyHandler handles company mirror API endpoints
type CompanyHandler struct {
	BaseHandler
	service *partnerapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(service *partnerapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List retrieves company mirrors with pagination and filtering
func (h *CompanyHandler) List(c *gin.Context) {
	var filter partnerapp.CompanyListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	companies, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, companies, total, page, pageSize)
}

// GetByName retrieves a company mirror by its exact name
func (h *CompanyHandler) GetByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		h.BadRequest(c, "Query parameter 'name' is required")
		return
	}

	company, err := h.service.GetByName(c.Request.Context(), name)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, company)
}

// RegisterRoutes registers company routes on the API group
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.GET("", h.List)
		companies.GET("/by-name", h.GetByName)
	}
}
