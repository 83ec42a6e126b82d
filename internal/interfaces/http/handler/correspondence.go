package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	correspondenceapp "github.com/mailroom/backend/internal/application/correspondence"
)

// CorrespondenceHandler handles correspondence-related API endpoints
type CorrespondenceHandler struct {
	BaseHandler
	service *correspondenceapp.Service
}

// NewCorrespondenceHandler creates a new CorrespondenceHandler
func NewCorrespondenceHandler(service *correspondenceapp.Service) *CorrespondenceHandler {
	return &CorrespondenceHandler{service: service}
}

// ProcessRequest represents a request to register and classify incoming mail
type ProcessRequest struct {
	Sender      string `json:"sender" binding:"required,min=1,max=200"`
	CompanyName string `json:"company_name" binding:"max=200"`
	PhotoRef    string `json:"photo_ref" binding:"max=1000"`
}

// SetStatusRequest represents an administrative status override
type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unset under_review returned misuse"`
}

// SetNoticeDateRequest represents a directory notice date update
type SetNoticeDateRequest struct {
	NoticeDate string `json:"notice_date" binding:"required"`
}

// Process registers a piece of mail and runs it through classification
func (h *CorrespondenceHandler) Process(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	item, err := h.service.Process(c.Request.Context(), correspondenceapp.ProcessRequest{
		Sender:      req.Sender,
		CompanyName: req.CompanyName,
		PhotoRef:    req.PhotoRef,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// GetByID retrieves a correspondence item by ID
func (h *CorrespondenceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid correspondence ID format")
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// List retrieves correspondence items with pagination and filtering
func (h *CorrespondenceHandler) List(c *gin.Context) {
	var filter correspondenceapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, items, total, page, pageSize)
}

// ListWithCompany retrieves correspondence items joined with the standing of
// the company mirror matching their addressee
func (h *CorrespondenceHandler) ListWithCompany(c *gin.Context) {
	var filter correspondenceapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	items, total, err := h.service.ListWithCompany(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize)
	h.SuccessWithMeta(c, items, total, page, pageSize)
}

// SetStatus applies an administrative status override
func (h *CorrespondenceHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid correspondence ID format")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	item, err := h.service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// SetNoticeDate records when the occupant was notified
func (h *CorrespondenceHandler) SetNoticeDate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid correspondence ID format")
		return
	}

	var req SetNoticeDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	noticeDate, err := time.Parse("2006-01-02", req.NoticeDate)
	if err != nil {
		h.BadRequest(c, "Invalid notice date, expected YYYY-MM-DD")
		return
	}

	item, err := h.service.SetNoticeDate(c.Request.Context(), id, noticeDate)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Delete removes a correspondence item
func (h *CorrespondenceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid correspondence ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// SearchDirectory queries the external company directory by name
func (h *CorrespondenceHandler) SearchDirectory(c *gin.Context) {
	matches, err := h.service.SearchDirectory(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, matches)
}

// RegisterRoutes registers correspondence routes on the API group
func (h *CorrespondenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	correspondences := rg.Group("/correspondences")
	{
		correspondences.POST("", h.Process)
		correspondences.GET("", h.List)
		correspondences.GET("/with-company", h.ListWithCompany)
		correspondences.GET("/:id", h.GetByID)
		correspondences.PATCH("/:id/status", h.SetStatus)
		correspondences.PATCH("/:id/notice-date", h.SetNoticeDate)
		correspondences.DELETE("/:id", h.Delete)
	}

	rg.GET("/directory/search", h.SearchDirectory)
}

// normalizePage fills in pagination defaults for the response meta
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
