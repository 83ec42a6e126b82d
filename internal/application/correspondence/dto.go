package correspondence

import (
	"time"

	"github.com/google/uuid"
	"github.com/mailroom/backend/internal/domain/correspondence"
	"github.com/mailroom/backend/internal/domain/directory"
)

// ProcessRequest represents an incoming piece of mail to classify
type ProcessRequest struct {
	Sender      string `json:"sender" binding:"required,min=1,max=200"`
	CompanyName string `json:"company_name" binding:"max=200"`
	PhotoRef    string `json:"photo_ref" binding:"max=1000"`
}

// Response represents a correspondence item in API responses
type Response struct {
	ID           uuid.UUID  `json:"id"`
	Sender       string     `json:"sender"`
	CompanyName  string     `json:"company_name"`
	Status       string     `json:"status"`
	ReceivedDate time.Time  `json:"received_date"`
	NoticeDate   *time.Time `json:"notice_date,omitempty"`
	PhotoRef     string     `json:"photo_ref,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Version      int        `json:"version"`
}

// WithCompanyResponse represents a correspondence item joined with the
// company mirror matching its addressee
type WithCompanyResponse struct {
	Response
	CompanyStatus    string `json:"company_status,omitempty"`
	CompanySituation string `json:"company_situation,omitempty"`
	CompanyMessage   string `json:"company_message,omitempty"`
}

// DirectoryMatchResponse represents one directory search match
type DirectoryMatchResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ListFilter represents filter options for correspondence listings
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Status   string `form:"status"`
}

// ToResponse converts a domain correspondence item to a response DTO
func ToResponse(c *correspondence.Correspondence) Response {
	return Response{
		ID:           c.ID,
		Sender:       c.Sender,
		CompanyName:  c.CompanyName,
		Status:       string(c.Status),
		ReceivedDate: c.ReceivedDate,
		NoticeDate:   c.NoticeDate,
		PhotoRef:     c.PhotoRef,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Version:      c.Version,
	}
}

// ToResponses converts a slice of domain items to response DTOs
func ToResponses(items []correspondence.Correspondence) []Response {
	responses := make([]Response, len(items))
	for i := range items {
		responses[i] = ToResponse(&items[i])
	}
	return responses
}

// ToWithCompanyResponses converts joined read models to response DTOs
func ToWithCompanyResponses(items []correspondence.WithCompany) []WithCompanyResponse {
	responses := make([]WithCompanyResponse, len(items))
	for i := range items {
		responses[i] = WithCompanyResponse{
			Response:         ToResponse(&items[i].Correspondence),
			CompanyStatus:    items[i].CompanyStatus,
			CompanySituation: items[i].CompanySituation,
			CompanyMessage:   items[i].CompanyMessage,
		}
	}
	return responses
}

// ToDirectoryMatchResponses converts directory records to response DTOs
func ToDirectoryMatchResponses(records []directory.CustomerRecord) []DirectoryMatchResponse {
	responses := make([]DirectoryMatchResponse, len(records))
	for i, r := range records {
		responses[i] = DirectoryMatchResponse{
			ID:        r.ID,
			Name:      r.Name,
			FirstName: r.FirstName,
			TaxID:     r.TaxID,
			Email:     r.PrimaryEmail(),
			Phone:     r.Phone,
		}
	}
	return responses
}
