package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/mailroom/backend/internal/domain/partner"
)

// CompanyResponse represents a company mirror in API responses
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	Situation string    `json:"situation"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// CompanyListFilter represents filter options for company listings
type CompanyListFilter struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	OrderBy   string `form:"order_by"`
	OrderDir  string `form:"order_dir"`
	Search    string `form:"search"`
	Status    string `form:"status"`
	Situation string `form:"situation"`
}

// ToCompanyResponse converts a domain company to a response DTO
func ToCompanyResponse(c *partner.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		Status:    string(c.Status),
		Situation: string(c.Situation),
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.Version,
	}
}

// ToCompanyResponses converts a slice of domain companies to response DTOs
func ToCompanyResponses(companies []partner.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = ToCompanyResponse(&companies[i])
	}
	return responses
}
