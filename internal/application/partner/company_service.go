package partner

import (
	"context"

	"github.com/mailroom/backend/internal/domain/partner"
	"github.com/mailroom/backend/internal/domain/shared"
)

// CompanyService exposes read access to the company mirrors built up by
// classification. Companies are only ever written by the reconciliation flow.
type CompanyService struct {
	companyRepo partner.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo partner.CompanyRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
	}
}

// GetByName retrieves a company mirror by its exact name
func (s *CompanyService) GetByName(ctx context.Context, name string) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	response := ToCompanyResponse(company)
	return &response, nil
}

// List retrieves company mirrors with filtering and pagination
func (s *CompanyService) List(ctx context.Context, filter CompanyListFilter) ([]CompanyResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Situation != "" {
		domainFilter.Filters["situation"] = filter.Situation
	}

	companies, err := s.companyRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.companyRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToCompanyResponses(companies), total, nil
}
