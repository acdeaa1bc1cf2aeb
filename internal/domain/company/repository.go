package company

import "context"

// CompanyRepository reports ErrCompanyNotFound when a lookup or a
// mutating statement matches no row.
type CompanyRepository interface {
	List(ctx context.Context) ([]Summary, error)
	GetByCode(ctx context.Context, code string) (Company, error)
	Create(ctx context.Context, req CreateCompanyRequest) (Company, error)
	Update(ctx context.Context, code string, req UpdateCompanyRequest) (Company, error)
	Delete(ctx context.Context, code string) error
}
