package company

import (
	"context"
)

type CompanyService interface {
	List(ctx context.Context) ([]Summary, error)
	GetByCode(ctx context.Context, code string) (Detail, error)
	Create(ctx context.Context, req CreateCompanyRequest) (Company, error)
	Update(ctx context.Context, code string, req UpdateCompanyRequest) (Company, error)
	Delete(ctx context.Context, code string) error
}
