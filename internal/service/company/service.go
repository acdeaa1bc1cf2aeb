package company

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
	invoiceRepo invoice.InvoiceRepository
}

func NewCompanyService(companyRepo company.CompanyRepository, invoiceRepo invoice.InvoiceRepository) company.CompanyService {
	return &CompanyServiceImpl{
		companyRepo: companyRepo,
		invoiceRepo: invoiceRepo,
	}
}

// List implements company.CompanyService.
func (c *CompanyServiceImpl) List(ctx context.Context) ([]company.Summary, error) {
	return c.companyRepo.List(ctx)
}

// GetByCode implements company.CompanyService.
// The company lookup must succeed before invoices are read. The two reads
// are not wrapped in a transaction.
func (c *CompanyServiceImpl) GetByCode(ctx context.Context, code string) (company.Detail, error) {
	found, err := c.companyRepo.GetByCode(ctx, code)
	if err != nil {
		return company.Detail{}, err
	}

	invoices, err := c.invoiceRepo.ListByCompany(ctx, code)
	if err != nil {
		return company.Detail{}, fmt.Errorf("failed to list invoices of company %s: %w", code, err)
	}

	return company.Detail{Company: found, Invoices: invoices}, nil
}

// Create implements company.CompanyService.
func (c *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.Company, error) {
	return c.companyRepo.Create(ctx, req)
}

// Update implements company.CompanyService.
func (c *CompanyServiceImpl) Update(ctx context.Context, code string, req company.UpdateCompanyRequest) (company.Company, error) {
	return c.companyRepo.Update(ctx, code, req)
}

// Delete implements company.CompanyService.
func (c *CompanyServiceImpl) Delete(ctx context.Context, code string) error {
	return c.companyRepo.Delete(ctx, code)
}
