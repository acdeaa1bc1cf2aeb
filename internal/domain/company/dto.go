package company

import "github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"

// CreateCompanyRequest fields are pointers so a missing field reaches the
// database as NULL and is rejected by its NOT NULL constraint.
type CreateCompanyRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CompanyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type CompanySummaryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CompanyDetailResponse struct {
	Code        string                    `json:"code"`
	Name        string                    `json:"name"`
	Description *string                   `json:"description"`
	Invoices    []invoice.InvoiceResponse `json:"invoices"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

func NewSummaryResponses(list []Summary) []CompanySummaryResponse {
	out := make([]CompanySummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, CompanySummaryResponse{Code: s.Code, Name: s.Name})
	}
	return out
}

func NewDetailResponse(d Detail) CompanyDetailResponse {
	invoices := make([]invoice.InvoiceResponse, 0, len(d.Invoices))
	for _, inv := range d.Invoices {
		invoices = append(invoices, invoice.NewInvoiceResponse(inv))
	}
	return CompanyDetailResponse{
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		Invoices:    invoices,
	}
}
