package company

import "github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"

type Company struct {
	Code        string
	Name        string
	Description *string
}

// Summary is the list projection of a company.
type Summary struct {
	Code string
	Name string
}

// Detail is a company together with every invoice billed to it.
type Detail struct {
	Company
	Invoices []invoice.Invoice
}
