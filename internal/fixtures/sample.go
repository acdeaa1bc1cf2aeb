// Package fixtures holds the sample companies and invoices used to seed a
// fresh database or the in-memory store.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/company"
	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

// SampleInvoice is an invoice to create for a seeded company. A non-nil
// PaidDate marks it paid on that date.
type SampleInvoice struct {
	CompCode string
	Amount   decimal.Decimal
	PaidDate *time.Time
}

// SeededData holds what Seed created, keyed the way callers look it up.
type SeededData struct {
	CompanyCodes []string
	InvoiceIDs   map[string][]int64 // comp_code -> invoice ids
}

// GetSampleCompanies returns the companies created by Seed.
func GetSampleCompanies() []company.CreateCompanyRequest {
	return []company.CreateCompanyRequest{
		{Code: strPtr("apple"), Name: strPtr("Apple Computer"), Description: strPtr("Maker of OSX.")},
		{Code: strPtr("ibm"), Name: strPtr("IBM"), Description: strPtr("Big blue.")},
	}
}

// GetSampleInvoices returns the invoices created by Seed, all added on addDate.
func GetSampleInvoices(addDate time.Time) []SampleInvoice {
	paidOn := time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
	if addDate.Before(paidOn) {
		paidOn = invoice.DateOf(addDate)
	}
	return []SampleInvoice{
		{CompCode: "apple", Amount: decimal.NewFromInt(100)},
		{CompCode: "apple", Amount: decimal.NewFromInt(200)},
		{CompCode: "apple", Amount: decimal.NewFromInt(300), PaidDate: &paidOn},
		{CompCode: "ibm", Amount: decimal.NewFromInt(400)},
	}
}

// Seed inserts the sample data through the repositories. It fails on the
// first constraint violation, so seeding a non-empty store usually fails
// on the first duplicate company.
func Seed(ctx context.Context, companies company.CompanyRepository, invoices invoice.InvoiceRepository, today time.Time) (*SeededData, error) {
	seeded := &SeededData{InvoiceIDs: make(map[string][]int64)}

	for _, req := range GetSampleCompanies() {
		created, err := companies.Create(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to seed company %s: %w", *req.Code, err)
		}
		seeded.CompanyCodes = append(seeded.CompanyCodes, created.Code)
	}

	addDate := invoice.DateOf(today)
	for _, sample := range GetSampleInvoices(addDate) {
		compCode, amount := sample.CompCode, sample.Amount
		inv, err := invoices.Create(ctx, invoice.NewInvoice{CompCode: &compCode, Amount: &amount, AddDate: addDate})
		if err != nil {
			return nil, fmt.Errorf("failed to seed invoice for %s: %w", compCode, err)
		}
		if sample.PaidDate != nil {
			paidDate := *sample.PaidDate
			if _, err := invoices.Update(ctx, inv.ID, invoice.Change{Amount: &amount, Paid: true, PaidDate: &paidDate}); err != nil {
				return nil, fmt.Errorf("failed to mark seeded invoice %d paid: %w", inv.ID, err)
			}
		}
		seeded.InvoiceIDs[compCode] = append(seeded.InvoiceIDs[compCode], inv.ID)
	}

	return seeded, nil
}
