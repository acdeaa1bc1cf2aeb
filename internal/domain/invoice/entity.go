package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID       int64
	CompCode string
	Amount   decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}

// Summary is the list projection of an invoice.
type Summary struct {
	ID       int64
	CompCode string
}

// Owner is the company an invoice is billed to, as read through the
// invoices join.
type Owner struct {
	Code        string
	Name        string
	Description *string
}

// Detail is an invoice together with its owning company.
type Detail struct {
	Invoice
	Company Owner
}
