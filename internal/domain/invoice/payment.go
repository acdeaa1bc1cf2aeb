package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the payment state of an invoice.
type Status string

const (
	StatusUnpaid Status = "UNPAID"
	StatusPaid   Status = "PAID"
)

// Status derives the payment state from the stored row.
func (i Invoice) Status() Status {
	if i.Paid {
		return StatusPaid
	}
	return StatusUnpaid
}

// NewInvoice is the row written on creation. Invoices always start unpaid.
type NewInvoice struct {
	CompCode *string
	Amount   *decimal.Decimal
	AddDate  time.Time
}

// Change is the full set of mutable columns written by an update.
// Paid and PaidDate are always written together.
type Change struct {
	Amount   *decimal.Decimal
	Paid     bool
	PaidDate *time.Time
}

// Pay computes the columns for an update.
// Marking an invoice paid stamps today's date even when it was already
// paid, so repeated payments move paid_date forward. Marking it unpaid
// clears the date.
func Pay(amount *decimal.Decimal, paid bool, today time.Time) Change {
	change := Change{Amount: amount, Paid: paid}
	if paid {
		d := DateOf(today)
		change.PaidDate = &d
	}
	return change
}

// DateOf truncates t to its calendar date, expressed as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
