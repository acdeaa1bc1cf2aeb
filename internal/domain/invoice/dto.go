package invoice

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of add_date and paid_date.
const DateLayout = "2006-01-02"

// CreateInvoiceRequest fields are pointers so a missing field reaches the
// database as NULL and is rejected by its constraints.
type CreateInvoiceRequest struct {
	CompCode *string          `json:"comp_code"`
	Amount   *decimal.Decimal `json:"amt"`
}

type UpdateInvoiceRequest struct {
	Amount *decimal.Decimal `json:"amt"`
	Paid   Flag             `json:"paid"`
}

// Flag decodes any JSON value by truthiness: false, null, 0 and "" are
// false, everything else is true. A missing field is false.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(t)
	case float64:
		*f = t != 0
	case string:
		*f = t != ""
	default:
		*f = true
	}
	return nil
}

type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amount   decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

type InvoiceSummaryResponse struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

type OwnerResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type InvoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amount   decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
	Company  OwnerResponse   `json:"company"`
}

func NewInvoiceResponse(inv Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amount:   inv.Amount,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(DateLayout),
		PaidDate: formatDate(inv.PaidDate),
	}
}

func NewSummaryResponses(list []Summary) []InvoiceSummaryResponse {
	out := make([]InvoiceSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, InvoiceSummaryResponse{ID: s.ID, CompCode: s.CompCode})
	}
	return out
}

func NewDetailResponse(d Detail) InvoiceDetailResponse {
	return InvoiceDetailResponse{
		ID:       d.ID,
		Amount:   d.Amount,
		Paid:     d.Paid,
		AddDate:  d.AddDate.Format(DateLayout),
		PaidDate: formatDate(d.PaidDate),
		Company: OwnerResponse{
			Code:        d.Company.Code,
			Name:        d.Company.Name,
			Description: d.Company.Description,
		},
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
