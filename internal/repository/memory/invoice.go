package memory

import (
	"context"
	"sort"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

type invoiceRepository struct {
	store *Store
}

func NewInvoiceRepository(store *Store) invoice.InvoiceRepository {
	return &invoiceRepository{store: store}
}

func (r invoiceRow) toInvoice() invoice.Invoice {
	return invoice.Invoice{
		ID:       r.id,
		CompCode: r.compCode,
		Amount:   r.amt,
		Paid:     r.paid,
		AddDate:  r.addDate,
		PaidDate: cloneTime(r.paidDate),
	}
}

func checkAmount(amt *decimal.Decimal) error {
	if amt == nil {
		return ErrNotNull
	}
	if !amt.IsPositive() {
		return ErrCheckViolation
	}
	return nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]invoice.Summary, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}

	out := make([]invoice.Summary, 0, len(s.invoices))
	for _, row := range s.invoices {
		out = append(out, invoice.Summary{ID: row.id, CompCode: row.compCode})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int64) (invoice.Invoice, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return invoice.Invoice{}, err
	}

	row, ok := s.invoices[id]
	if !ok {
		return invoice.Invoice{}, invoice.ErrInvoiceNotFound
	}
	return row.toInvoice(), nil
}

func (r *invoiceRepository) GetOwner(ctx context.Context, id int64) (invoice.Owner, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return invoice.Owner{}, err
	}

	row, ok := s.invoices[id]
	if !ok {
		return invoice.Owner{}, invoice.ErrInvoiceNotFound
	}
	c, ok := s.companies[row.compCode]
	if !ok {
		return invoice.Owner{}, invoice.ErrInvoiceNotFound
	}
	return invoice.Owner{Code: c.code, Name: c.name, Description: cloneString(c.description)}, nil
}

func (r *invoiceRepository) ListByCompany(ctx context.Context, compCode string) ([]invoice.Invoice, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return nil, err
	}

	out := []invoice.Invoice{}
	for _, row := range s.invoices {
		if row.compCode == compCode {
			out = append(out, row.toInvoice())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *invoiceRepository) Create(ctx context.Context, newInvoice invoice.NewInvoice) (invoice.Invoice, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return invoice.Invoice{}, err
	}

	if newInvoice.CompCode == nil {
		return invoice.Invoice{}, ErrNotNull
	}
	if err := checkAmount(newInvoice.Amount); err != nil {
		return invoice.Invoice{}, err
	}
	if _, ok := s.companies[*newInvoice.CompCode]; !ok {
		return invoice.Invoice{}, ErrForeignKeyViolation
	}

	s.nextID++
	row := invoiceRow{
		id:       s.nextID,
		compCode: *newInvoice.CompCode,
		amt:      *newInvoice.Amount,
		addDate:  newInvoice.AddDate,
	}
	s.invoices[row.id] = row
	return row.toInvoice(), nil
}

func (r *invoiceRepository) Update(ctx context.Context, id int64, change invoice.Change) (invoice.Invoice, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return invoice.Invoice{}, err
	}

	row, ok := s.invoices[id]
	if !ok {
		return invoice.Invoice{}, invoice.ErrInvoiceNotFound
	}
	if err := checkAmount(change.Amount); err != nil {
		return invoice.Invoice{}, err
	}

	row.amt = *change.Amount
	row.paid = change.Paid
	row.paidDate = cloneTime(change.PaidDate)
	s.invoices[id] = row
	return row.toInvoice(), nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkError(); err != nil {
		return err
	}

	if _, ok := s.invoices[id]; !ok {
		return invoice.ErrInvoiceNotFound
	}
	delete(s.invoices, id)
	return nil
}
