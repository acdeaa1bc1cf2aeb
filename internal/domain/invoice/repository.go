package invoice

import "context"

// InvoiceRepository reports ErrInvoiceNotFound when a lookup or a
// mutating statement matches no row.
type InvoiceRepository interface {
	List(ctx context.Context) ([]Summary, error)
	GetByID(ctx context.Context, id int64) (Invoice, error)
	GetOwner(ctx context.Context, id int64) (Owner, error)
	ListByCompany(ctx context.Context, compCode string) ([]Invoice, error)
	Create(ctx context.Context, newInvoice NewInvoice) (Invoice, error)
	Update(ctx context.Context, id int64, change Change) (Invoice, error)
	Delete(ctx context.Context, id int64) error
}
