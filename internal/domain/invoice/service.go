package invoice

import "context"

type InvoiceService interface {
	List(ctx context.Context) ([]Summary, error)
	GetByID(ctx context.Context, id int64) (Detail, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (Invoice, error)
	Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (Invoice, error)
	Delete(ctx context.Context, id int64) error
}
