package invoice

import (
	"context"
	"time"

	"github.com/cmlabs-hris/biztime-backend-go/internal/domain/invoice"
)

type InvoiceServiceImpl struct {
	invoiceRepo invoice.InvoiceRepository
	now         func() time.Time
}

// NewInvoiceService builds the invoice service. now supplies the current
// time for add_date and paid_date; nil means time.Now.
func NewInvoiceService(invoiceRepo invoice.InvoiceRepository, now func() time.Time) invoice.InvoiceService {
	if now == nil {
		now = time.Now
	}
	return &InvoiceServiceImpl{
		invoiceRepo: invoiceRepo,
		now:         now,
	}
}

// List implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) List(ctx context.Context) ([]invoice.Summary, error) {
	return s.invoiceRepo.List(ctx)
}

// GetByID implements invoice.InvoiceService.
// The owning company is only read once the invoice is known to exist.
func (s *InvoiceServiceImpl) GetByID(ctx context.Context, id int64) (invoice.Detail, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return invoice.Detail{}, err
	}

	// The invoice may be deleted between the two reads; GetOwner then
	// reports ErrInvoiceNotFound.
	owner, err := s.invoiceRepo.GetOwner(ctx, id)
	if err != nil {
		return invoice.Detail{}, err
	}

	return invoice.Detail{Invoice: inv, Company: owner}, nil
}

// Create implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) Create(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.Invoice, error) {
	return s.invoiceRepo.Create(ctx, invoice.NewInvoice{
		CompCode: req.CompCode,
		Amount:   req.Amount,
		AddDate:  invoice.DateOf(s.now()),
	})
}

// Update implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) Update(ctx context.Context, id int64, req invoice.UpdateInvoiceRequest) (invoice.Invoice, error) {
	change := invoice.Pay(req.Amount, bool(req.Paid), s.now())
	return s.invoiceRepo.Update(ctx, id, change)
}

// Delete implements invoice.InvoiceService.
func (s *InvoiceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.invoiceRepo.Delete(ctx, id)
}
