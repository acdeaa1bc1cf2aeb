package invoice

import "github.com/cmlabs-hris/biztime-backend-go/internal/pkg/apperror"

var (
	ErrInvoiceNotFound = apperror.NotFound("invoice not found")
)
