package company

import "github.com/cmlabs-hris/biztime-backend-go/internal/pkg/apperror"

var (
	ErrCompanyNotFound = apperror.NotFound("company not found")
)
