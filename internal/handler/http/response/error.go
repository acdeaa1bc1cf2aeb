package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/apperror"
)

// HandleError maps an error to its JSON error response. Errors without a
// kind are internal and keep their own message.
func HandleError(w http.ResponseWriter, err error) {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		NotFound(w, messageOf(err))
	case apperror.KindBadRequest:
		BadRequest(w, messageOf(err))
	default:
		InternalServerError(w, err.Error())
	}
}

func messageOf(err error) string {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
