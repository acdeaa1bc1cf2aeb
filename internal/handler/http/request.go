package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/biztime-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/biztime-backend-go/internal/pkg/apperror"
)

// decodeJSON reads the request body into dst. An empty body decodes as {}.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return apperror.BadRequest("invalid JSON body", err)
}

// fail writes the error response for err, logging it first when it is not
// a classified client error.
func fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if apperror.KindOf(err) == apperror.KindInternal {
		slog.ErrorContext(r.Context(), msg,
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	response.HandleError(w, err)
}
