package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SolarGUY14/EasyCeipt/internal/errs"
	"github.com/SolarGUY14/EasyCeipt/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

// HandleError converts service-layer errors into HTTP responses at the
// request boundary. Internal failures are logged with detail and
// answered with a generic message.
func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.ValidationError:
		log.Warn("validation failed", "field", e.Field, "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.EmptyInputError:
		log.Warn("empty input", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "empty_input", e.Message)

	case *json.UnmarshalTypeError:
		log.Warn("malformed request body", "field", e.Field, "error", err)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", "Invalid request body")

	case *json.SyntaxError:
		log.Warn("malformed request body", "error", err)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", "Invalid request body")

	case *errs.FormatError:
		log.Error("stored data failed to format", "error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An error occurred")

	case *errs.DatabaseError:
		log.Error("database error",
			"operation", e.Operation,
			"error", e.Err)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An error occurred")

	case *errs.RenderError:
		log.Error("render error", "error", e.Err)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An error occurred")

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
