package response

import (
	"log/slog"
	"net/http"

	"github.com/SolarGUY14/EasyCeipt/internal/dto"
)

type ResponseHandler interface {
	WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any)
	WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string)
	WriteFile(w http.ResponseWriter, r *http.Request, file *dto.File)
	HandleError(w http.ResponseWriter, r *http.Request, err error)
}

type responseHandler struct {
	Log *slog.Logger
}

func New(log *slog.Logger) *responseHandler {
	return &responseHandler{Log: log}
}
