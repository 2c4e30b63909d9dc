package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SolarGUY14/EasyCeipt/internal/dto"
	"github.com/SolarGUY14/EasyCeipt/pkg/logger"
)

type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := SuccessEnvelope{
		Success: true,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		// Last-ditch logging; can't return an error now
		h.Log.Error("failed to encode success response", "error", err)
	}
}

// WriteFile streams a generated document as an attachment download.
func (h *responseHandler) WriteFile(w http.ResponseWriter, r *http.Request, file *dto.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", file.Filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(file.Data); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to write file response", "error", err, "filename", file.Filename)
	}
}
