package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SolarGUY14/EasyCeipt/internal/dto"
	"github.com/SolarGUY14/EasyCeipt/internal/middleware"
	"github.com/SolarGUY14/EasyCeipt/internal/response"
)

type ReceiptService interface {
	GeneratePDF(ctx context.Context, email string, purchaseIDs []string) (*dto.File, error)
}

type receiptHandlers struct {
	ResponseHandler response.ResponseHandler
	ReceiptSvc      ReceiptService
}

func NewReceiptHandlers(deps *Deps) *receiptHandlers {
	return &receiptHandlers{
		ResponseHandler: deps.ResponseHandler,
		ReceiptSvc:      deps.ReceiptSvc,
	}
}

func (h *receiptHandlers) ReceiptRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/generate-pdf", h.GeneratePDF)
	return r
}

func (h *receiptHandlers) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	email := middleware.Email(r.Context())
	file, err := h.ReceiptSvc.GeneratePDF(r.Context(), email, req.PurchaseIDs)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteFile(w, r, file)
}
