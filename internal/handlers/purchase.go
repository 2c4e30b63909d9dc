package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SolarGUY14/EasyCeipt/internal/dto"
	"github.com/SolarGUY14/EasyCeipt/internal/middleware"
	"github.com/SolarGUY14/EasyCeipt/internal/models"
	"github.com/SolarGUY14/EasyCeipt/internal/response"
)

type PurchaseService interface {
	ListPurchases(ctx context.Context, email string) ([]*models.Purchase, error)
	CreatePurchase(ctx context.Context, email string, req dto.CreatePurchaseRequest) (*models.Purchase, error)
	UpdatePurchase(ctx context.Context, email, purchaseID string, req dto.UpdatePurchaseRequest) (*models.Purchase, error)
	DeletePurchase(ctx context.Context, email, purchaseID string) error
}

type purchaseHandlers struct {
	ResponseHandler response.ResponseHandler
	PurchaseSvc     PurchaseService
}

func NewPurchaseHandlers(deps *Deps) *purchaseHandlers {
	return &purchaseHandlers{
		ResponseHandler: deps.ResponseHandler,
		PurchaseSvc:     deps.PurchaseSvc,
	}
}

func (h *purchaseHandlers) PurchaseRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListPurchases)
	r.Post("/", h.CreatePurchase)
	r.Put("/{purchaseId}", h.UpdatePurchase)
	r.Delete("/{purchaseId}", h.DeletePurchase)
	return r
}

func (h *purchaseHandlers) ListPurchases(w http.ResponseWriter, r *http.Request) {
	email := middleware.Email(r.Context())
	purchases, err := h.PurchaseSvc.ListPurchases(r.Context(), email)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, purchases)
}

func (h *purchaseHandlers) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	email := middleware.Email(r.Context())
	purchase, err := h.PurchaseSvc.CreatePurchase(r.Context(), email, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, purchase)
}

func (h *purchaseHandlers) UpdatePurchase(w http.ResponseWriter, r *http.Request) {
	purchaseID := chi.URLParam(r, "purchaseId")
	var req dto.UpdatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	email := middleware.Email(r.Context())
	purchase, err := h.PurchaseSvc.UpdatePurchase(r.Context(), email, purchaseID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, purchase)
}

func (h *purchaseHandlers) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	purchaseID := chi.URLParam(r, "purchaseId")
	email := middleware.Email(r.Context())
	if err := h.PurchaseSvc.DeletePurchase(r.Context(), email, purchaseID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
