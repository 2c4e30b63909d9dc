package services

import (
	"context"
	"time"

	"github.com/SolarGUY14/EasyCeipt/internal/dto"
	"github.com/SolarGUY14/EasyCeipt/internal/errs"
	"github.com/SolarGUY14/EasyCeipt/internal/metrics"
	"github.com/SolarGUY14/EasyCeipt/internal/models"
	"github.com/SolarGUY14/EasyCeipt/pkg/helpers"
	"github.com/SolarGUY14/EasyCeipt/pkg/logger"
)

type purchasePSStore interface {
	List(ctx context.Context, email string) ([]*models.Purchase, error)
	Get(ctx context.Context, email, purchaseID string) (*models.Purchase, error)
	Create(ctx context.Context, p *models.Purchase) error
	Update(ctx context.Context, email string, p *models.Purchase) error
	Delete(ctx context.Context, email, purchaseID string) error
}

type purchaseService struct {
	Store purchasePSStore
}

func NewPurchaseService(store purchasePSStore) *purchaseService {
	return &purchaseService{
		Store: store,
	}
}

func (s *purchaseService) ListPurchases(ctx context.Context, email string) ([]*models.Purchase, error) {
	return s.Store.List(ctx, email)
}

// CreatePurchase validates the request and persists a new record. The
// owner is always the authenticated caller; anything the client sends
// for it is ignored.
func (s *purchaseService) CreatePurchase(ctx context.Context, email string, req dto.CreatePurchaseRequest) (*models.Purchase, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if req.VendorName == "" {
		return nil, errs.NewValidationError("vendor_name", "vendor name is required")
	}
	if req.Amount == nil {
		return nil, errs.NewValidationError("amount", "amount is required")
	}
	if *req.Amount < 0 {
		return nil, errs.NewValidationError("amount", "amount must be non-negative")
	}
	if req.TaxAmount != nil && *req.TaxAmount < 0 {
		return nil, errs.NewValidationError("tax_amount", "tax amount must be non-negative")
	}

	p := &models.Purchase{
		Email:       email,
		TransDate:   req.Date,
		Vendor:      req.VendorName,
		TotAmount:   *req.Amount,
		TaxAmount:   helpers.Value(req.TaxAmount),
		PaidTax:     helpers.Value(req.PaidTax),
		Description: req.Description,
	}

	if err := s.Store.Create(ctx, p); err != nil {
		return nil, err
	}

	metrics.PurchasesCreated.Inc()
	log := logger.FromContext(ctx)
	log.Info("purchase created", "purchase_id", p.ID, "vendor", p.Vendor)
	return p, nil
}

// UpdatePurchase merges the provided fields over the stored record.
// Ownership is checked before anything else; changed fields go through
// the same rules as create.
func (s *purchaseService) UpdatePurchase(ctx context.Context, email, purchaseID string, req dto.UpdatePurchaseRequest) (*models.Purchase, error) {
	p, err := s.Store.Get(ctx, email, purchaseID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		if err := validateDate(*req.Date); err != nil {
			return nil, err
		}
		p.TransDate = *req.Date
	}
	if req.VendorName != nil {
		if *req.VendorName == "" {
			return nil, errs.NewValidationError("vendor_name", "vendor name is required")
		}
		p.Vendor = *req.VendorName
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, errs.NewValidationError("amount", "amount must be non-negative")
		}
		p.TotAmount = *req.Amount
	}
	if req.TaxAmount != nil {
		if *req.TaxAmount < 0 {
			return nil, errs.NewValidationError("tax_amount", "tax amount must be non-negative")
		}
		p.TaxAmount = *req.TaxAmount
	}
	if req.RealAmount != nil {
		p.RealAmount = req.RealAmount
	}
	if req.PaidTax != nil {
		p.PaidTax = *req.PaidTax
	}
	if req.Description != nil {
		p.Description = *req.Description
	}

	if err := s.Store.Update(ctx, email, p); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("purchase updated", "purchase_id", p.ID)
	return p, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, email, purchaseID string) error {
	if err := s.Store.Delete(ctx, email, purchaseID); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("purchase deleted", "purchase_id", purchaseID)
	return nil
}

func validateDate(date string) error {
	if date == "" {
		return errs.NewValidationError("date", "date is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errs.NewValidationError("date", "invalid date format, use YYYY-MM-DD")
	}
	return nil
}
