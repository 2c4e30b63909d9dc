package services

import (
	"context"
	"errors"
	"testing"

	"github.com/SolarGUY14/EasyCeipt/internal/dto"
	"github.com/SolarGUY14/EasyCeipt/internal/errs"
	"github.com/SolarGUY14/EasyCeipt/internal/models"
	"github.com/SolarGUY14/EasyCeipt/pkg/helpers"
)

type fakePurchaseStore struct {
	byID map[string]*models.Purchase

	list    []*models.Purchase
	listErr error

	created   *models.Purchase
	createErr error

	updated   *models.Purchase
	updateErr error

	deleted []string
}

func (f *fakePurchaseStore) List(ctx context.Context, email string) ([]*models.Purchase, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakePurchaseStore) Get(ctx context.Context, email, purchaseID string) (*models.Purchase, error) {
	p, ok := f.byID[purchaseID]
	if !ok || p.Email != email {
		return nil, errs.NewNotFoundError("Purchase not found or access denied")
	}
	cp := *p
	return &cp, nil
}

func (f *fakePurchaseStore) Create(ctx context.Context, p *models.Purchase) error {
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = "generated-id"
	f.created = p
	return nil
}

func (f *fakePurchaseStore) Update(ctx context.Context, email string, p *models.Purchase) error {
	if _, err := f.Get(ctx, email, p.ID); err != nil {
		return err
	}
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = p
	return nil
}

func (f *fakePurchaseStore) Delete(ctx context.Context, email, purchaseID string) error {
	if _, err := f.Get(ctx, email, purchaseID); err != nil {
		return err
	}
	f.deleted = append(f.deleted, email+":"+purchaseID)
	return nil
}

func TestCreatePurchaseSuccess(t *testing.T) {
	store := &fakePurchaseStore{}
	svc := NewPurchaseService(store)

	req := dto.CreatePurchaseRequest{
		Date:        "2024-03-15",
		VendorName:  "Acme",
		Amount:      helpers.Ptr(100.0),
		TaxAmount:   helpers.Ptr(8.0),
		Description: "widgets",
	}
	p, err := svc.CreatePurchase(helpers.TestCtx(), "jane@example.com", req)
	if err != nil {
		t.Fatalf("CreatePurchase returned error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if p.Email != "jane@example.com" {
		t.Fatalf("owner = %q, want caller email", p.Email)
	}
	if p.TransDate != "2024-03-15" || p.Vendor != "Acme" || p.TotAmount != 100 || p.TaxAmount != 8 {
		t.Fatalf("unexpected stored fields: %#v", p)
	}
	if p.PaidTax {
		t.Fatalf("paid_tax should default to false")
	}
	if store.created == nil {
		t.Fatalf("store.Create not called")
	}
}

func TestCreatePurchaseZeroAmountSucceeds(t *testing.T) {
	svc := NewPurchaseService(&fakePurchaseStore{})

	req := dto.CreatePurchaseRequest{Date: "2024-03-15", VendorName: "Acme", Amount: helpers.Ptr(0.0)}
	if _, err := svc.CreatePurchase(helpers.TestCtx(), "jane@example.com", req); err != nil {
		t.Fatalf("amount 0 should be valid, got %v", err)
	}
}

func TestCreatePurchaseValidation(t *testing.T) {
	cases := []struct {
		name  string
		req   dto.CreatePurchaseRequest
		field string
	}{
		{
			name:  "missing date",
			req:   dto.CreatePurchaseRequest{VendorName: "Acme", Amount: helpers.Ptr(1.0)},
			field: "date",
		},
		{
			name:  "invalid month",
			req:   dto.CreatePurchaseRequest{Date: "2024-13-01", VendorName: "Acme", Amount: helpers.Ptr(1.0)},
			field: "date",
		},
		{
			name:  "missing vendor",
			req:   dto.CreatePurchaseRequest{Date: "2024-03-15", Amount: helpers.Ptr(1.0)},
			field: "vendor_name",
		},
		{
			name:  "missing amount",
			req:   dto.CreatePurchaseRequest{Date: "2024-03-15", VendorName: "Acme"},
			field: "amount",
		},
		{
			name:  "negative amount",
			req:   dto.CreatePurchaseRequest{Date: "2024-03-15", VendorName: "Acme", Amount: helpers.Ptr(-5.0)},
			field: "amount",
		},
		{
			name:  "negative tax",
			req:   dto.CreatePurchaseRequest{Date: "2024-03-15", VendorName: "Acme", Amount: helpers.Ptr(1.0), TaxAmount: helpers.Ptr(-1.0)},
			field: "tax_amount",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakePurchaseStore{}
			svc := NewPurchaseService(store)

			_, err := svc.CreatePurchase(helpers.TestCtx(), "jane@example.com", tc.req)
			ve, ok := err.(*errs.ValidationError)
			if !ok {
				t.Fatalf("expected ValidationError, got %T (%v)", err, err)
			}
			if ve.Field != tc.field {
				t.Fatalf("offending field = %q, want %q", ve.Field, tc.field)
			}
			if store.created != nil {
				t.Fatalf("store.Create should not be called on invalid input")
			}
		})
	}
}

func TestUpdatePurchaseMergesFields(t *testing.T) {
	existing := &models.Purchase{
		ID:        "p1",
		Email:     "jane@example.com",
		TransDate: "2024-03-15",
		Vendor:    "Acme",
		TotAmount: 100,
		TaxAmount: 8,
	}
	store := &fakePurchaseStore{byID: map[string]*models.Purchase{"p1": existing}}
	svc := NewPurchaseService(store)

	req := dto.UpdatePurchaseRequest{Amount: helpers.Ptr(120.0)}
	p, err := svc.UpdatePurchase(helpers.TestCtx(), "jane@example.com", "p1", req)
	if err != nil {
		t.Fatalf("UpdatePurchase returned error: %v", err)
	}
	if p.TotAmount != 120 {
		t.Fatalf("amount not updated: %v", p.TotAmount)
	}
	if p.Vendor != "Acme" || p.TransDate != "2024-03-15" || p.TaxAmount != 8 {
		t.Fatalf("untouched fields changed: %#v", p)
	}
	if store.updated == nil {
		t.Fatalf("store.Update not called")
	}
}

func TestUpdatePurchaseRevalidatesChangedFields(t *testing.T) {
	existing := &models.Purchase{ID: "p1", Email: "jane@example.com", TransDate: "2024-03-15", Vendor: "Acme", TotAmount: 100}
	store := &fakePurchaseStore{byID: map[string]*models.Purchase{"p1": existing}}
	svc := NewPurchaseService(store)

	_, err := svc.UpdatePurchase(helpers.TestCtx(), "jane@example.com", "p1", dto.UpdatePurchaseRequest{Date: helpers.Ptr("2024-13-01")})
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}
	if store.updated != nil {
		t.Fatalf("store.Update should not be called on invalid input")
	}
}

func TestUpdatePurchaseNotFound(t *testing.T) {
	store := &fakePurchaseStore{byID: map[string]*models.Purchase{}}
	svc := NewPurchaseService(store)

	_, err := svc.UpdatePurchase(helpers.TestCtx(), "jane@example.com", "missing", dto.UpdatePurchaseRequest{})
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
}

func TestUpdatePurchaseWrongOwner(t *testing.T) {
	existing := &models.Purchase{ID: "p1", Email: "other@example.com", TransDate: "2024-03-15", Vendor: "Acme"}
	store := &fakePurchaseStore{byID: map[string]*models.Purchase{"p1": existing}}
	svc := NewPurchaseService(store)

	_, err := svc.UpdatePurchase(helpers.TestCtx(), "jane@example.com", "p1", dto.UpdatePurchaseRequest{Amount: helpers.Ptr(1.0)})
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError for foreign record, got %T (%v)", err, err)
	}
	if store.updated != nil {
		t.Fatalf("foreign record must not be written")
	}
}

func TestDeletePurchaseSuccess(t *testing.T) {
	existing := &models.Purchase{ID: "p1", Email: "jane@example.com"}
	store := &fakePurchaseStore{byID: map[string]*models.Purchase{"p1": existing}}
	svc := NewPurchaseService(store)

	if err := svc.DeletePurchase(helpers.TestCtx(), "jane@example.com", "p1"); err != nil {
		t.Fatalf("DeletePurchase returned error: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "jane@example.com:p1" {
		t.Fatalf("unexpected delete calls: %#v", store.deleted)
	}
}

func TestDeletePurchaseNotFound(t *testing.T) {
	store := &fakePurchaseStore{byID: map[string]*models.Purchase{}}
	svc := NewPurchaseService(store)

	err := svc.DeletePurchase(helpers.TestCtx(), "jane@example.com", "missing")
	if _, ok := err.(*errs.NotFoundError); !ok {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
}

func TestListPurchasesPassthrough(t *testing.T) {
	expected := []*models.Purchase{{ID: "p1"}, {ID: "p2"}}
	svc := NewPurchaseService(&fakePurchaseStore{list: expected})

	got, err := svc.ListPurchases(helpers.TestCtx(), "jane@example.com")
	if err != nil {
		t.Fatalf("ListPurchases returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p1" {
		t.Fatalf("unexpected list: %#v", got)
	}
}

func TestListPurchasesStoreError(t *testing.T) {
	expectedErr := errors.New("store down")
	svc := NewPurchaseService(&fakePurchaseStore{listErr: expectedErr})

	if _, err := svc.ListPurchases(helpers.TestCtx(), "jane@example.com"); err != expectedErr {
		t.Fatalf("ListPurchases error = %v, want %v", err, expectedErr)
	}
}
