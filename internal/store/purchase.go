package store

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SolarGUY14/EasyCeipt/internal/errs"
	"github.com/SolarGUY14/EasyCeipt/internal/models"
)

// notFoundMsg is returned for both a missing purchase and one owned by
// another user, so callers cannot probe for other users' record IDs.
const notFoundMsg = "Purchase not found or access denied"

type purchaseStore struct {
	client *firestore.Client
}

func NewPurchaseStore(client *firestore.Client) *purchaseStore {
	return &purchaseStore{client: client}
}

func (s *purchaseStore) collection() *firestore.CollectionRef {
	return s.client.Collection("purchases")
}

func (s *purchaseStore) List(ctx context.Context, email string) ([]*models.Purchase, error) {
	docs, err := s.collection().
		Where("email", "==", email).
		OrderBy("transDate", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list purchases", err)
	}

	purchases := make([]*models.Purchase, 0, len(docs))
	for _, d := range docs {
		var p models.Purchase
		if err := d.DataTo(&p); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse purchase data", err)
		}
		purchases = append(purchases, &p)
	}
	return purchases, nil
}

// Get returns the purchase only when it exists and belongs to email.
func (s *purchaseStore) Get(ctx context.Context, email, purchaseID string) (*models.Purchase, error) {
	doc, err := s.collection().Doc(purchaseID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError(notFoundMsg)
		}
		return nil, errs.NewDatabaseError("read", "failed to get purchase", err)
	}

	var p models.Purchase
	if err := doc.DataTo(&p); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse purchase data", err)
	}
	if p.Email != email {
		return nil, errs.NewNotFoundError(notFoundMsg)
	}
	return &p, nil
}

func (s *purchaseStore) Create(ctx context.Context, p *models.Purchase) error {
	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.collection().Doc(p.ID).Create(ctx, p); err != nil {
		return errs.NewDatabaseError("create", "failed to create purchase", err)
	}
	return nil
}

// Update overwrites the record after re-checking ownership.
func (s *purchaseStore) Update(ctx context.Context, email string, p *models.Purchase) error {
	if _, err := s.Get(ctx, email, p.ID); err != nil {
		return err
	}

	p.UpdatedAt = time.Now()
	if _, err := s.collection().Doc(p.ID).Set(ctx, p); err != nil {
		return errs.NewDatabaseError("update", "failed to update purchase", err)
	}
	return nil
}

func (s *purchaseStore) Delete(ctx context.Context, email, purchaseID string) error {
	if _, err := s.Get(ctx, email, purchaseID); err != nil {
		return err
	}

	if _, err := s.collection().Doc(purchaseID).Delete(ctx); err != nil {
		return errs.NewDatabaseError("delete", "failed to delete purchase", err)
	}
	return nil
}

// GetByIDs resolves the owned purchases among purchaseIDs, most recent
// first. IDs that are missing or owned by someone else are silently
// dropped; an entirely empty result is the caller's problem to signal.
func (s *purchaseStore) GetByIDs(ctx context.Context, email string, purchaseIDs []string) ([]*models.Purchase, error) {
	purchases := make([]*models.Purchase, 0, len(purchaseIDs))
	for _, id := range purchaseIDs {
		p, err := s.Get(ctx, email, id)
		if err != nil {
			if _, ok := err.(*errs.NotFoundError); ok {
				continue
			}
			return nil, err
		}
		purchases = append(purchases, p)
	}

	// ISO dates sort lexicographically
	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].TransDate > purchases[j].TransDate
	})
	return purchases, nil
}
