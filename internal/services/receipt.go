package services

import (
	"context"
	"time"

	"github.com/SolarGUY14/EasyCeipt/internal/dto"
	"github.com/SolarGUY14/EasyCeipt/internal/errs"
	"github.com/SolarGUY14/EasyCeipt/internal/metrics"
	"github.com/SolarGUY14/EasyCeipt/internal/models"
	"github.com/SolarGUY14/EasyCeipt/pkg/logger"
)

type purchaseRSStore interface {
	GetByIDs(ctx context.Context, email string, purchaseIDs []string) ([]*models.Purchase, error)
}

type teamRSStore interface {
	GetProfile(ctx context.Context, email string) (*models.TeamProfile, error)
}

type receiptRenderer interface {
	Render(ctx context.Context, purchases []*models.Purchase, profile *models.TeamProfile, generatedAt time.Time) ([]byte, error)
}

type receiptService struct {
	purchases purchaseRSStore
	teams     teamRSStore
	renderer  receiptRenderer
	now       func() time.Time
}

func NewReceiptService(purchases purchaseRSStore, teams teamRSStore, renderer receiptRenderer) *receiptService {
	return &receiptService{
		purchases: purchases,
		teams:     teams,
		renderer:  renderer,
		now:       time.Now,
	}
}

// GeneratePDF resolves the caller's purchases among the requested IDs
// and renders them into a receipt. IDs the caller does not own are
// dropped without complaint; only a completely empty result is an
// error.
func (s *receiptService) GeneratePDF(ctx context.Context, email string, purchaseIDs []string) (*dto.File, error) {
	if len(purchaseIDs) == 0 {
		return nil, errs.NewEmptyInputError("No purchase IDs provided")
	}

	purchases, err := s.purchases.GetByIDs(ctx, email, purchaseIDs)
	if err != nil {
		return nil, err
	}
	if len(purchases) == 0 {
		return nil, errs.NewNotFoundError("No purchases found")
	}

	profile, err := s.teams.GetProfile(ctx, email)
	if err != nil {
		return nil, err
	}

	generatedAt := s.now()
	start := time.Now()
	data, err := s.renderer.Render(ctx, purchases, profile, generatedAt)
	if err != nil {
		return nil, err
	}
	metrics.ReceiptRenderTime.Observe(time.Since(start).Seconds())
	metrics.ReceiptsGenerated.Inc()

	log := logger.FromContext(ctx)
	log.Info("receipt generated", "purchases", len(purchases), "bytes", len(data))

	return &dto.File{
		Filename:    "receipt-" + generatedAt.UTC().Format("20060102") + ".pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}
