package handlers

import (
	"log/slog"

	"github.com/SolarGUY14/EasyCeipt/internal/middleware"
	"github.com/SolarGUY14/EasyCeipt/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	AuthVerifier    middleware.TokenVerifier
	PurchaseSvc     PurchaseService
	ReceiptSvc      ReceiptService
}
