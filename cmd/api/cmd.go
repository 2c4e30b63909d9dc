package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/SolarGUY14/EasyCeipt/internal/bootstrap"
	"github.com/SolarGUY14/EasyCeipt/internal/config"
	"github.com/SolarGUY14/EasyCeipt/internal/handlers"
	"github.com/SolarGUY14/EasyCeipt/internal/metrics"
	"github.com/SolarGUY14/EasyCeipt/internal/receipt"
	"github.com/SolarGUY14/EasyCeipt/internal/response"
	"github.com/SolarGUY14/EasyCeipt/internal/router"
	"github.com/SolarGUY14/EasyCeipt/internal/services"
	"github.com/SolarGUY14/EasyCeipt/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	metrics.Register()

	// stores
	pstore := store.NewPurchaseStore(bs.Firestore)
	tstore := store.NewTeamStore(bs.Firestore)

	// renderer
	renderer := receipt.NewRenderer(func() receipt.DocumentBuilder {
		return receipt.NewChromiumBuilder(cfg.ChromiumPath, cfg.PDFTimeout)
	})

	// services
	pserv := services.NewPurchaseService(pstore)
	rserv := services.NewReceiptService(pstore, tstore, renderer)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.AuthVerifier = bs.Firebase
	deps.PurchaseSvc = pserv
	deps.ReceiptSvc = rserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
