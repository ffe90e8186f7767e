package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
	accStore "github.com/Santiagox01/VeterinariaFinal/internal/accessory/store"
	"github.com/Santiagox01/VeterinariaFinal/internal/config"
	"github.com/Santiagox01/VeterinariaFinal/internal/database"
	vetHttp "github.com/Santiagox01/VeterinariaFinal/internal/http"
	accHandler "github.com/Santiagox01/VeterinariaFinal/internal/http/accessory"
	importHandler "github.com/Santiagox01/VeterinariaFinal/internal/http/importcsv"
	invoiceHandler "github.com/Santiagox01/VeterinariaFinal/internal/http/invoice"
	saleHandler "github.com/Santiagox01/VeterinariaFinal/internal/http/sale"
	"github.com/Santiagox01/VeterinariaFinal/internal/importer"
	"github.com/Santiagox01/VeterinariaFinal/internal/invoice"
	"github.com/Santiagox01/VeterinariaFinal/internal/sale"
	saleStore "github.com/Santiagox01/VeterinariaFinal/internal/sale/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		accessoryService = accessory.NewService(accStore.New(db))
		saleService      = sale.NewService(saleStore.New(db))
		importService    = importer.NewService()
		invoiceService   = invoice.NewService(saleService, accessoryService, cfg.App.Name)
	)

	var (
		accessoryH = accHandler.NewHandler(accessoryService)
		saleH      = saleHandler.NewHandler(saleService)
		invoiceH   = invoiceHandler.NewHandler(invoiceService)
		importH    = importHandler.NewHandler(importService, accessoryService)
	)

	router := vetHttp.New(cfg.Server.AllowedOrigins, accessoryH, saleH, invoiceH, importH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
