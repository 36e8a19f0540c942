package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/categorize"
	categorizeStore "github.com/lepetitpoucetlyon-sketch/restobooks/internal/categorize/store"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/config"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/database"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/export"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/fec"
	restoHttp "github.com/lepetitpoucetlyon-sketch/restobooks/internal/http"
	categoryHandler "github.com/lepetitpoucetlyon-sketch/restobooks/internal/http/category"
	exportHandler "github.com/lepetitpoucetlyon-sketch/restobooks/internal/http/export"
	importHandler "github.com/lepetitpoucetlyon-sketch/restobooks/internal/http/importcsv"
	txHandler "github.com/lepetitpoucetlyon-sketch/restobooks/internal/http/transaction"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/importer"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
	txStore "github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	company := fec.Company{Name: cfg.Company.Name, SIRET: cfg.Company.SIRET}

	var (
		transactionService = transaction.NewService(txStore.New(db))
		categorizeService  = categorize.NewService(categorizeStore.New(db))
		importService      = importer.NewService()
		exportService      = export.NewService(transactionService, company)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		importH      = importHandler.NewHandler(importService, transactionService, categorizeService)
		categoryH    = categoryHandler.NewHandler(categorizeService)
		exportH      = exportHandler.NewHandler(exportService)
	)

	router := restoHttp.New(transactionH, importH, categoryH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
