package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/MrJamesThe3rd/budgie/internal/config"
	budgieHttp "github.com/MrJamesThe3rd/budgie/internal/http"
	importHandler "github.com/MrJamesThe3rd/budgie/internal/http/importcsv"
	reportHandler "github.com/MrJamesThe3rd/budgie/internal/http/report"
	summaryHandler "github.com/MrJamesThe3rd/budgie/internal/http/summary"
	txHandler "github.com/MrJamesThe3rd/budgie/internal/http/transaction"
	"github.com/MrJamesThe3rd/budgie/internal/importer"
	"github.com/MrJamesThe3rd/budgie/internal/report"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
	"github.com/MrJamesThe3rd/budgie/internal/transaction/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		transactionService = transaction.NewService(store.New(cfg.Storage.DataDir, cfg.Storage.UsersFile))
		importService      = importer.NewService()
		reportService      = report.NewService(cfg.Storage.DataDir, cfg.Report.CurrencySymbol)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		summaryH     = summaryHandler.NewHandler(transactionService)
		reportH      = reportHandler.NewHandler(reportService, transactionService)
		importH      = importHandler.NewHandler(importService, transactionService)
	)

	router := budgieHttp.New(transactionH, summaryH, reportH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
