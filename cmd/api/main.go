package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/kasir/internal/cart"
	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/checkout"
	"github.com/MrJamesThe3rd/kasir/internal/clock"
	"github.com/MrJamesThe3rd/kasir/internal/config"
	"github.com/MrJamesThe3rd/kasir/internal/discount"
	kasirHttp "github.com/MrJamesThe3rd/kasir/internal/http"
	"github.com/MrJamesThe3rd/kasir/internal/http/auth"
	cartHandler "github.com/MrJamesThe3rd/kasir/internal/http/cart"
	productHandler "github.com/MrJamesThe3rd/kasir/internal/http/product"
	reportHandler "github.com/MrJamesThe3rd/kasir/internal/http/report"
	settingsHandler "github.com/MrJamesThe3rd/kasir/internal/http/settings"
	txHandler "github.com/MrJamesThe3rd/kasir/internal/http/transaction"
	"github.com/MrJamesThe3rd/kasir/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/kasir/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	products, err := catalog.NewDefault()
	if err != nil {
		slog.Error("failed to build default catalog", "error", err)
		os.Exit(1)
	}

	if cfg.Catalog.Path != "" {
		n, err := products.LoadFile(cfg.Catalog.Path)
		if err != nil {
			slog.Error("failed to load catalog", "path", cfg.Catalog.Path, "error", err)
			os.Exit(1)
		}

		slog.Info("catalog loaded", "path", cfg.Catalog.Path, "products", n)
	}

	taxEngine, err := cfg.TaxEngine()
	if err != nil {
		slog.Error("failed to build tax engine", "error", err)
		os.Exit(1)
	}

	processor, err := cfg.PaymentProcessor()
	if err != nil {
		slog.Error("failed to build payment processor", "error", err)
		os.Exit(1)
	}

	clk := clock.System{}

	var (
		ledgerService   = ledger.NewService(ledgerStore.New())
		orchestrator    = checkout.NewOrchestrator(discount.WithDefaults(clk), taxEngine, processor)
		checkoutService = checkout.NewService(orchestrator, ledgerService, clk)
	)

	var (
		cartH     = cartHandler.NewHandler(cart.NewRegistry(clk), products, checkoutService)
		txH       = txHandler.NewHandler(ledgerService, checkoutService)
		productH  = productHandler.NewHandler(products)
		reportH   = reportHandler.NewHandler(ledgerService, clk, cfg.Ledger.TopCustomers)
		settingsH = settingsHandler.NewHandler(taxEngine)
	)

	authn := auth.New(cfg.Auth.TerminalSecret)
	if !authn.Enabled() {
		slog.Warn("terminal authentication disabled, set AUTH_TERMINAL_SECRET to enable it")
	}

	router := kasirHttp.New(
		kasirHttp.Options{AllowedOrigins: cfg.CORS.AllowedOrigins, Auth: authn},
		cartH, txH, productH, reportH, settingsH,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr, "tax_mode", taxEngine.Mode())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
