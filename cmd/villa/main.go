package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	availabilityapp "villasunset/internal/app/handlers/availability"
	"villasunset/internal/app/middleware"
	"villasunset/internal/app/queries"
	"villasunset/internal/domain/pricing"
	"villasunset/internal/infra/config"
	ginserver "villasunset/internal/infra/http/gin"
	"villasunset/internal/infra/obs"
	"villasunset/internal/infra/sheets"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	policy, err := pricing.New(cfg.PricingPolicy)
	if err != nil {
		logger.Error("pricing policy invalid", "error", err)
		os.Exit(1)
	}

	sheetClient := sheets.NewClient(sheets.Options{
		BaseURL:  cfg.SheetBaseURL,
		GIDs:     cfg.SheetGIDs,
		Timeout:  cfg.FetchTimeout,
		Retries:  cfg.FetchRetries,
		CacheTTL: cfg.SheetCacheTTL,
		Logger:   logger,
	})

	queryBus := queries.NewInMemoryBus()
	checkStay := &availabilityapp.CheckStayHandler{
		Sheets:         sheetClient,
		Policy:         policy,
		WhatsAppNumber: cfg.WhatsAppNumber,
	}
	queries.RegisterHandler(queryBus, availabilityapp.CheckStayQuery{}.Key(), checkStay)
	monthCalendar := &availabilityapp.MonthCalendarHandler{
		Sheets: sheetClient,
		Policy: policy,
	}
	queries.RegisterHandler(queryBus, availabilityapp.MonthCalendarQuery{}.Key(), monthCalendar)
	bus := middleware.ChainQueries(queryBus, middleware.QueryLogging(logger))

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error { return nil },
	}, ginserver.Handlers{
		Availability: ginserver.AvailabilityHandler{Queries: bus},
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "policy", cfg.PricingPolicy)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
