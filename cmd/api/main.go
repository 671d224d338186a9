package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hospomate/hospomate-backend-go/internal/config"
	"github.com/hospomate/hospomate-backend-go/internal/domain/insight"
	appHTTP "github.com/hospomate/hospomate-backend-go/internal/handler/http"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/cache"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/cron"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/database"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/jwt"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/square"
	"github.com/hospomate/hospomate-backend-go/internal/repository/postgresql"
	contributionService "github.com/hospomate/hospomate-backend-go/internal/service/contribution"
	insightService "github.com/hospomate/hospomate-backend-go/internal/service/insight"
	shiftReportService "github.com/hospomate/hospomate-backend-go/internal/service/shiftreport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	storeRepo := postgresql.NewStoreRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	contributionRepo := postgresql.NewContributionRepository(db)

	defaultZone, err := time.LoadLocation(cfg.POS.DefaultTimezone)
	if err != nil {
		log.Fatal("Invalid default timezone:", err)
	}
	squareClient := square.NewClient(square.Options{
		AccessToken: cfg.POS.AccessToken,
		Environment: cfg.POS.Environment,
		BaseURL:     cfg.POS.BaseURL,
		APIVersion:  cfg.POS.APIVersion,
		PageLimit:   cfg.POS.PageLimit,
		Timeout:     cfg.POS.Timeout,
	})
	gateway := square.NewGateway(squareClient, cfg.POS.LocationID, defaultZone)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	dashboardCache := cache.New[*insight.WeeklyDashboard](cfg.Cache.DashboardTTL)
	insightSvc := insightService.NewInsightService(storeRepo, staffRepo, contributionRepo, gateway, dashboardCache)
	shiftReportSvc := shiftReportService.NewShiftReportService(storeRepo, staffRepo, gateway)
	configSvc := contributionService.NewConfigService(contributionRepo, storeRepo, gateway, insightSvc)

	insightHandler := appHTTP.NewInsightHandler(insightSvc, shiftReportSvc)
	adminConfigHandler := appHTTP.NewAdminConfigHandler(configSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		insightHandler,
		adminConfigHandler,
	)

	scheduler := cron.NewScheduler(ctx)
	cron.NewDashboardCacheJobs(dashboardCache).RegisterJobs(scheduler, cfg.Cache.DashboardTTL, cfg.Cache.SweepInterval)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	fmt.Printf("Server running at http://localhost%s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Println("Server error:", err)
	}
}
