package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msomdec/atelier/internal/config"
	"github.com/msomdec/atelier/internal/handler"
	"github.com/msomdec/atelier/internal/metrics"
	"github.com/msomdec/atelier/internal/repository/sqlite"
	"github.com/msomdec/atelier/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP API and care reference page. Configuration comes from the
defaults, then the --config file, then PORT, DATABASE_PATH, JWT_SECRET,
COOKIE_SECURE, BCRYPT_COST and LOG_LEVEL.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, _ := cfg.SlogLevel()

	logOpts := &slog.HandlerOptions{Level: level}
	slog.SetDefault(slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	)))

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("database migrations applied", "path", cfg.DatabasePath)

	m := metrics.New(metrics.DefaultConfig())
	plan := service.PlanConfig{
		InitialTemperatureC: cfg.Planner.InitialTemperatureC,
		DefaultTemperatureC: cfg.Planner.DefaultTemperatureC,
	}
	appliance := service.NewApplianceService(db.Appliances(), cfg.Appliance.CleaningThreshold, m)
	limiter := service.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, 10*time.Minute)
	go limiter.Run(ctx, time.Minute)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Services{
		Auth:         service.NewAuthService(db.Users(), cfg.JWTSecret, cfg.BcryptCost),
		Garments:     service.NewGarmentService(db.Garments(), db.WashSessions(), plan, m),
		Laundry:      service.NewLaundryService(db.WashSessions(), db.Garments(), plan, m),
		Appliance:    appliance,
		Metrics:      m,
		Store:        db,
		Limiter:      limiter,
		CookieSecure: cfg.CookieSecure,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Wrap(mux, m),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
