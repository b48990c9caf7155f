package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clipsdental/clinic/internal/config"
	"github.com/clipsdental/clinic/internal/domain/catalog"
	"github.com/clipsdental/clinic/internal/domain/content"
	"github.com/clipsdental/clinic/internal/domain/doctor"
	"github.com/clipsdental/clinic/internal/domain/lead"
	"github.com/clipsdental/clinic/internal/domain/notification"
	"github.com/clipsdental/clinic/internal/domain/patient"
	"github.com/clipsdental/clinic/internal/platform/auth"
	"github.com/clipsdental/clinic/internal/platform/db"
	"github.com/clipsdental/clinic/internal/platform/kvstore"
	"github.com/clipsdental/clinic/internal/platform/middleware"
)

// collectionKeys lists every stored collection exposed through the
// change-polling endpoint.
var collectionKeys = []string{
	"leads",
	"patients",
	"doctors",
	"services",
	"gallery",
	"testimonials",
	"settings",
	"website-content",
	"notifications",
}

// RegistrarAdapter adapts the patient service to the lead package's
// PatientRegistrar interface, avoiding a circular import between the
// lead and patient packages.
type RegistrarAdapter struct {
	svc *patient.Service
}

func NewRegistrarAdapter(svc *patient.Service) *RegistrarAdapter {
	return &RegistrarAdapter{svc: svc}
}

// RegisterFromLead implements lead.PatientRegistrar.
func (a *RegistrarAdapter) RegisterFromLead(ctx context.Context, l lead.Lead) (string, error) {
	return a.svc.RegisterFromLead(ctx, l)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-server",
		Short: "Dental clinic website and admin console API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install default catalog, doctor, and content data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := seedDefaults(ctx, store); err != nil {
				return err
			}
			fmt.Println("Seed data installed.")
			return nil
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Generate a bcrypt hash for ADMIN_PASSWORD_HASH",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				return fmt.Errorf("--password is required")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}
	cmd.Flags().String("password", "", "Password to hash")
	return cmd
}

// openStore picks the persistence backend: Postgres when DATABASE_URL
// is configured, the file store otherwise.
func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	if cfg.UsePostgres() {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		store := kvstore.NewPGStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		return store, pool.Close, nil
	}

	store, err := kvstore.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open data dir: %w", err)
	}
	return store, func() {}, nil
}

func seedDefaults(ctx context.Context, store kvstore.Store) error {
	catalogSvc := catalog.NewService(
		catalog.NewKVTreatmentRepo(store),
		catalog.NewKVGalleryRepo(store),
		catalog.NewKVTestimonialRepo(store),
	)
	if err := catalogSvc.Seed(ctx); err != nil {
		return err
	}
	return doctor.NewKVRepo(store).Seed(ctx)
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Storage
	ctx := context.Background()
	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer cleanup()
	if cfg.UsePostgres() {
		logger.Info().Msg("connected to database")
	} else {
		logger.Info().Str("dir", cfg.DataDir).Msg("using file store")
	}

	if err := seedDefaults(ctx, store); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed defaults")
	}

	// Domain wiring
	notificationSvc := notification.NewService(notification.NewKVRepo(store))

	patientSvc := patient.NewService(patient.NewKVRepo(store))
	patientSvc.SetNotifier(notificationSvc)

	leadSvc := lead.NewService(lead.NewKVRepo(store))
	leadSvc.SetNotifier(notificationSvc)
	leadSvc.SetRegistrar(NewRegistrarAdapter(patientSvc))

	doctorSvc := doctor.NewService(doctor.NewKVRepo(store))
	catalogSvc := catalog.NewService(
		catalog.NewKVTreatmentRepo(store),
		catalog.NewKVGalleryRepo(store),
		catalog.NewKVTestimonialRepo(store),
	)
	contentSvc := content.NewService(content.NewKVRepo(store))

	authenticator := auth.NewAuthenticator(
		cfg.AdminUsername,
		cfg.AdminPasswordHash,
		[]byte(cfg.SessionSecret),
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
	)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// API groups
	apiV1 := e.Group("/api/v1")
	adminGroup := apiV1.Group("/admin", auth.RequireAdmin(authenticator))

	auth.NewHandler(authenticator).Register(apiV1.Group("/auth"))
	lead.NewHandler(leadSvc).RegisterRoutes(apiV1, adminGroup)
	patient.NewHandler(patientSvc).RegisterRoutes(adminGroup)
	doctor.NewHandler(doctorSvc).RegisterRoutes(apiV1, adminGroup)
	catalog.NewHandler(catalogSvc).RegisterRoutes(apiV1, adminGroup)
	content.NewHandler(contentSvc).RegisterRoutes(apiV1, adminGroup)
	notification.NewHandler(notificationSvc).RegisterRoutes(adminGroup)

	// Change polling: the console compares revision counters on an
	// interval instead of re-fetching every collection.
	adminGroup.GET("/changes", changesHandler(store))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func changesHandler(store kvstore.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		revisions := make(map[string]int64, len(collectionKeys))
		for _, key := range collectionKeys {
			rev, err := store.Revision(c.Request().Context(), key)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			revisions[key] = rev
		}
		return c.JSON(http.StatusOK, revisions)
	}
}
