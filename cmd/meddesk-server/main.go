package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meddesk/meddesk/internal/config"
	"github.com/meddesk/meddesk/internal/domain/appointment"
	"github.com/meddesk/meddesk/internal/domain/insight"
	"github.com/meddesk/meddesk/internal/domain/messaging"
	"github.com/meddesk/meddesk/internal/domain/patient"
	"github.com/meddesk/meddesk/internal/domain/records"
	"github.com/meddesk/meddesk/internal/domain/staff"
	"github.com/meddesk/meddesk/internal/platform/ai"
	"github.com/meddesk/meddesk/internal/platform/auth"
	"github.com/meddesk/meddesk/internal/platform/middleware"
	"github.com/meddesk/meddesk/internal/platform/seed"
	"github.com/meddesk/meddesk/internal/platform/websocket"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "meddesk-server",
		Short: "Medical practice dashboard API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(routesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the registered HTTP routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.Nop()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e, _ := buildServer(cfg, logger)
			routes := e.Routes()
			sort.Slice(routes, func(i, j int) bool {
				if routes[i].Path == routes[j].Path {
					return routes[i].Method < routes[j].Method
				}
				return routes[i].Path < routes[j].Path
			})
			for _, r := range routes {
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s %s\n", r.Method, r.Path)
			}
			return nil
		},
	}
}

// buildServer wires stores, services and handlers onto a fresh echo
// instance and returns it with the seeded doctor account.
func buildServer(cfg *config.Config, logger zerolog.Logger) (*echo.Echo, *staff.User) {
	userRepo := staff.NewMemoryRepository()
	patientRepo := patient.NewMemoryRepository()
	appointmentRepo := appointment.NewMemoryRepository()
	insightRepo := insight.NewMemoryRepository()
	messageRepo := messaging.NewMemoryRepository()
	recordRepo := records.NewMemoryRepository()

	doctor := seed.Apply(seed.Stores{
		Users:        userRepo,
		Patients:     patientRepo,
		Appointments: appointmentRepo,
		Insights:     insightRepo,
		Messages:     messageRepo,
		Records:      recordRepo,
	})

	hub := websocket.NewHub()

	aiClient := ai.New(ai.Config{
		BaseURL: cfg.AIBaseURL,
		APIKey:  cfg.AIAPIKey,
		Model:   cfg.AIModel,
		Timeout: time.Duration(cfg.AITimeoutSeconds) * time.Second,
		Logger:  logger,
	})

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "meddesk-dev-secret"
	}
	tokens := auth.NewTokenManager(jwtSecret, 24*time.Hour)

	staffSvc := staff.NewService(userRepo)
	patientSvc := patient.NewService(patientRepo)
	appointmentSvc := appointment.NewService(appointmentRepo)
	insightSvc := insight.NewService(insightRepo, aiClient, hub)
	messageSvc := messaging.NewService(messageRepo, hub)
	recordSvc := records.NewService(recordRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Every request acts as the seeded doctor while the real login flow
	// stays available under /api/auth.
	e.Use(auth.DevAuthMiddleware(auth.Identity{
		UserID:   doctor.ID,
		Username: doctor.Username,
		Role:     doctor.Role,
	}))

	api := e.Group("/api")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	staff.NewHandler(staffSvc, tokens).RegisterRoutes(api)
	patient.NewHandler(patientSvc).RegisterRoutes(api)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(api)
	insight.NewHandler(insightSvc).RegisterRoutes(api)
	messaging.NewHandler(messageSvc).RegisterRoutes(api)
	records.NewHandler(recordSvc).RegisterRoutes(api)
	websocket.NewHandler(hub).RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	return e, doctor
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
		logger.Fatal().Err(err).Msg("invalid config")
	}

	e, doctor := buildServer(cfg, logger)
	logger.Info().Str("doctor", doctor.Username).Msg("seeded fixture data")

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
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
