package app

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

	"go-salon-api/internal/config"
	"go-salon-api/internal/handler"
	"go-salon-api/internal/logger"
	"go-salon-api/internal/middleware"
	"go-salon-api/internal/router"
	"go-salon-api/internal/service"
	"go-salon-api/internal/store"
)

type App struct {
	server       *http.Server
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	docs, err := store.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize document store: %w", err)
	}

	if err := service.SeedDocuments(docs); err != nil {
		return nil, fmt.Errorf("failed to seed documents: %w", err)
	}

	obfuscateEmail := logger.NewEmailObfuscator(cfg.LogObfuscationKey)

	authService := service.NewAuthService(docs, cfg.SessionTTL, obfuscateEmail)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	handshakeService := service.NewHandshakeService(
		cfg.ServerVersion,
		cfg.ServerName,
		[]string{"inventory", "cart", "appointments", "uploads"},
		cfg.HandshakeTTL,
	)

	pictureService, err := service.NewPictureService(cfg.UploadsDir, cfg.PicturesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize picture service: %w", err)
	}

	appRouter := router.New(cfg, authMiddleware, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Handshake:   handler.NewHandshakeHandler(handshakeService),
		Inventory:   handler.NewInventoryHandler(service.NewInventoryService(docs)),
		Cart:        handler.NewCartHandler(service.NewCartService(docs)),
		Appointment: handler.NewAppointmentHandler(service.NewAppointmentService(docs)),
		User:        handler.NewUserHandler(authService),
		Upload:      handler.NewUploadHandler(pictureService, cfg.MaxUploadSize),
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{
		server: server,
		cleanupFuncs: []func(){
			handshakeService.Close,
		},
	}, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
