package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"c4knives-backend/config"
	"c4knives-backend/controllers"
	"c4knives-backend/routes"
	"c4knives-backend/services"
)

func main() {
	cfg := config.MustLoad()
	log := config.SetupLogger(cfg.Env, cfg.LogFile)
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Error("database connect failed", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("database connection established and migrations applied")

	// Initialize services
	adminService := services.NewAdminService(db, log)
	tokenService, err := services.NewTokenService(cfg.JWTSecret)
	if err != nil {
		log.Error("token service init failed", slog.Any("err", err))
		os.Exit(1)
	}
	authService := services.NewAuthService(adminService, tokenService)
	productService := services.NewProductService(db)
	spotlightService := services.NewSpotlightService(db, productService)
	testimonialService := services.NewTestimonialService(db)
	metadataService := services.NewMetadataService(db)
	contactService := services.NewContactService(db)

	// A failed bootstrap leaves the API up; login simply fails until an admin exists.
	if _, err := adminService.EnsureDefault(context.Background()); err != nil {
		log.Error("default admin bootstrap failed", slog.Any("err", err))
	}

	// Initialize controllers
	router := routes.SetupRouter(routes.Controllers{
		Auth:        controllers.NewAuthController(authService, log),
		Products:    controllers.NewProductController(productService, log),
		Spotlight:   controllers.NewSpotlightController(spotlightService, log),
		Testimonial: controllers.NewTestimonialController(testimonialService, log),
		Metadata:    controllers.NewMetadataController(metadataService, log),
		Contact:     controllers.NewContactController(contactService, log),
	}, authService, routes.Options{
		AdminPrefix:    cfg.AdminRoute,
		AllowedOrigins: cfg.AllowedOrigins(),
		Logger:         log,
	})

	addr := ":" + cfg.HTTPServer.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTPServer.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTPServer.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTPServer.WriteTimeout,
		IdleTimeout:       cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("server starting", slog.String("addr", addr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen failed", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", slog.Any("err", err))
		return
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped gracefully")
}
