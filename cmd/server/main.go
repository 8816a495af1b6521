package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AniketKagathara/Complaint-tracker-companion/internal/config"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/handlers"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/identity"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/repositories/postgres"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/services"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/session"
	"github.com/AniketKagathara/Complaint-tracker-companion/internal/utils"
	"github.com/AniketKagathara/Complaint-tracker-companion/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogger := utils.ToSlogLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("db connection failed: %v", err)
	}

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("redis connection failed: %v", err)
	}
	defer redisClient.Close()

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		log.Fatalf("event publisher init failed: %v", err)
	}
	defer publisher.Close()

	provider := identity.NewCasdoorProvider(identity.CasdoorConfig{
		Endpoint:     cfg.CasdoorEndpoint,
		ClientID:     cfg.CasdoorClientID,
		ClientSecret: cfg.CasdoorClientSecret,
		Certificate:  cfg.CasdoorCertificate,
		Organization: cfg.CasdoorOrganization,
		Application:  cfg.CasdoorApplication,
	})

	repo := postgres.NewRepository(db)
	sessions := session.NewRedisStore(redisClient, cfg.AdminSessionTTL)
	validator := utils.NewValidator()

	serviceManager := services.NewServiceManager(services.ManagerConfig{
		Repo:                 repo,
		Provider:             provider,
		Sessions:             sessions,
		Publisher:            publisher,
		Logger:               slogger,
		Validator:            validator,
		ReconcileGracePeriod: cfg.ReconcileGracePeriod,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, provider, logger)
	handlerManager.SetupRoutes(router)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
