package main

import (
	"clinic-portal/internal/app/config"
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/delivery/http/controllers"
	"clinic-portal/internal/app/delivery/http/middlewares"
	"clinic-portal/internal/app/delivery/http/routers"
	"clinic-portal/internal/app/delivery/http/views"
	"clinic-portal/internal/app/drivers/database"
	"clinic-portal/internal/app/drivers/logger"
	"clinic-portal/internal/app/services/core/auth"
	"clinic-portal/internal/app/services/core/session"
	"clinic-portal/internal/app/services/patients"
	"clinic-portal/internal/app/services/shared/httpclient"
	"clinic-portal/internal/app/services/shared/redis"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	err := internalConfig.Validate()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		AccessLogger:   accessLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	driverConfig := bootstrap.DriverConfig

	// Session store
	sessionStore := newSessionStore(bootstrap)
	var ping func(ctx context.Context) error
	if bootstrap.Redis != nil {
		ping = redis.NewRedisRepository(bootstrap.Redis).Ping
	}

	sealer, err := utils.NewTokenSealer(internalConfig.Session.SealingSecret)
	if err != nil {
		return err
	}

	sessionManager := session.NewManager(
		bootstrap.Logger,
		sessionStore,
		sealer,
		internalConfig.Session.Secret,
		internalConfig.Session.ExpiredTimeInHours,
		internalConfig.App.SecureCookie,
	)

	loginLimiter := middlewares.NewLoginAttemptLimiter(
		internalConfig.Session.MaxLoginAttempts,
		time.Duration(internalConfig.Session.LoginAttemptWindowInMinutes)*time.Minute,
		time.Duration(internalConfig.Session.LoginBlockTimeInMinutes)*time.Minute,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionManager, loginLimiter, internalConfig)

	// Outbound clients
	authClient := auth.NewAuthClient(
		internalConfig.AuthAPI.BaseUrl,
		internalConfig.AuthAPI.CheckPath,
		&http.Client{},
		bootstrap.Logger,
	)
	patientClient := patients.NewPatientClient(
		internalConfig.PatientAPI.BaseUrl,
		httpclient.NewClient(nil, bootstrap.Logger),
		bootstrap.Logger,
	)

	// Views
	renderer, err := views.NewRenderer(bootstrap.Logger)
	if err != nil {
		return err
	}

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authClient, sessionManager, renderer, loginLimiter)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, authClient, patientClient, renderer)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientClient, renderer)
	healthController := controllers.NewHealthController(bootstrap.Logger, internalConfig.App.Version, driverConfig.SessionStore.Driver, ping)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		bootstrap.AccessLogger,
		middlewares,
		authController,
		dashboardController,
		patientController,
		healthController,
	)
	return nil
}

func newSessionStore(bootstrap *config.Bootstrap) contracts.SessionStore {
	switch bootstrap.DriverConfig.SessionStore.Driver {
	case constvars.SessionStoreDriverRedis:
		bootstrap.Redis = database.NewRedisClient(bootstrap.DriverConfig)
		return session.NewRedisSessionStore(redis.NewRedisRepository(bootstrap.Redis))
	default:
		store := session.NewMemorySessionStore(
			time.Duration(bootstrap.DriverConfig.SessionStore.CleanupIntervalInMinutes) * time.Minute,
		)
		bootstrap.SessionStoreStop = store.Close
		return store
	}
}
