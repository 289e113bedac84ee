// File: auditveda/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auditveda/config"
	"auditveda/handlers"
	"auditveda/middleware"
	"auditveda/routes"
	"auditveda/services/agreement"
	"auditveda/services/drive"
	"auditveda/services/verification"
	"auditveda/services/wizard"
	"auditveda/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local env files carry secrets like the Drive refresh token.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitVerificationCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Verification flow.
	if !config.AppConfig.HasVendorCredentials() {
		logger.Sugar().Warn("main: Aadhaar vendor credentials not set; OTP verification will fail")
	}
	vendorClient := verification.NewVendorClient(
		config.AppConfig.CashfreeBaseURL,
		config.AppConfig.CashfreeClientID,
		config.AppConfig.CashfreeClientSecret,
	)
	verifier := verification.NewVerificationService(vendorClient)

	// PDF delivery: Drive when configured, inline base64 otherwise.
	var uploader agreement.Uploader
	missingEnv := drive.MissingCredentials(config.AppConfig)
	if len(missingEnv) == 0 {
		driveUploader, err := drive.NewUploader(context.Background(), config.AppConfig)
		if err != nil {
			logger.Sugar().Warnf("main: Drive uploader unavailable, falling back to inline delivery: %v", err)
			missingEnv = []string{"GOOGLE_DRIVE (uploader init failed)"}
		} else {
			uploader = driveUploader
		}
	} else {
		logger.Sugar().Warnf("main: Drive not configured, agreements will be delivered inline (missing: %v)", missingEnv)
	}
	generator := agreement.NewGenerator(uploader, missingEnv)

	// Wizard session flow.
	sessionStore := wizard.NewRedisSessionStore(utils.GetSessionCacheClient())
	refStore := verification.NewRedisReferenceStore(utils.GetVerificationCacheClient())
	wizardService := wizard.NewWizardService(sessionStore, refStore, verifier, generator)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		WizardService: wizardService,
		Verifier:      verifier,
		Generator:     generator,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
