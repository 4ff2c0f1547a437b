// File: deskly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deskly/config"
	"deskly/database"
	presetRepo "deskly/database/repository/preset"
	"deskly/handlers"
	"deskly/middleware"
	"deskly/remote"
	"deskly/routes"
	"deskly/services/booking"
	"deskly/services/plansync"
	"deskly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories and external clients.
	presetRepository := presetRepo.NewMongoPresetRepo()
	bookingAPI := remote.NewClient()

	// services.
	syncService := &plansync.Service{
		Remote:   bookingAPI,
		Store:    plansync.NewRedisSnapshotStore(utils.GetCacheClient()),
		ProbeMax: config.AppConfig.FloorProbeMax,
	}
	availabilityService := &booking.DefaultAvailabilityService{
		Client: bookingAPI,
	}

	planHandler := handlers.NewPlanHandler(syncService)
	presetHandler := handlers.NewPresetHandler(presetRepository)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)

	routes.RegisterRoutes(router, planHandler, presetHandler, availabilityHandler)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
