package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/chacepro/sbom-to-pdf/config"
	"github.com/chacepro/sbom-to-pdf/restapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.Server.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := fiber.New(fiber.Config{
		AppName:   "sbom-to-pdf",
		BodyLimit: 32 * 1024 * 1024,
	})
	restapi.SetupRoutes(app, cfg, logger)

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Addr()))
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Fatal("server exited", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down sbom-to-pdf")
	app.Shutdown()
}
