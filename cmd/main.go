package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Zafert/pointr-challenge/internal/app"
	"github.com/Zafert/pointr-challenge/internal/config"
	"github.com/Zafert/pointr-challenge/internal/constants"
	"github.com/Zafert/pointr-challenge/internal/server"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

func main() {
	appName := os.Getenv("APP_NAME")
	if appName == "" {
		appName = constants.DefaultAppName
	}
	utils.InitLogger(appName)

	// 1) Config
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Logger.WithError(err).Fatal("Invalid configuration")
	}

	// 2) Core application (stores, services)
	application := app.NewApp(cfg)
	defer application.Close()

	if cfg.SeedDemoData {
		if err := application.SeedDemoData(context.Background()); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed demo data")
		}
	}

	// 3) Server
	srv := server.NewServer(application)
	errCh := srv.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			utils.Logger.WithError(err).Error("Server error")
		}
	case <-ctx.Done():
		utils.Logger.Info("Shutdown signal received")
	}

	if err := srv.Stop(context.Background()); err != nil {
		utils.Logger.WithError(err).Error("Graceful shutdown failed")
	}
	utils.Logger.Info("Server stopped")
}
