package main

import (
	"context"
	"log"
	"web-starter/internal/bootstrap"
	"web-starter/internal/config"
	"web-starter/logging"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		log.Fatal("Config error:", err)
	}

	flush, err := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal("Logging error:", err)
	}
	defer flush()

	ctx := context.Background()
	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		zap.L().Fatal("bootstrap failed", zap.Error(err))
	}

	if err := app.Start(ctx); err != nil {
		zap.L().Error("server stopped with error", zap.Error(err))
	}
}
