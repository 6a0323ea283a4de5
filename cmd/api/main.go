package main

import (
	"log"

	"ai-roadmap/internal/bootstrap"
	"ai-roadmap/internal/shared/config"
	"ai-roadmap/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	logger, err := telemetry.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := bootstrap.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := app.Addr()
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
