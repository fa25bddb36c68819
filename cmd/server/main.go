package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/helixkg/helix/internal/config"
	"github.com/helixkg/helix/internal/observability"
	"github.com/helixkg/helix/internal/server"
)

func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.toml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
		cfg.ApplyEnv()
	}

	observability.InitializeLogger(cfg.Logger)
	defer observability.Sync()
	log := observability.GetLogger()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx := context.Background()
	srv, err := server.NewServer(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize server", zap.Error(err))
	}
	defer srv.Close(ctx)

	r := srv.SetupRouter()
	log.Info("starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
