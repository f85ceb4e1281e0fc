package main

import (
	"log"

	"gera_wallet/internal/adapter/http/routes"
	"gera_wallet/internal/config"
	"gera_wallet/internal/logging"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Gera Wallet Card API
// @version         1.0
// @description     Generates signed wallet passes for boleto, PicPay, Nubank and bank transfer payment requests.

// @contact.name   Gera Support

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := routes.Run(cfg, logger); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
