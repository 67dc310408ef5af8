package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/vivek1125/banking-transaction-service/internal/adapter/accountclient"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/http/controller"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/http/middleware"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/http/router"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/repository/implementations"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/repository/memory"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/repository/repo_interfaces"
	"github.com/vivek1125/banking-transaction-service/internal/config"
	"github.com/vivek1125/banking-transaction-service/internal/logger"
	"github.com/vivek1125/banking-transaction-service/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var transactionRepo repo_interfaces.TransactionRepository
	if cfg.MemoryStore {
		logger.Info("using in-memory transaction store", nil)
		transactionRepo = memory.NewTransactionRepository()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := implementations.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
			cancel()
			log.Fatalf("run migrations: %v", err)
		}

		db, err := implementations.Open(ctx, cfg.DatabaseDSN)
		cancel()
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()

		transactionRepo = implementations.NewTransactionRepository(db)
	}

	accountClient := accountclient.New(cfg.AccountServiceURL, cfg.AccountServiceTimeout)
	validator := services.NewTransactionValidator(cfg.ATMTransactionLimit)
	transactionService := services.NewTransactionService(validator, accountClient, accountClient, transactionRepo)
	transactionController := controller.NewTransactionController(transactionService)

	bearerAuth := middleware.BearerAuth()
	channelAuth := middleware.ChannelAuth(cfg.ChannelID, cfg.ChannelKeyHash)
	authMiddleware := func(next http.Handler) http.Handler {
		return channelAuth(bearerAuth(next))
	}

	mux := router.New(transactionController, authMiddleware)

	addr := ":" + cfg.Port
	logger.Info("transaction service listening", logger.Fields{"addr": addr})
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
