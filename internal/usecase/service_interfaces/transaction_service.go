package service_interfaces

import (
	"context"
	"time"

	"github.com/vivek1125/banking-transaction-service/internal/adapter/http/models"
	"github.com/vivek1125/banking-transaction-service/internal/commons"
)

type TransactionService interface {
	Process(ctx context.Context, req models.TransactionRequest, credential string) (commons.Response[models.TransactionResponse], error)
	ListRecent(ctx context.Context, accountNumber int64, count int) (commons.Response[[]models.TransactionResponse], error)
	ListByDateRange(ctx context.Context, accountNumber int64, fromDate *time.Time, toDate *time.Time) (commons.Response[[]models.TransactionResponse], error)
}
