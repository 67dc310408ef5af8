package repo_interfaces

import (
	"context"
	"time"

	"github.com/vivek1125/banking-transaction-service/internal/domain"
)

type TransactionRepository interface {
	Insert(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error)
	ListRecent(ctx context.Context, accountNumber int64, count int) ([]domain.Transaction, error)
	ListByDateRange(ctx context.Context, accountNumber int64, fromDate *time.Time, toDate *time.Time) ([]domain.Transaction, error)
}
