package implementations

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vivek1125/banking-transaction-service/internal/domain"
	"github.com/vivek1125/banking-transaction-service/internal/logger"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Insert(ctx context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	if strings.TrimSpace(transaction.TransactionID) == "" {
		transaction.TransactionID = uuid.NewString()
	}

	logger.Info("transaction repository insert", logger.Fields{
		"transactionId": transaction.TransactionID,
		"accountNumber": transaction.AccountNumber,
		"status":        transaction.Status,
	})

	const query = `
INSERT INTO transactions (
	transaction_id,
	account_number,
	transaction_amount,
	transaction_mode,
	transaction_type,
	occurred_at,
	status
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
)
RETURNING occurred_at`

	var occurredAt time.Time
	if err := r.db.QueryRowContext(
		ctx,
		query,
		transaction.TransactionID,
		transaction.AccountNumber,
		transaction.Amount.StringFixed(2),
		transaction.Mode,
		transaction.Type,
		transaction.OccurredAt.UTC(),
		transaction.Status,
	).Scan(&occurredAt); err != nil {
		logger.Error("transaction repository insert failed", err, logger.Fields{
			"transactionId": transaction.TransactionID,
			"accountNumber": transaction.AccountNumber,
		})
		return domain.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	transaction.OccurredAt = occurredAt
	return transaction, nil
}

func (r *TransactionRepository) ListRecent(ctx context.Context, accountNumber int64, count int) ([]domain.Transaction, error) {
	const query = `
SELECT transaction_id, account_number, transaction_amount, transaction_mode, transaction_type, occurred_at, status
FROM transactions
WHERE account_number = $1
ORDER BY occurred_at DESC, transaction_id DESC
LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, accountNumber, count)
	if err != nil {
		logger.Error("transaction repository list recent failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func (r *TransactionRepository) ListByDateRange(ctx context.Context, accountNumber int64, fromDate *time.Time, toDate *time.Time) ([]domain.Transaction, error) {
	query := `
SELECT transaction_id, account_number, transaction_amount, transaction_mode, transaction_type, occurred_at, status
FROM transactions
WHERE account_number = $1`
	args := []any{accountNumber}

	if fromDate != nil {
		args = append(args, fromDate.UTC())
		query += fmt.Sprintf(" AND occurred_at >= $%d", len(args))
	}
	if toDate != nil {
		args = append(args, toDate.UTC())
		query += fmt.Sprintf(" AND occurred_at <= $%d", len(args))
	}
	query += " ORDER BY occurred_at DESC, transaction_id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("transaction repository list by date range failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return nil, fmt.Errorf("list transactions by date range: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var (
			transaction domain.Transaction
			amount      string
			occurredAt  time.Time
		)
		if err := rows.Scan(
			&transaction.TransactionID,
			&transaction.AccountNumber,
			&amount,
			&transaction.Mode,
			&transaction.Type,
			&occurredAt,
			&transaction.Status,
		); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}

		parsed, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return nil, fmt.Errorf("parse stored transaction amount %q: %w", amount, err)
		}
		transaction.Amount = parsed
		transaction.OccurredAt = occurredAt

		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return transactions, nil
}
