package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vivek1125/banking-transaction-service/internal/domain"
)

// TransactionRepository is an in-memory transaction store. It backs tests and the
// MEMORY_STORE development mode; rows are append-only, matching the postgres store.
type TransactionRepository struct {
	mu           sync.Mutex
	transactions []domain.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) Insert(_ context.Context, transaction domain.Transaction) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(transaction.TransactionID) == "" {
		transaction.TransactionID = uuid.NewString()
	}
	transaction.OccurredAt = transaction.OccurredAt.UTC()

	r.transactions = append(r.transactions, transaction)
	return transaction, nil
}

func (r *TransactionRepository) ListRecent(_ context.Context, accountNumber int64, count int) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if count < 0 {
		count = 0
	}
	matches := r.matchesLocked(accountNumber, nil, nil)
	if count < len(matches) {
		matches = matches[:count]
	}
	return matches, nil
}

func (r *TransactionRepository) ListByDateRange(_ context.Context, accountNumber int64, fromDate *time.Time, toDate *time.Time) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.matchesLocked(accountNumber, fromDate, toDate), nil
}

func (r *TransactionRepository) matchesLocked(accountNumber int64, fromDate *time.Time, toDate *time.Time) []domain.Transaction {
	matches := make([]domain.Transaction, 0)
	for _, transaction := range r.transactions {
		if transaction.AccountNumber != accountNumber {
			continue
		}
		if fromDate != nil && transaction.OccurredAt.Before(fromDate.UTC()) {
			continue
		}
		if toDate != nil && transaction.OccurredAt.After(toDate.UTC()) {
			continue
		}
		matches = append(matches, transaction)
	}

	// Most recent first, transaction id as a deterministic tiebreak.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].OccurredAt.Equal(matches[j].OccurredAt) {
			return matches[i].TransactionID > matches[j].TransactionID
		}
		return matches[i].OccurredAt.After(matches[j].OccurredAt)
	})

	return matches
}
