package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionMode string

const (
	TransactionModeATM        TransactionMode = "ATM"
	TransactionModeUPI        TransactionMode = "UPI"
	TransactionModeNetBanking TransactionMode = "NETBANKING"
	TransactionModeBranch     TransactionMode = "BRANCH"
)

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "CREDIT"
	TransactionTypeDebit  TransactionType = "DEBIT"
)

type TransactionStatus string

const (
	TransactionStatusSucceeded TransactionStatus = "SUCCEEDED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction is the append-only audit record of one attempted money movement.
// Rows are never mutated after insert.
type Transaction struct {
	TransactionID string
	AccountNumber int64
	Amount        decimal.Decimal
	Mode          TransactionMode
	Type          TransactionType
	OccurredAt    time.Time
	Status        TransactionStatus
}

// ParseTransactionMode maps a caller-supplied token to a known mode, ignoring case.
func ParseTransactionMode(token string) (TransactionMode, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case string(TransactionModeATM):
		return TransactionModeATM, nil
	case string(TransactionModeUPI):
		return TransactionModeUPI, nil
	case string(TransactionModeNetBanking):
		return TransactionModeNetBanking, nil
	case string(TransactionModeBranch):
		return TransactionModeBranch, nil
	default:
		return "", ErrInvalidMode
	}
}

// ParseTransactionType maps a caller-supplied token to a known type, ignoring case.
func ParseTransactionType(token string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case string(TransactionTypeCredit):
		return TransactionTypeCredit, nil
	case string(TransactionTypeDebit):
		return TransactionTypeDebit, nil
	default:
		return "", ErrInvalidType
	}
}
