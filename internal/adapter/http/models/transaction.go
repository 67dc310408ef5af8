package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vivek1125/banking-transaction-service/internal/domain"
)

type TransactionRequest struct {
	AccountNumber     int64           `json:"accountNumber"`
	TransactionAmount decimal.Decimal `json:"transactionAmount"`
	TransactionMode   string          `json:"transactionMode"`
	TransactionType   string          `json:"transactionType"`
}

func (r TransactionRequest) Validate() error {
	var errs []string

	if r.AccountNumber <= 0 {
		errs = append(errs, "accountNumber must be a positive integer")
	}
	// Amounts carry at most two decimal places; anything finer would be rounded
	// away at insert and leave the stored record disagreeing with the balance delta.
	if !r.TransactionAmount.Equal(r.TransactionAmount.Round(2)) {
		errs = append(errs, "transactionAmount must have at most two decimal places")
	}
	if strings.TrimSpace(r.TransactionMode) == "" {
		errs = append(errs, "transactionMode is required")
	}
	if strings.TrimSpace(r.TransactionType) == "" {
		errs = append(errs, "transactionType is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransactionResponse struct {
	TransactionID     string    `json:"transactionId"`
	AccountNumber     int64     `json:"accountNumber"`
	TransactionAmount string    `json:"transactionAmount"`
	TransactionMode   string    `json:"transactionMode"`
	TransactionType   string    `json:"transactionType"`
	OccurredAt        time.Time `json:"occurredAt"`
	Status            string    `json:"status"`
	UpdatedBalance    string    `json:"updatedBalance,omitempty"`
}

func MapTransactionToResponse(transaction domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     transaction.TransactionID,
		AccountNumber:     transaction.AccountNumber,
		TransactionAmount: transaction.Amount.StringFixed(2),
		TransactionMode:   string(transaction.Mode),
		TransactionType:   string(transaction.Type),
		OccurredAt:        transaction.OccurredAt,
		Status:            string(transaction.Status),
	}
}
