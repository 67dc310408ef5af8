package services

import (
	"github.com/shopspring/decimal"
	"github.com/vivek1125/banking-transaction-service/internal/domain"
)

// NewBalance computes the balance after applying a transaction. It is the single
// source of credit/debit sign semantics; nothing else may duplicate it.
func NewBalance(transactionType domain.TransactionType, currentBalance decimal.Decimal, amount decimal.Decimal) decimal.Decimal {
	if transactionType == domain.TransactionTypeCredit {
		return currentBalance.Add(amount)
	}
	return currentBalance.Sub(amount)
}
