package services

import (
	"github.com/shopspring/decimal"
	"github.com/vivek1125/banking-transaction-service/internal/domain"
)

// TransactionValidator holds the pure validation rules for a transaction request.
// The ATM channel limit is injected so the policy stays testable and overridable.
type TransactionValidator struct {
	atmLimit decimal.Decimal
}

func NewTransactionValidator(atmLimit decimal.Decimal) *TransactionValidator {
	return &TransactionValidator{atmLimit: atmLimit}
}

func (v *TransactionValidator) ParseMode(token string) (domain.TransactionMode, error) {
	return domain.ParseTransactionMode(token)
}

func (v *TransactionValidator) ParseType(token string) (domain.TransactionType, error) {
	return domain.ParseTransactionType(token)
}

func (v *TransactionValidator) ValidateAmount(amount decimal.Decimal, mode domain.TransactionMode) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if mode == domain.TransactionModeATM && amount.GreaterThan(v.atmLimit) {
		return domain.ErrAmountExceedsChannelLimit
	}
	return nil
}

// ValidateDebit checks sufficiency once the authoritative balance is known.
func (v *TransactionValidator) ValidateDebit(transactionType domain.TransactionType, amount decimal.Decimal, currentBalance decimal.Decimal) error {
	if transactionType == domain.TransactionTypeDebit && amount.GreaterThan(currentBalance) {
		return domain.ErrInsufficientFunds
	}
	return nil
}
