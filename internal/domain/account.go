package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusFrozen AccountStatus = "FROZEN"
	AccountStatusClosed AccountStatus = "CLOSED"
)

// Account is a snapshot of an account owned by the remote Account service.
// This service reads it and proposes a single balance write; it never owns the row.
type Account struct {
	AccountNumber int64
	Balance       decimal.Decimal
	Status        AccountStatus
	UpdatedAt     time.Time
}
