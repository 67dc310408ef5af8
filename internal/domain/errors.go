package domain

import "errors"

var ErrInvalidRequest = errors.New("Invalid transaction request")
var ErrInvalidMode = errors.New("Invalid transaction mode")
var ErrInvalidType = errors.New("Invalid transaction type")
var ErrInvalidAmount = errors.New("Transaction amount must be greater than zero")
var ErrAmountExceedsChannelLimit = errors.New("Transaction amount exceeds the channel limit")
var ErrAccountNotFound = errors.New("Account not found")
var ErrAccountNotActive = errors.New("Account is not active")
var ErrUpstreamUnavailable = errors.New("Account service is unavailable")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrTransactionFailed = errors.New("Transaction failed")
