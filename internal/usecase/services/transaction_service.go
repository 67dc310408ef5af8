package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/http/models"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/repository/repo_interfaces"
	"github.com/vivek1125/banking-transaction-service/internal/commons"
	"github.com/vivek1125/banking-transaction-service/internal/domain"
	"github.com/vivek1125/banking-transaction-service/internal/logger"
)

// AccountBalanceReader fetches the authoritative balance and status for an account.
type AccountBalanceReader interface {
	GetAccount(ctx context.Context, accountNumber int64, credential string) (domain.Account, error)
}

// AccountBalanceWriter proposes a new balance on the remote Account service.
// A nil error means the remote accepted the write; there is no partial detail.
type AccountBalanceWriter interface {
	UpdateBalance(ctx context.Context, accountNumber int64, newBalance decimal.Decimal, occurredAt time.Time, credential string) error
}

type TransactionService struct {
	validator       *TransactionValidator
	reader          AccountBalanceReader
	writer          AccountBalanceWriter
	transactionRepo repo_interfaces.TransactionRepository
}

func NewTransactionService(
	validator *TransactionValidator,
	reader AccountBalanceReader,
	writer AccountBalanceWriter,
	transactionRepo repo_interfaces.TransactionRepository,
) *TransactionService {
	return &TransactionService{
		validator:       validator,
		reader:          reader,
		writer:          writer,
		transactionRepo: transactionRepo,
	}
}

// Process runs one transaction request through validate, read, calculate, write and
// record. Validation and read failures return before anything is attempted against the
// account, so no record is written for them. Once the balance write is attempted, a
// record is always persisted, succeeded or failed, so the audit trail never has a gap
// between "we tried to move money" and "we know whether it worked". There is no retry
// anywhere; a resubmission is a brand-new request with a new transaction id.
func (s *TransactionService) Process(ctx context.Context, req models.TransactionRequest, credential string) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service process request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()),
			fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	mode, err := s.validator.ParseMode(req.TransactionMode)
	if err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}
	transactionType, err := s.validator.ParseType(req.TransactionType)
	if err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}
	if err := s.validator.ValidateAmount(req.TransactionAmount, mode); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	account, err := s.reader.GetAccount(ctx, req.AccountNumber, credential)
	if err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("failed to process transaction", err.Error()), err
	}

	if account.Status != domain.AccountStatusActive {
		err := domain.ErrAccountNotActive
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}
	if err := s.validator.ValidateDebit(transactionType, req.TransactionAmount, account.Balance); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("Insufficient funds", err.Error()), err
	}

	newBalance := NewBalance(transactionType, account.Balance, req.TransactionAmount)
	occurredAt := time.Now().UTC()

	record := domain.Transaction{
		AccountNumber: req.AccountNumber,
		Amount:        req.TransactionAmount,
		Mode:          mode,
		Type:          transactionType,
		OccurredAt:    occurredAt,
		Status:        domain.TransactionStatusSucceeded,
	}

	// From here the request has been attempted against the account. The write and
	// the record run on a detached context so caller cancellation cannot skip the
	// audit record.
	detached := context.WithoutCancel(ctx)

	if writeErr := s.writer.UpdateBalance(detached, req.AccountNumber, newBalance, occurredAt, credential); writeErr != nil {
		record.Status = domain.TransactionStatusFailed
		if _, recordErr := s.transactionRepo.Insert(detached, record); recordErr != nil {
			// The recording problem must not mask the write outcome.
			logger.Error("transaction service failed to record failed transaction", recordErr, logger.Fields{
				"accountNumber": req.AccountNumber,
			})
		}
		logger.Error("transaction service balance write failed", writeErr, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.ErrorResponse[models.TransactionResponse]("Transaction failed", "Failed to update account balance"),
			fmt.Errorf("%w: %v", domain.ErrTransactionFailed, writeErr)
	}

	stored, recordErr := s.transactionRepo.Insert(detached, record)
	if recordErr != nil {
		// The balance moved but the audit insert failed. Success must not be
		// reported without a durable record.
		logger.Error("transaction service balance updated but recording failed", recordErr, logger.Fields{
			"accountNumber":  req.AccountNumber,
			"updatedBalance": newBalance.StringFixed(2),
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to process transaction", "Balance updated but the transaction could not be recorded"),
			fmt.Errorf("record transaction after balance update: %w", recordErr)
	}

	response := models.MapTransactionToResponse(stored)
	response.UpdatedBalance = newBalance.StringFixed(2)

	logger.Info("transaction service process success", logger.Fields{
		"transactionId": stored.TransactionID,
		"accountNumber": stored.AccountNumber,
		"status":        stored.Status,
	})

	return commons.SuccessResponse("Transaction successful", response), nil
}

func (s *TransactionService) ListRecent(ctx context.Context, accountNumber int64, count int) (commons.Response[[]models.TransactionResponse], error) {
	transactions, err := s.transactionRepo.ListRecent(ctx, accountNumber, count)
	if err != nil {
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to fetch transactions", "Unable to fetch transactions right now"), err
	}

	return commons.SuccessResponse("Transactions fetched", mapTransactions(transactions)), nil
}

func (s *TransactionService) ListByDateRange(ctx context.Context, accountNumber int64, fromDate *time.Time, toDate *time.Time) (commons.Response[[]models.TransactionResponse], error) {
	transactions, err := s.transactionRepo.ListByDateRange(ctx, accountNumber, fromDate, toDate)
	if err != nil {
		return commons.ErrorResponse[[]models.TransactionResponse]("failed to fetch transactions", "Unable to fetch transactions right now"), err
	}

	return commons.SuccessResponse("Transactions fetched", mapTransactions(transactions)), nil
}

func mapTransactions(transactions []domain.Transaction) []models.TransactionResponse {
	out := make([]models.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		out = append(out, models.MapTransactionToResponse(transaction))
	}
	return out
}
