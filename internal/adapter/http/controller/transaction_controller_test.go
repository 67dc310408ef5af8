package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/http/controller"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/http/middleware"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/http/models"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/http/router"
	"github.com/vivek1125/banking-transaction-service/internal/adapter/repository/memory"
	"github.com/vivek1125/banking-transaction-service/internal/commons"
	"github.com/vivek1125/banking-transaction-service/internal/domain"
	"github.com/vivek1125/banking-transaction-service/internal/usecase/services"
)

type stubTransactionService struct {
	processResponse commons.Response[models.TransactionResponse]
	processErr      error
	listResponse    commons.Response[[]models.TransactionResponse]
	listErr         error
	gotCredential   string
	gotCount        int
}

func (s *stubTransactionService) Process(_ context.Context, _ models.TransactionRequest, credential string) (commons.Response[models.TransactionResponse], error) {
	s.gotCredential = credential
	return s.processResponse, s.processErr
}

func (s *stubTransactionService) ListRecent(_ context.Context, _ int64, count int) (commons.Response[[]models.TransactionResponse], error) {
	s.gotCount = count
	return s.listResponse, s.listErr
}

func (s *stubTransactionService) ListByDateRange(_ context.Context, _ int64, _ *time.Time, _ *time.Time) (commons.Response[[]models.TransactionResponse], error) {
	return s.listResponse, s.listErr
}

func newMux(service *stubTransactionService) *http.ServeMux {
	return router.New(controller.NewTransactionController(service), middleware.BearerAuth())
}

func authedRequest(method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer opaque-token")
	return req
}

func TestProcessTransactionReturnsRecord(t *testing.T) {
	service := &stubTransactionService{
		processResponse: commons.SuccessResponse("Transaction successful", models.TransactionResponse{
			TransactionID:  "abc",
			AccountNumber:  900123,
			Status:         string(domain.TransactionStatusSucceeded),
			UpdatedBalance: "2000.00",
		}),
	}
	mux := newMux(service)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/process-transaction",
		`{"accountNumber":900123,"transactionAmount":"500","transactionMode":"UPI","transactionType":"Credit"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want=200 body=%s", rec.Code, rec.Body.String())
	}
	var response commons.Response[models.TransactionResponse]
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Data == nil || response.Data.UpdatedBalance != "2000.00" {
		t.Fatalf("unexpected response %+v", response)
	}
	if service.gotCredential != "opaque-token" {
		t.Fatalf("credential=%q want=opaque-token", service.gotCredential)
	}
}

type fixedAccountGateway struct {
	account domain.Account
}

func (g *fixedAccountGateway) GetAccount(_ context.Context, _ int64, _ string) (domain.Account, error) {
	return g.account, nil
}

func (g *fixedAccountGateway) UpdateBalance(_ context.Context, _ int64, _ decimal.Decimal, _ time.Time, _ string) error {
	return nil
}

// Wires the real service through the controller so the status mapping is
// exercised against the errors the service actually returns.
func newRealServiceMux(account domain.Account) *http.ServeMux {
	validator := services.NewTransactionValidator(decimal.NewFromInt(100000))
	gateway := &fixedAccountGateway{account: account}
	service := services.NewTransactionService(validator, gateway, gateway, memory.NewTransactionRepository())
	return router.New(controller.NewTransactionController(service), middleware.BearerAuth())
}

func TestProcessTransactionInactiveAccountReturns422(t *testing.T) {
	mux := newRealServiceMux(domain.Account{
		AccountNumber: 900123,
		Balance:       decimal.NewFromInt(1500),
		Status:        domain.AccountStatusFrozen,
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/process-transaction",
		`{"accountNumber":900123,"transactionAmount":"500","transactionMode":"UPI","transactionType":"Credit"}`))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d want=422 body=%s", rec.Code, rec.Body.String())
	}
}

func TestProcessTransactionInsufficientFundsReturns422(t *testing.T) {
	mux := newRealServiceMux(domain.Account{
		AccountNumber: 900123,
		Balance:       decimal.NewFromInt(300),
		Status:        domain.AccountStatusActive,
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/process-transaction",
		`{"accountNumber":900123,"transactionAmount":"500","transactionMode":"ATM","transactionType":"Debit"}`))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d want=422 body=%s", rec.Code, rec.Body.String())
	}
}

func TestProcessTransactionRequestValidationReturns400(t *testing.T) {
	mux := newRealServiceMux(domain.Account{
		AccountNumber: 900123,
		Balance:       decimal.NewFromInt(1500),
		Status:        domain.AccountStatusActive,
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/process-transaction",
		`{"accountNumber":0,"transactionAmount":"500","transactionMode":"UPI","transactionType":"Credit"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=400 body=%s", rec.Code, rec.Body.String())
	}
}

func TestProcessTransactionStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidRequest, http.StatusBadRequest},
		{domain.ErrInvalidMode, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrAmountExceedsChannelLimit, http.StatusBadRequest},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{domain.ErrAccountNotActive, http.StatusUnprocessableEntity},
		{domain.ErrUpstreamUnavailable, http.StatusBadGateway},
		{domain.ErrTransactionFailed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		service := &stubTransactionService{
			processResponse: commons.ErrorResponse[models.TransactionResponse]("failed to process transaction", tc.err.Error()),
			processErr:      tc.err,
		}
		mux := newMux(service)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/process-transaction",
			`{"accountNumber":900123,"transactionAmount":"500","transactionMode":"UPI","transactionType":"Credit"}`))

		if rec.Code != tc.status {
			t.Fatalf("err=%v status=%d want=%d", tc.err, rec.Code, tc.status)
		}
	}
}

func TestProcessTransactionRejectsWrongMethod(t *testing.T) {
	mux := newMux(&stubTransactionService{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodGet, "/process-transaction", ""))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d want=405", rec.Code)
	}
}

func TestProcessTransactionRejectsBadBody(t *testing.T) {
	mux := newMux(&stubTransactionService{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodPost, "/process-transaction", "{not json"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", rec.Code)
	}
}

func TestRecentTransactionsValidatesQuery(t *testing.T) {
	service := &stubTransactionService{
		listResponse: commons.SuccessResponse("Transactions fetched", []models.TransactionResponse{}),
	}
	mux := newMux(service)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodGet, "/recent-transactions?accountNumber=900123&count=0", ""))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("count=0 status=%d want=400", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodGet, "/recent-transactions?accountNumber=nope&count=5", ""))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad accountNumber status=%d want=400", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodGet, "/recent-transactions?accountNumber=900123&count=5", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want=200 body=%s", rec.Code, rec.Body.String())
	}
	if service.gotCount != 5 {
		t.Fatalf("count=%d want=5", service.gotCount)
	}
}

func TestTransactionsByDateRangeValidatesDates(t *testing.T) {
	service := &stubTransactionService{
		listResponse: commons.SuccessResponse("Transactions fetched", []models.TransactionResponse{}),
	}
	mux := newMux(service)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodGet, "/transactions-by-date-range?accountNumber=900123&fromDate=yesterday", ""))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad fromDate status=%d want=400", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, authedRequest(http.MethodGet, "/transactions-by-date-range?accountNumber=900123&fromDate=2026-03-01T00:00:00Z", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want=200 body=%s", rec.Code, rec.Body.String())
	}
}

func TestRoutesRequireBearerCredential(t *testing.T) {
	mux := newMux(&stubTransactionService{})

	for _, target := range []string{
		"/process-transaction",
		"/recent-transactions?accountNumber=1&count=1",
		"/transactions-by-date-range?accountNumber=1",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("target=%s status=%d want=401", target, rec.Code)
		}
	}
}

func TestHealthzIsOpen(t *testing.T) {
	mux := newMux(&stubTransactionService{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d want=200", rec.Code)
	}
}
