package accountclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vivek1125/banking-transaction-service/internal/domain"
	"github.com/vivek1125/banking-transaction-service/internal/logger"
)

// Client talks to the remote Account service. The caller's bearer credential is
// forwarded unchanged on every request; it is never inspected, cached or refreshed.
// There are no retries here: remote failures surface to the caller as typed errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type accountResponse struct {
	AccountNumber  int64           `json:"accountNumber"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
	Status         string          `json:"status"`
	UpdatedOn      time.Time       `json:"accUpdateDateTime"`
}

type updateBalanceRequest struct {
	NewBalance      decimal.Decimal `json:"newBalance"`
	BalanceUpdateOn time.Time       `json:"balanceUpdateOn"`
}

func (c *Client) GetAccount(ctx context.Context, accountNumber int64, credential string) (domain.Account, error) {
	url := fmt.Sprintf("%s/api/account/GetAccountByAccountNumber?accountNumber=%d", c.baseURL, accountNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Account{}, fmt.Errorf("build account lookup request: %w", err)
	}
	setHeaders(req, credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("account client lookup request failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.Account{}, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("account client lookup unexpected status", nil, logger.Fields{
			"accountNumber": accountNumber,
			"status":        resp.StatusCode,
		})
		return domain.Account{}, fmt.Errorf("%w: account lookup returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%w: read account lookup response: %v", domain.ErrUpstreamUnavailable, err)
	}

	var payload accountResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Account{}, fmt.Errorf("%w: decode account lookup response: %v", domain.ErrUpstreamUnavailable, err)
	}

	return domain.Account{
		AccountNumber: payload.AccountNumber,
		Balance:       payload.AccountBalance,
		Status:        parseAccountStatus(payload.Status),
		UpdatedAt:     payload.UpdatedOn,
	}, nil
}

func (c *Client) UpdateBalance(ctx context.Context, accountNumber int64, newBalance decimal.Decimal, occurredAt time.Time, credential string) error {
	url := fmt.Sprintf("%s/api/account/UpdateBalance?accountNumber=%d", c.baseURL, accountNumber)

	bodyBytes, err := json.Marshal(updateBalanceRequest{
		NewBalance:      newBalance,
		BalanceUpdateOn: occurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode balance update request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return fmt.Errorf("build balance update request: %w", err)
	}
	setHeaders(req, credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("account client balance update request failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("account client balance update rejected", nil, logger.Fields{
			"accountNumber": accountNumber,
			"status":        resp.StatusCode,
		})
		return fmt.Errorf("balance update returned status %d", resp.StatusCode)
	}

	return nil
}

func setHeaders(req *http.Request, credential string) {
	req.Header.Set("Content-Type", "application/json")
	token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(credential), "Bearer "))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func parseAccountStatus(raw string) domain.AccountStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(domain.AccountStatusActive):
		return domain.AccountStatusActive
	case string(domain.AccountStatusFrozen):
		return domain.AccountStatusFrozen
	case string(domain.AccountStatusClosed):
		return domain.AccountStatusClosed
	default:
		// The remote service only emits the three known values; anything else is
		// treated as not mutable.
		return domain.AccountStatusFrozen
	}
}
