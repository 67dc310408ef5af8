package domain_test

import (
	"errors"
	"testing"

	"github.com/vivek1125/banking-transaction-service/internal/domain"
)

func TestParseTransactionModeKnownTokens(t *testing.T) {
	cases := map[string]domain.TransactionMode{
		"ATM":         domain.TransactionModeATM,
		"upi":         domain.TransactionModeUPI,
		"netbanking":  domain.TransactionModeNetBanking,
		"NETBANKING":  domain.TransactionModeNetBanking,
		" branch ":    domain.TransactionModeBranch,
		"NetBanking ": domain.TransactionModeNetBanking,
	}
	for token, want := range cases {
		got, err := domain.ParseTransactionMode(token)
		if err != nil {
			t.Fatalf("ParseTransactionMode(%q) err=%v", token, err)
		}
		if got != want {
			t.Fatalf("ParseTransactionMode(%q)=%q want=%q", token, got, want)
		}
	}
}

func TestParseTransactionModeUnknownToken(t *testing.T) {
	if _, err := domain.ParseTransactionMode("cheque"); !errors.Is(err, domain.ErrInvalidMode) {
		t.Fatalf("want ErrInvalidMode, got %v", err)
	}
	if _, err := domain.ParseTransactionMode(""); !errors.Is(err, domain.ErrInvalidMode) {
		t.Fatalf("want ErrInvalidMode for empty token, got %v", err)
	}
}

func TestParseTransactionType(t *testing.T) {
	if got, err := domain.ParseTransactionType("Credit"); err != nil || got != domain.TransactionTypeCredit {
		t.Fatalf("got=%q err=%v", got, err)
	}
	if got, err := domain.ParseTransactionType("debit"); err != nil || got != domain.TransactionTypeDebit {
		t.Fatalf("got=%q err=%v", got, err)
	}
	if _, err := domain.ParseTransactionType("refund"); !errors.Is(err, domain.ErrInvalidType) {
		t.Fatalf("want ErrInvalidType, got %v", err)
	}
}
