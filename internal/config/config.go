package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const defaultPort = "8084"
const defaultConnectionString = "host=localhost port=5432 dbname=transaction_db user=postgres password=postgres sslmode=disable"
const defaultAccountServiceURL = "http://localhost:8082"
const defaultAccountServiceTimeout = 30 * time.Second
const defaultATMTransactionLimit = 100000

type Config struct {
	Port                  string
	DatabaseDSN           string
	MigrationsDir         string
	MemoryStore           bool
	AccountServiceURL     string
	AccountServiceTimeout time.Duration
	ATMTransactionLimit   decimal.Decimal
	ChannelID             string
	ChannelKeyHash        string
}

func Load() (Config, error) {
	// A missing .env is fine; production relies on real environment variables.
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = defaultPort
	}

	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = filepath.Join("migrations")
	}

	memoryStore := strings.EqualFold(strings.TrimSpace(os.Getenv("MEMORY_STORE")), "true")

	accountServiceURL := strings.TrimSpace(os.Getenv("ACCOUNT_SERVICE_URL"))
	if accountServiceURL == "" {
		accountServiceURL = defaultAccountServiceURL
	}
	accountServiceURL = strings.TrimRight(accountServiceURL, "/")

	timeout := defaultAccountServiceTimeout
	if raw := strings.TrimSpace(os.Getenv("ACCOUNT_SERVICE_TIMEOUT_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("invalid ACCOUNT_SERVICE_TIMEOUT_SECONDS %q", raw)
		}
		timeout = time.Duration(seconds) * time.Second
	}

	atmLimit := decimal.NewFromInt(defaultATMTransactionLimit)
	if raw := strings.TrimSpace(os.Getenv("ATM_TRANSACTION_LIMIT")); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.LessThanOrEqual(decimal.Zero) {
			return Config{}, fmt.Errorf("invalid ATM_TRANSACTION_LIMIT %q", raw)
		}
		atmLimit = parsed
	}

	return Config{
		Port:                  port,
		DatabaseDSN:           conn,
		MigrationsDir:         migrationsDir,
		MemoryStore:           memoryStore,
		AccountServiceURL:     accountServiceURL,
		AccountServiceTimeout: timeout,
		ATMTransactionLimit:   atmLimit,
		ChannelID:             strings.TrimSpace(os.Getenv("CHANNEL_ID")),
		ChannelKeyHash:        strings.TrimSpace(os.Getenv("CHANNEL_KEY_HASH")),
	}, nil
}
