package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Symbols offered when SUPPORTED_SYMBOLS is not set.
var defaultSymbols = []string{
	"BTCUSDT", "ETHUSDT", "BNBUSDT", "ADAUSDT", "DOGEUSDT",
	"XRPUSDT", "DOTUSDT", "LINKUSDT", "LTCUSDT", "BCHUSDT",
}

const (
	defaultBinanceURL = "https://testnet.binancefuture.com"
	defaultPort       = "5000"
)

type Config struct {
	Port string

	BinanceApiKey    string
	BinanceSecretKey string
	BinanceUrl       string

	SupportedSymbols []string

	TelegramApiToken string
	TelegramChatID   string

	DB *DB
}

type DB struct {
	Host     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

var ErrEnvNotFound = errors.New("err env not found")

func (a *App) loadConfig(confFileName string) error {
	var cfg Config

	// A missing .env file is fine when the environment is already set.
	_ = godotenv.Load(confFileName)

	var err error
	if cfg.BinanceApiKey, err = cfg.set("BINANCE_API_KEY"); err != nil {
		return err
	}

	if cfg.BinanceSecretKey, err = cfg.set("BINANCE_SECRET_KEY"); err != nil {
		return err
	}

	cfg.BinanceUrl = envOr("BINANCE_URL", defaultBinanceURL)
	cfg.Port = envOr("PORT", defaultPort)

	cfg.SupportedSymbols = defaultSymbols
	if raw := os.Getenv("SUPPORTED_SYMBOLS"); raw != "" {
		cfg.SupportedSymbols = strings.Split(raw, ",")
	}

	cfg.TelegramApiToken = os.Getenv("TELEGRAM_API_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")

	if os.Getenv("PG_HOST") != "" {
		var db DB

		if db.Host, err = cfg.set("PG_HOST"); err != nil {
			return err
		}

		if db.User, err = cfg.set("PG_USER"); err != nil {
			return err
		}

		if db.Password, err = cfg.set("PG_PASSWORD"); err != nil {
			return err
		}

		if db.DBName, err = cfg.set("PG_DBNAME"); err != nil {
			return err
		}

		db.SSLMode = envOr("PG_SSL_MODE", "disable")

		cfg.DB = &db
	}

	a.Config = &cfg

	return nil
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvNotFound, key)
	}

	return os.Getenv(key), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
