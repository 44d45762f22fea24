package main

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var defaultSymbols = []string{
	"BTCUSDT", "ETHUSDT", "BNBUSDT", "ADAUSDT", "DOGEUSDT",
	"XRPUSDT", "DOTUSDT", "LINKUSDT", "LTCUSDT", "BCHUSDT",
}

var orderTypes = []string{"MARKET", "LIMIT", "STOP", "STOP_MARKET"}

const (
	defaultServerURL    = "http://localhost:5000"
	defaultPollInterval = 10 * time.Second
	defaultHTTPTimeout  = 10 * time.Second
)

type Config struct {
	ServerURL    string
	PollInterval time.Duration
	Symbols      []string
}

func loadConfig(confFileName string) *Config {
	_ = godotenv.Load(confFileName)

	cfg := &Config{
		ServerURL:    defaultServerURL,
		PollInterval: defaultPollInterval,
		Symbols:      defaultSymbols,
	}

	if v := os.Getenv("DASHBOARD_URL"); v != "" {
		cfg.ServerURL = v
	}

	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.PollInterval = d
		}
	}

	if v := os.Getenv("SUPPORTED_SYMBOLS"); v != "" {
		cfg.Symbols = strings.Split(v, ",")
	}

	return cfg
}
