package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	SimLatency        time.Duration
	LowStockThreshold int
	LogFile           string
}

func Load() Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	latency := 500 * time.Millisecond
	if v := os.Getenv("SIM_LATENCY_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			latency = time.Duration(ms) * time.Millisecond
		}
	}
	lowStock := 5
	if v := os.Getenv("LOW_STOCK_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			lowStock = n
		}
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./shopdesk.log"
	}

	cfg := Config{Port: port, SimLatency: latency, LowStockThreshold: lowStock, LogFile: logFile}
	log.Printf("[config] PORT=%s SIM_LATENCY_MS=%d LOW_STOCK_THRESHOLD=%d LOG_FILE=%s",
		cfg.Port, cfg.SimLatency.Milliseconds(), cfg.LowStockThreshold, cfg.LogFile)
	return cfg
}
