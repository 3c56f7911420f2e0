package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// CatalogFile optionally points at a YAML file overriding the built-in
	// order/FAQ seed data. Empty means "use the seed".
	CatalogFile string

	LogLevel string

	// HistoryLimit caps how many messages a timeline request returns by
	// default. 0 means unlimited.
	HistoryLimit int
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// Load reads all env vars and builds the config
func Load() *Config {
	return &Config{
		Port:         getEnv("ORDERDESK_PORT", "8080"),
		CatalogFile:  getEnv("ORDERDESK_CATALOG_FILE", ""),
		LogLevel:     getEnv("ORDERDESK_LOG_LEVEL", "info"),
		HistoryLimit: getIntEnv("ORDERDESK_HISTORY_LIMIT", 0),
	}
}
