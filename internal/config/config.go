package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret          string
	Issuer             string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	ServerPort         string
	ReportingCurrency  string
	RatesFile          string
	FeedPollSeconds    int
	AuditRetentionDays int
	IsProduction       bool
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "worklane")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "worklane")
	ServerPort = getEnv("SERVER_PORT", "8080")
	ReportingCurrency = getEnv("REPORTING_CURRENCY", "USD")
	RatesFile = getEnv("CURRENCY_RATES_FILE", "")
	FeedPollSeconds = getEnvInt("FEED_POLL_SECONDS", 5)
	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 30)
	IsProduction = getEnv("APP_ENV", "development") == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
