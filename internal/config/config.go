package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Log      LogConfig
	Report   ReportConfig
	Migrate  bool
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
}

type HTTPConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// ReportConfig - параметры внешнего движка отчетов
type ReportConfig struct {
	EngineURL          string
	RequestTimeout     time.Duration
	BreakerMaxFailures int
	BreakerOpenTimeout time.Duration
	CatalogPath        string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "volunteer"),
			Password:     getEnv("DB_PASSWORD", "volunteer"),
			DBName:       getEnv("DB_NAME", "volunteer_app"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		},
		HTTP: HTTPConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Report: ReportConfig{
			EngineURL:          getEnv("REPORT_ENGINE_URL", "http://localhost:8090"),
			RequestTimeout:     getEnvDuration("REPORT_REQUEST_TIMEOUT", 30*time.Second),
			BreakerMaxFailures: getEnvInt("REPORT_BREAKER_MAX_FAILURES", 5),
			BreakerOpenTimeout: getEnvDuration("REPORT_BREAKER_OPEN_TIMEOUT", 30*time.Second),
			CatalogPath:        getEnv("REPORT_CATALOG_PATH", "reports/catalog.yaml"),
		},
		Migrate: getEnvBool("DB_MIGRATE", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

// getEnvDuration возвращает значение по умолчанию и для некорректной строки
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
