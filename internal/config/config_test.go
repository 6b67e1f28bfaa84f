package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("значения по умолчанию", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("HTTP_READ_TIMEOUT", "")
		t.Setenv("DB_MIGRATE", "")

		cfg := Load()

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
		assert.False(t, cfg.Migrate)
		assert.Equal(t, "reports/catalog.yaml", cfg.Report.CatalogPath)
	})

	t.Run("переменные окружения", func(t *testing.T) {
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_MAX_OPEN_CONNS", "25")
		t.Setenv("HTTP_WRITE_TIMEOUT", "2m")
		t.Setenv("DB_MIGRATE", "true")
		t.Setenv("LOG_FORMAT", "console")

		cfg := Load()

		assert.Equal(t, "db", cfg.Database.Host)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 2*time.Minute, cfg.HTTP.WriteTimeout)
		assert.True(t, cfg.Migrate)
		assert.Equal(t, "console", cfg.Log.Format)
	})

	t.Run("некорректная длительность", func(t *testing.T) {
		t.Setenv("REPORT_REQUEST_TIMEOUT", "soon")

		cfg := Load()

		assert.Equal(t, 30*time.Second, cfg.Report.RequestTimeout)
	})
}
