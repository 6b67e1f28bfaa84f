package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("json с уровнем warn", func(t *testing.T) {
		log, err := New("warn", "json")

		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zap.InfoLevel))
		assert.True(t, log.Core().Enabled(zap.WarnLevel))
	})

	t.Run("console", func(t *testing.T) {
		log, err := New("debug", "console")

		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zap.DebugLevel))
	})

	t.Run("ошибка: неизвестный уровень", func(t *testing.T) {
		_, err := New("loud", "json")
		assert.Error(t, err)
	})

	t.Run("ошибка: неизвестный формат", func(t *testing.T) {
		_, err := New("info", "xml")
		assert.Error(t, err)
	})
}
