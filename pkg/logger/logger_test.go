package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"kentkonut/config"
)

func TestFieldsToZapFields(t *testing.T) {
	fields := fieldsToZapFields("id", 42, errors.New("boom"), "dangling")

	require.Len(t, fields, 2)
	assert.Equal(t, "id", fields[0].Key)
	assert.Equal(t, "error", fields[1].Key)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("whatever"))
}

func TestNewLoggerWithConfig_WritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	l := NewLoggerWithConfig("info", config.LogFileConfig{
		Enabled:    true,
		Path:       filepath.Join(dir, "app.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})

	l.Info("hello", "module", "test")
	l.Close()

	data, err := os.ReadFile(dailyFileName(dir, time.Now()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"module":"test"`)
}
