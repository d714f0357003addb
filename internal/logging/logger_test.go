package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New()
	logger.SetLevel(level)
	logger.SetOutput(&buf)
	return logger, &buf
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug allowed at debug", LevelDebug, LevelDebug, true},
		{"info allowed at debug", LevelDebug, LevelInfo, true},
		{"warn allowed at debug", LevelDebug, LevelWarn, true},
		{"error allowed at debug", LevelDebug, LevelError, true},
		{"debug blocked at info", LevelInfo, LevelDebug, false},
		{"info allowed at info", LevelInfo, LevelInfo, true},
		{"warn allowed at info", LevelInfo, LevelWarn, true},
		{"debug blocked at warn", LevelWarn, LevelDebug, false},
		{"info blocked at warn", LevelWarn, LevelInfo, false},
		{"warn allowed at warn", LevelWarn, LevelWarn, true},
		{"error allowed at warn", LevelWarn, LevelError, true},
		{"warn blocked at error", LevelError, LevelWarn, false},
		{"error allowed at error", LevelError, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(tt.minLevel)

			switch tt.logLevel {
			case LevelDebug:
				logger.Debug("test message")
			case LevelInfo:
				logger.Info("test message")
			case LevelWarn:
				logger.Warn("test message")
			case LevelError:
				logger.Error("test message")
			}

			if tt.shouldLog {
				assert.Contains(t, buf.String(), "test message")
			} else {
				assert.Empty(t, buf.String(), "expected no log output")
			}
		})
	}
}

func TestLoggerLevelLabels(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	output := buf.String()
	for _, label := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		assert.Contains(t, output, label)
	}
}

func TestLoggerWith(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	child := logger.With("step", "sdk_install")
	child.Warn("something happened")

	output := buf.String()
	assert.Contains(t, output, "something happened")
	assert.Contains(t, output, `"step": "sdk_install"`)
}

func TestLoggerWithFields(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	child := logger.WithFields(map[string]interface{}{
		"backend": "file",
		"key":     "completed_steps",
	})
	child.Error("write failed")

	output := buf.String()
	assert.Contains(t, output, "write failed")
	assert.Contains(t, output, `"backend": "file"`)
	assert.Contains(t, output, `"key": "completed_steps"`)
}

func TestLoggerInlineKeyVals(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.Warn("failed to save", "error", errors.New("disk full"), "attempt", 3)

	output := buf.String()
	assert.Contains(t, output, "failed to save")
	assert.Contains(t, output, `"error": "disk full"`)
	assert.Contains(t, output, `"attempt": 3`)
}

func TestLoggerChainingPreservesFields(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	opLogger := logger.With("component", "store").With("op", "write")
	opLogger.Info("starting")

	output := buf.String()
	assert.Contains(t, output, `"component": "store"`)
	assert.Contains(t, output, `"op": "write"`)
}

func TestLoggerOriginalUnmodified(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	_ = logger.With("component", "store")
	logger.Info("original logger")

	assert.NotContains(t, buf.String(), "component")
}

func TestLoggerChildSharesLevel(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)
	child := logger.With("component", "store")

	child.Info("hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(LevelDebug)
	child.Info("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(LevelWarn)
	defer SetOutput(&bytes.Buffer{})

	Debug("debug message")
	assert.Empty(t, buf.String())

	Warn("warn message")
	assert.Contains(t, buf.String(), "warn message")

	buf.Reset()

	With("component", "test").Error("error message")
	assert.Contains(t, buf.String(), `"component": "test"`)
	assert.Same(t, defaultLogger, Default())
}
