package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger(t *testing.T) {
	l := NoopLogger{}

	// All methods must be callable without panic.
	l.Debug("test")
	l.Info("test")
	l.Warn("test")
	l.Error("test")
	l.Debugf("test %s", "debug")
	l.Infof("test %s", "info")
	l.Warnf("test %s", "warn")
	l.Errorf("test %s", "error")
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	l := &SlogLogger{logger: slog.New(handler)}

	tests := []struct {
		name     string
		logFunc  func()
		expected string
		level    string
	}{
		{"Debug", func() { l.Debug("debug message", "key", "val") }, "debug message", "DEBUG"},
		{"Info", func() { l.Info("info message") }, "info message", "INFO"},
		{"Warn", func() { l.Warn("warn message") }, "warn message", "WARN"},
		{"Error", func() { l.Error("error message") }, "error message", "ERROR"},
		{"Debugf", func() { l.Debugf("debug %s", "formatted") }, "debug formatted", "DEBUG"},
		{"Infof", func() { l.Infof("info %s", "formatted") }, "info formatted", "INFO"},
		{"Warnf", func() { l.Warnf("warn %s", "formatted") }, "warn formatted", "WARN"},
		{"Errorf", func() { l.Errorf("error %s", "formatted") }, "error formatted", "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc()

			output := buf.String()
			assert.Contains(t, output, tt.expected)
			assert.Contains(t, output, tt.level)
		})
	}
}

func TestNewDefaultLogger(t *testing.T) {
	debugLogger, ok := NewDefaultLogger(true).(*SlogLogger)
	assert.True(t, ok)
	assert.True(t, debugLogger.logger.Enabled(nil, slog.LevelDebug))

	infoLogger, ok := NewDefaultLogger(false).(*SlogLogger)
	assert.True(t, ok)
	assert.False(t, infoLogger.logger.Enabled(nil, slog.LevelDebug))
	assert.True(t, infoLogger.logger.Enabled(nil, slog.LevelInfo))
}

func TestSprintf(t *testing.T) {
	assert.Equal(t, "plain", sprintf("plain"))
	assert.Equal(t, "got 3 items", sprintf("got %d items", 3))
}
