package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "upper case level", level: "WARN", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level defaults to info", level: "invalid", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterWithOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapterWithOutput("info", "json", &buf)
	logger.Info("entry added", Field{Key: FieldEntryID, Value: 42})

	assert.Contains(t, buf.String(), `"msg":"entry added"`)
	assert.Contains(t, buf.String(), `"entry_id":42`)
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	t.Run("with existing logger", func(t *testing.T) {
		existingLogger := logrus.New()
		logger := NewLogrusAdapterFromLogger(existingLogger)
		adapter, ok := logger.(*LogrusAdapter)
		require.True(t, ok)
		assert.Equal(t, existingLogger, adapter.logger)
	})

	t.Run("with nil logger creates new one", func(t *testing.T) {
		logger := NewLogrusAdapterFromLogger(nil)
		adapter, ok := logger.(*LogrusAdapter)
		require.True(t, ok)
		assert.NotNil(t, adapter.logger)
	})
}

func newBufferedAdapter(level logrus.Level) (Logger, *bytes.Buffer) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(logrusLogger), &buf
}

func TestLogrusAdapter_LoggingMethods(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...Field)
		message string
	}{
		{name: "Debug", logFunc: func(l Logger, msg string, f ...Field) { l.Debug(msg, f...) }, message: "debug message"},
		{name: "Info", logFunc: func(l Logger, msg string, f ...Field) { l.Info(msg, f...) }, message: "info message"},
		{name: "Warn", logFunc: func(l Logger, msg string, f ...Field) { l.Warn(msg, f...) }, message: "warn message"},
		{name: "Error", logFunc: func(l Logger, msg string, f ...Field) { l.Error(msg, f...) }, message: "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedAdapter(logrus.DebugLevel)
			tt.logFunc(logger, tt.message, Field{Key: FieldMonth, Value: "2024-05"})

			assert.Contains(t, buf.String(), tt.message)
			assert.Contains(t, buf.String(), "month=2024-05")
		})
	}
}

func TestLogrusAdapter_ChainedCalls(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.
		WithField(FieldBackend, "sqlite").
		WithFields(Field{Key: FieldKey, Value: "kakeibo_budget"}).
		WithError(errors.New("disk full")).
		Error("write failed")

	output := buf.String()
	assert.Contains(t, output, "write failed")
	assert.Contains(t, output, "backend=sqlite")
	assert.Contains(t, output, "key=kakeibo_budget")
	assert.Contains(t, output, "disk full")
}

func TestConvertFields(t *testing.T) {
	logrusFields := convertFields([]Field{
		{Key: "key1", Value: "value1"},
		{Key: "key2", Value: 42},
	})
	assert.Len(t, logrusFields, 2)
	assert.Equal(t, 42, logrusFields["key2"])
	assert.Len(t, convertFields(nil), 0)
}

func TestMockLogger_SharedSink(t *testing.T) {
	mock := NewMockLogger()
	mock.WithField(FieldEntryID, 1).Warn("entry not found")
	mock.WithError(errors.New("boom")).Error("save failed")

	require.Len(t, mock.GetEntries(), 2)
	assert.True(t, mock.HasEntry("WARN", "entry not found"))
	errs := mock.GetEntriesByLevel("ERROR")
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0].Error, "boom")
}

func TestLoggerImplementations(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
