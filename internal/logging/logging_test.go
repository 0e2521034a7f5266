package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging("debug")
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, SetupLogging("warn").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("chatty").Level)
}

func TestLoggingWrapper_Complete(t *testing.T) {
	logger, buf := newBufferedLogger()

	var seenRequestID string
	handler := LoggingWrapper(logger, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		seenRequestID = RequestID(req.Context())
		GetLogData(req.Context()).AddData("propertyID", "p-1")
		w.WriteHeader(http.StatusCreated)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/properties", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, seenRequestID)
	assert.Equal(t, seenRequestID, w.Header().Get(RequestIDHeader))

	lines := logLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Handler.POST /properties.Start", lines[0]["msg"])
	assert.Equal(t, "Handler.POST /properties.Complete", lines[1]["msg"])
	assert.Equal(t, "info", lines[1]["loglevel"])
	assert.Equal(t, "p-1", lines[1]["propertyID"])
	assert.Equal(t, float64(http.StatusCreated), lines[1]["status"])
}

func TestLoggingWrapper_RecordsTimings(t *testing.T) {
	logger, buf := newBufferedLogger()

	handler := LoggingWrapper(logger, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		stop := StartTiming(req.Context(), "updateTransactionMs")
		stop()
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/transactions/t-1", nil))

	lines := logLines(t, buf)
	require.Len(t, lines, 2)
	assert.IsType(t, float64(0), lines[1]["updateTransactionMs"])
}

func TestLoggingWrapper_StatusLevels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusNotFound, "warning"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		logger, buf := newBufferedLogger()
		handler := LoggingWrapper(logger, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			GetLogData(req.Context()).AddError(errors.New("boom"))
			w.WriteHeader(tt.status)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/credits/x", nil))

		lines := logLines(t, buf)
		require.Len(t, lines, 2)
		assert.Equal(t, tt.level, lines[1]["loglevel"])
		assert.Equal(t, "Handler.GET /credits/x.Error", lines[1]["msg"])
		assert.Equal(t, "boom", lines[1]["error"])
	}
}

func TestLogData_FirstErrorWins(t *testing.T) {
	logData := NewLogData(SetupLogging("info"))
	first := errors.New("first")

	logData.AddError(first)
	logData.AddError(errors.New("second"))

	assert.Equal(t, first, logData.Error())
}

func TestContextHelpers_WithoutLogData(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, GetLogData(ctx))
	assert.Equal(t, "", RequestID(ctx))
	StartTiming(ctx, "noopMs")()
	AddData(ctx, "key", "value")
}
