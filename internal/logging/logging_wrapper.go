package logging

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// LoggingWrapper gives every request an id, echoed in the X-Request-ID header, and a LogData
// carried in the request context. It logs the start of the request and its outcome.
func LoggingWrapper(log *logrus.Logger, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := uuid.Must(uuid.NewV4()).String()
		loggingName := req.Method + " " + req.URL.Path

		w.Header().Set(RequestIDHeader, requestID)

		logData := NewLogData(log)
		logData.AddData("requestID", requestID)
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		ctx := WithRequestID(WithLogData(req.Context(), logData), requestID)
		log.WithField("requestID", requestID).Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		metrics := httpsnoop.CaptureMetrics(handler, w, req.WithContext(ctx))
		endTimer()

		logData.AddData("status", metrics.Code)
		logData.AddData("bytesWritten", metrics.Written)

		switch {
		case metrics.Code >= http.StatusInternalServerError:
			logData.Log().Errorf("Handler.%v.Error", loggingName)
		case metrics.Code >= http.StatusBadRequest:
			logData.Log().Warnf("Handler.%v.Error", loggingName)
		default:
			logData.Log().Infof("Handler.%v.Complete", loggingName)
		}
	})
}
