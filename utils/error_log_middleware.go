package utils

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

type errorLogWriter struct {
	gin.ResponseWriter
	gc     *gin.Context
	logger *slog.Logger
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		w.logger.Debug("error response", slog.Int("status", status), slog.String("body", string(b)), slog.String("request_id", RequestIDFrom(w.gc)))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware logs the body of every error response. It doesn't work with GZIP
func ErrorLogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer, logger: logger}
		c.Writer = blw
		c.Next()
	}
}
