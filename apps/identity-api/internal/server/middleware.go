package server

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/handler"
	"github.com/astrixforge/Device-Masker-sub000/pkg/httputil"
	"github.com/astrixforge/Device-Masker-sub000/pkg/logging"
)

const traceIDHeader = "X-Trace-ID"

// TraceIDMiddleware はX-Trace-IDヘッダからトレースIDを取得する。
// ヘッダがない場合はUUIDを採番し、レスポンスヘッダにも設定する。
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set(handler.TraceIDKey, traceID)
		c.Header(traceIDHeader, traceID)
		c.Next()
	}
}

// LoggingMiddleware はリクエストログを出力する。
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		traceID, _ := c.Get(handler.TraceIDKey)
		slog.Info("request completed",
			logging.WithTraceID(fmt.Sprint(traceID)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			logging.WithSrcIP(c.ClientIP()),
			logging.WithHTTPStatus(c.Writer.Status()),
			logging.WithLatency(time.Since(start).Milliseconds()),
		)
	}
}

// RecoveryMiddleware はパニックからの復旧を行う。
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				traceID, _ := c.Get(handler.TraceIDKey)
				slog.Error("panic recovered",
					logging.WithTraceID(fmt.Sprint(traceID)),
					logging.WithEventID("PANIC_RECOVERED"),
					slog.Any("error", err),
				)
				httputil.AbortWithError(c, httputil.InternalServerError("An unexpected error occurred"))
			}
		}()
		c.Next()
	}
}
