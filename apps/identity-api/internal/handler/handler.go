// Package handler はHTTPリクエストハンドラーを提供する。
package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/usecase"
	"github.com/astrixforge/Device-Masker-sub000/pkg/httputil"
	"github.com/astrixforge/Device-Masker-sub000/pkg/logging"
)

// TraceIDKey はコンテキストにTraceIDを格納するキー。
const TraceIDKey = "trace_id"

// HealthChecker は依存サービスの疎通を確認する関数。
type HealthChecker func(ctx context.Context) bool

// Handler はIdentity APIのハンドラー。
type Handler struct {
	identity usecase.IdentityUseCaseInterface
	profile  usecase.ProfileUseCaseInterface
	healthy  HealthChecker
}

// NewHandler は新しいHandlerを生成する。healthyがnilの場合は常に正常とみなす。
func NewHandler(
	identity usecase.IdentityUseCaseInterface,
	profile usecase.ProfileUseCaseInterface,
	healthy HealthChecker,
) *Handler {
	return &Handler{
		identity: identity,
		profile:  profile,
		healthy:  healthy,
	}
}

// traceID はミドルウェアが設定したトレースIDを返す。
func traceID(c *gin.Context) string {
	v, _ := c.Get(TraceIDKey)
	s, _ := v.(string)
	return s
}

// handleError はエラーレスポンスを処理する。
func (h *Handler) handleError(c *gin.Context, err error, attrs ...any) {
	tid := traceID(c)

	var problemErr *usecase.ProblemError
	if errors.As(err, &problemErr) {
		args := []any{
			logging.WithTraceID(tid),
			logging.WithEventID(problemErr.EventID),
			logging.WithHTTPStatus(problemErr.Status),
		}
		if problemErr.Err != nil {
			args = append(args, logging.WithError(problemErr.Err))
		}
		slog.Log(c.Request.Context(), problemErr.LogLevel(), problemErr.Message, append(args, attrs...)...)
		httputil.WriteError(c, problemErr.ToProblemDetail())
		return
	}

	// 予期しないエラー
	args := []any{
		logging.WithTraceID(tid),
		logging.WithEventID("API_ERR"),
		logging.WithError(err),
	}
	slog.Error("unexpected error", append(args, attrs...)...)
	httputil.WriteFromError(c, err)
}
