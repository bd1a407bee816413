package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/dto"
	"github.com/astrixforge/Device-Masker-sub000/pkg/logging"
)

// HandleHealth はGET /health のハンドラー。
// 生成系APIはValkeyなしで動作するため、Valkey障害時も503で状態だけを返す。
func (h *Handler) HandleHealth(c *gin.Context) {
	if h.healthy == nil || h.healthy(c.Request.Context()) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Valkey: "ok"})
		return
	}

	slog.Warn("health check failed",
		logging.WithTraceID(traceID(c)),
		logging.WithEventID("VALKEY_CONN_ERR"),
	)
	c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Valkey: "unavailable"})
}
