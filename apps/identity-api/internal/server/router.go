package server

import (
	"github.com/gin-gonic/gin"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/handler"
)

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, h *handler.Handler) {
	// ヘルスチェック
	engine.GET("/health", h.HandleHealth)

	// API v1
	v1 := engine.Group("/api/v1")
	{
		// 生成
		v1.GET("/generate/:type", h.HandleGenerate)
		v1.GET("/bundles/:group", h.HandleBundle)

		// 参照データ
		v1.GET("/carriers", h.HandleCarriers)
		v1.GET("/carriers/:mccmnc", h.HandleCarrier)
		v1.GET("/countries/:iso", h.HandleCountry)
		v1.GET("/presets/:id", h.HandlePreset)

		// プロファイル
		profiles := v1.Group("/profiles")
		profiles.POST("", h.HandleCreateProfile)
		profiles.GET("", h.HandleListProfiles)
		profiles.GET("/:id", h.HandleGetProfile)
		profiles.DELETE("/:id", h.HandleDeleteProfile)
		profiles.GET("/:id/values", h.HandleValues)
		profiles.POST("/:id/regenerate/:type", h.HandleRegenerateField)
		profiles.POST("/:id/groups/:group/regenerate", h.HandleRegenerateGroup)
		profiles.PUT("/:id/identifiers/:type/enabled", h.HandleSetEnabled)
	}
}
