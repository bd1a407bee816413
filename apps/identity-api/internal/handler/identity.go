package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/dto"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/usecase"
	"github.com/astrixforge/Device-Masker-sub000/pkg/logging"
)

// HandleGenerate はGET /api/v1/generate/:type のハンドラー。
func (h *Handler) HandleGenerate(c *gin.Context) {
	var q dto.ReferenceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.handleError(c, usecase.ErrInvalidRequestBody, logging.WithError(err))
		return
	}

	resp, err := h.identity.Generate(c.Param("type"), &q)
	if err != nil {
		h.handleError(c, err, logging.WithSpoofType(c.Param("type")))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleBundle はGET /api/v1/bundles/:group のハンドラー。
func (h *Handler) HandleBundle(c *gin.Context) {
	var q dto.ReferenceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.handleError(c, usecase.ErrInvalidRequestBody, logging.WithError(err))
		return
	}

	resp, err := h.identity.GenerateBundle(c.Param("group"), &q)
	if err != nil {
		h.handleError(c, err, logging.WithGroup(c.Param("group")))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleCarriers はGET /api/v1/carriers のハンドラー。
func (h *Handler) HandleCarriers(c *gin.Context) {
	var q dto.CarrierQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.handleError(c, usecase.ErrInvalidRequestBody, logging.WithError(err))
		return
	}

	resp, err := h.identity.Carriers(&q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleCarrier はGET /api/v1/carriers/:mccmnc のハンドラー。
func (h *Handler) HandleCarrier(c *gin.Context) {
	resp, err := h.identity.Carrier(c.Param("mccmnc"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleCountry はGET /api/v1/countries/:iso のハンドラー。
func (h *Handler) HandleCountry(c *gin.Context) {
	resp, err := h.identity.Country(c.Param("iso"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandlePreset はGET /api/v1/presets/:id のハンドラー。
func (h *Handler) HandlePreset(c *gin.Context) {
	resp, err := h.identity.Preset(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
