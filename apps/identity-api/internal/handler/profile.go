package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/dto"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/usecase"
	"github.com/astrixforge/Device-Masker-sub000/pkg/logging"
)

// HandleCreateProfile はPOST /api/v1/profiles のハンドラー。
func (h *Handler) HandleCreateProfile(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, usecase.ErrInvalidRequestBody, logging.WithError(err))
		return
	}

	resp, err := h.profile.Create(c.Request.Context(), traceID(c), &req)
	if err != nil {
		h.handleError(c, err, logging.WithProfileID(req.ID))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// HandleListProfiles はGET /api/v1/profiles のハンドラー。
func (h *Handler) HandleListProfiles(c *gin.Context) {
	resp, err := h.profile.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleGetProfile はGET /api/v1/profiles/:id のハンドラー。
func (h *Handler) HandleGetProfile(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.profile.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, logging.WithProfileID(id))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleDeleteProfile はDELETE /api/v1/profiles/:id のハンドラー。
func (h *Handler) HandleDeleteProfile(c *gin.Context) {
	id := c.Param("id")
	if err := h.profile.Delete(c.Request.Context(), traceID(c), id); err != nil {
		h.handleError(c, err, logging.WithProfileID(id))
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleRegenerateField はPOST /api/v1/profiles/:id/regenerate/:type のハンドラー。
func (h *Handler) HandleRegenerateField(c *gin.Context) {
	id, typ := c.Param("id"), c.Param("type")
	resp, err := h.profile.RegenerateField(c.Request.Context(), traceID(c), id, typ)
	if err != nil {
		h.handleError(c, err, logging.WithProfileID(id), logging.WithSpoofType(typ))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleRegenerateGroup はPOST /api/v1/profiles/:id/groups/:group/regenerate のハンドラー。
// ボディは省略可能で、指定された場合は参照オブジェクトの変更として扱う。
func (h *Handler) HandleRegenerateGroup(c *gin.Context) {
	id, group := c.Param("id"), c.Param("group")

	var ref *dto.ReferenceRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		var body dto.ReferenceRequest
		if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
			h.handleError(c, usecase.ErrInvalidRequestBody, logging.WithError(err))
			return
		}
		ref = &body
	}

	resp, err := h.profile.RegenerateGroup(c.Request.Context(), traceID(c), id, group, ref)
	if err != nil {
		h.handleError(c, err, logging.WithProfileID(id), logging.WithGroup(group))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleSetEnabled はPUT /api/v1/profiles/:id/identifiers/:type/enabled のハンドラー。
func (h *Handler) HandleSetEnabled(c *gin.Context) {
	id, typ := c.Param("id"), c.Param("type")

	var req dto.EnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, usecase.ErrInvalidRequestBody, logging.WithError(err))
		return
	}

	resp, err := h.profile.SetEnabled(c.Request.Context(), traceID(c), id, typ, *req.Enabled)
	if err != nil {
		h.handleError(c, err, logging.WithProfileID(id), logging.WithSpoofType(typ))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleValues はGET /api/v1/profiles/:id/values のハンドラー。
func (h *Handler) HandleValues(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.profile.Values(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, logging.WithProfileID(id))
		return
	}
	c.JSON(http.StatusOK, resp)
}
