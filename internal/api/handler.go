package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/model/customerr"
	"max.ks1230/currconv/internal/model/popup"
)

type selectionHandler interface {
	HandleSelection(ctx context.Context, text string) (popup.Popup, error)
}

type convertRequest struct {
	Text string `json:"text" binding:"max=10000"`
}

type Handler struct {
	service selectionHandler
}

func NewHandler(service selectionHandler) *Handler {
	return &Handler{service: service}
}

// NewRouter wires the conversion, health and metrics endpoints.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/convert", h.Convert)
	}
	return r
}

// Convert answers with the popup for the posted text, or 204 when the text
// holds no currency amount.
func (h *Handler) Convert(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.service.HandleSelection(c.Request.Context(), req.Text)
	if errors.Is(err, customerr.ErrExtractionFailed) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		logger.Error("convert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
