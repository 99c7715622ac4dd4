package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marketintel/researcher/pkg/research"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)
	api := r.Group("/api")
	{
		api.POST("/research", h.runResearch)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// runResearch executes a full research run synchronously. A run that
// cannot find any sources on its first iteration is the caller's problem
// (nothing to research); everything else fatal is ours.
func (h *Handler) runResearch(c *gin.Context) {
	var req research.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.RunResearch(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, research.ErrNoSources) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
