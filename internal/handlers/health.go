package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inguzdev/gitly/pkg/response"
)

const (
	serviceName    = "Gitly API"
	serviceVersion = "1.0.0"
)

type HealthHandler struct {
	logger *zap.Logger
}

func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{logger: logger}
}

// RegisterRoutes registers health routes on the provided router group.
func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.GetHealth)
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	h.logger.Debug("health check endpoint called")
	data := gin.H{
		"status":  "UP",
		"service": serviceName,
		"version": serviceVersion,
	}
	c.JSON(http.StatusOK, response.SuccessWith("Application is healthy and running", data))
}
