package controllers

import (
	"net/http"
	"time"

	"github.com/alex-pricope/gift-selection-service/api/models"
	"github.com/alex-pricope/gift-selection-service/storage"
	"github.com/gin-gonic/gin"
)

type HealthController struct {
	clock storage.Clock
}

func NewHealthController(clock storage.Clock) *HealthController {
	return &HealthController{clock: clock}
}

func (c *HealthController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/health", c.health)
}

// health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/health [get]
func (c *HealthController) health(g *gin.Context) {
	g.JSON(http.StatusOK, &models.HealthResponse{
		Status:    models.StatusHealthy,
		Timestamp: c.clock.Now().Format(time.RFC3339Nano),
	})
}
