package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruittrack/internal/middleware"
	"recruittrack/internal/services"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	recruiter := r.Group("/recruiter")
	recruiter.Use(middleware.AuthMiddleware())
	{
		recruiter.GET("/stats", h.GetStats)
	}
}

func (h *AnalyticsHandler) GetStats(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.RecruiterStats(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
