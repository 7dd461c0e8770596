package routes

import (
	"github.com/gin-gonic/gin"

	"recruittrack/internal/config"
	"recruittrack/internal/handlers"
	"recruittrack/internal/logger"
)

// RegisterRoutes mounts the HTTP API. SORB routes only exist when SORB
// mode is enabled for the deployment.
func RegisterRoutes(
	ginRouter *gin.Engine,
	cfg *config.Config,
	appHandlers *handlers.AppHandlers,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.RecruitHandler.RegisterRoutes(api)
		appHandlers.ShipperHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)
		appHandlers.ExportHandler.RegisterRoutes(api)
		appHandlers.MOSHandler.RegisterRoutes(api)
		appHandlers.SurveyHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)

		if cfg.SORB.Enabled {
			appHandlers.SorbHandler.RegisterRoutes(api)
			logger.Info("SORB mode enabled, pipeline routes registered")
		}
	}
}
