package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	HealthHandler       *HealthHandler
	AuthHandler         *AuthHandler
	RecruitHandler      *RecruitHandler
	ShipperHandler      *ShipperHandler
	NotificationHandler *NotificationHandler
	AnalyticsHandler    *AnalyticsHandler
	SorbHandler         *SorbHandler
	ExportHandler       *ExportHandler
	MOSHandler          *MOSHandler
	SurveyHandler       *SurveyHandler
	AdminHandler        *AdminHandler
}
