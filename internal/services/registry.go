package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	RecruitService      RecruitService
	ShipperService      ShipperService
	NotificationService NotificationService
	AnalyticsService    AnalyticsService
	SorbService         SorbService
	ExportService       ExportService
	MOSService          MOSService
	SurveyService       SurveyService
	RequestService      RequestService
}
