package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recruittrack/internal/auth"
	"recruittrack/internal/config"
	"recruittrack/internal/handlers"
	"recruittrack/internal/llm"
	"recruittrack/internal/logger"
	"recruittrack/internal/middleware"
	"recruittrack/internal/models"
	"recruittrack/internal/repositories"
	"recruittrack/internal/routes"
	"recruittrack/internal/services"
	"recruittrack/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	if err := seedFirstAdmin(gormDB); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate applies the schema and seeds the MOS catalog.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Station{},
		&models.User{},
		&models.StationCommanderRequest{},
		&models.Recruit{},
		&models.RecruitNote{},
		&models.Notification{},
		&models.QrSurveyResponse{},
		&models.ArmyMOS{},
		&models.SorbLead{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	mosRepo := repositories.NewMOSRepository(db)
	if err := mosRepo.Seed(models.MOSCatalog()); err != nil {
		return fmt.Errorf("seed MOS catalog: %w", err)
	}
	return nil
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, cfg, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	recruitRepo := repositories.NewRecruitRepository(gormDB)
	noteRepo := repositories.NewRecruitNoteRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	surveyRepo := repositories.NewSurveyRepository(gormDB)
	mosRepo := repositories.NewMOSRepository(gormDB)
	sorbRepo := repositories.NewSorbLeadRepository(gormDB)
	requestRepo := repositories.NewRequestRepository(gormDB)

	llmClient := llm.NewClient(cfg.LLM)

	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(userRepo, requestRepo)
	recruitService := services.NewRecruitService(recruitRepo, noteRepo, userRepo, notificationService)
	shipperService := services.NewShipperService(recruitRepo, userRepo, notificationService)
	analyticsService := services.NewAnalyticsService(recruitRepo, userRepo, surveyRepo)
	sorbService := services.NewSorbService(sorbRepo, userRepo)
	exportService := services.NewExportService(recruitRepo, userRepo, surveyRepo)
	mosService := services.NewMOSService(mosRepo, recruitRepo, llmClient)
	surveyService := services.NewSurveyService(surveyRepo, userRepo)
	requestService := services.NewRequestService(requestRepo, userRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		RecruitService:      recruitService,
		ShipperService:      shipperService,
		NotificationService: notificationService,
		AnalyticsService:    analyticsService,
		SorbService:         sorbService,
		ExportService:       exportService,
		MOSService:          mosService,
		SurveyService:       surveyService,
		RequestService:      requestService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		RecruitHandler:      handlers.NewRecruitHandler(baseHandler, services.RecruitService),
		ShipperHandler:      handlers.NewShipperHandler(baseHandler, services.ShipperService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		AnalyticsHandler:    handlers.NewAnalyticsHandler(baseHandler, services.AnalyticsService),
		SorbHandler:         handlers.NewSorbHandler(baseHandler, services.SorbService),
		ExportHandler:       handlers.NewExportHandler(baseHandler, services.ExportService),
		MOSHandler:          handlers.NewMOSHandler(baseHandler, services.MOSService),
		SurveyHandler:       handlers.NewSurveyHandler(baseHandler, services.SurveyService),
		AdminHandler:        handlers.NewAdminHandler(baseHandler, services.RequestService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin bootstraps the admin account from FIRST_ADMIN_* env
// settings so a fresh deployment has someone who can approve requests.
func seedFirstAdmin(db *gorm.DB) error {
	adminUsername := config.GetConfig().FirstAdmin.Username
	adminPassword := config.GetConfig().FirstAdmin.Password

	if adminUsername == "" || adminPassword == "" {
		logger.Warn("First admin credentials not set, skipping admin seeding")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", adminUsername).Count(&count).Error; err != nil {
		return fmt.Errorf("check for admin user: %w", err)
	}
	if count > 0 {
		logger.Info("Admin user already exists, skipping creation", "username", adminUsername)
		return nil
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     adminUsername,
		Email:        adminUsername + "@local",
		PasswordHash: hash,
		FullName:     "Administrator",
		QRCode:       adminUsername + "-admin",
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	logger.Warn("Created first admin user", "username", adminUsername)
	return nil
}
