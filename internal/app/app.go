package app

import (
	"fmt"

	"lawconnect_backend/database"
	"lawconnect_backend/internal/config"
	"lawconnect_backend/internal/handlers"
	"lawconnect_backend/internal/logger"
	"lawconnect_backend/internal/middleware"
	"lawconnect_backend/internal/repositories"
	"lawconnect_backend/internal/routes"
	"lawconnect_backend/internal/services"
	"lawconnect_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
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

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
// Tests call it directly with their own *gorm.DB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	lawyerRepo := repositories.NewLawyerRepository(gormDB)
	requestRepo := repositories.NewRequestRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, lawyerRepo),
		UserService:    services.NewUserService(userRepo),
		SearchService:  services.NewSearchService(lawyerRepo),
		RequestService: services.NewRequestService(requestRepo, userRepo, lawyerRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:    handlers.NewUserHandler(baseHandler, services.UserService),
		SearchHandler:  handlers.NewSearchHandler(baseHandler, services.SearchService),
		RequestHandler: handlers.NewRequestHandler(baseHandler, services.RequestService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
