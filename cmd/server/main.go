package main

import (
	"log"
	"net/http"
	"os"

	_ "localhire/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"localhire/internal/auth"
	"localhire/internal/cache"
	"localhire/internal/config"
	"localhire/internal/db"
	"localhire/internal/handler"
	"localhire/internal/model"
	"localhire/internal/repository"
	"localhire/internal/router"
	"localhire/internal/service"
)

// repositories bundles every entity store behind one backend choice.
type repositories struct {
	users        repository.UserRepository
	companies    repository.CompanyRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	messages     repository.MessageRepository
	experiences  repository.ExperienceRepository
	stories      repository.StoryRepository
}

// @title LocalHire API
// @version 1.0
// @description Local job marketplace API with jobs, applications, messaging, and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	repos := openStorage(cfg)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(repos.users, jwtService, tokenStore)
	userService := service.NewUserService(repos.users, cacheClient)
	companyService := service.NewCompanyService(repos.companies, cacheClient)
	jobService := service.NewJobService(repos.jobs, repos.companies, repos.users, cacheClient)
	applicationService := service.NewApplicationService(repos.applications, repos.jobs, repos.users, repos.companies, cacheClient)
	messageService := service.NewMessageService(repos.messages, repos.users, cacheClient)
	experienceService := service.NewExperienceService(repos.experiences)
	storyService := service.NewStoryService(repos.stories)
	adminService := service.NewAdminService(repos.users, repos.companies, repos.jobs, repos.applications)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	companyHandler := handler.NewCompanyHandler(companyService)
	jobHandler := handler.NewJobHandler(jobService)
	applicationHandler := handler.NewApplicationHandler(applicationService)
	messageHandler := handler.NewMessageHandler(messageService)
	experienceHandler := handler.NewExperienceHandler(experienceService)
	storyHandler := handler.NewStoryHandler(storyService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Register routes
	router.Register(
		e,
		cfg,
		tokenStore,
		authHandler,
		userHandler,
		companyHandler,
		jobHandler,
		applicationHandler,
		messageHandler,
		experienceHandler,
		storyHandler,
		adminHandler,
	)

	// Log swagger full path
	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// openStorage picks the configured backend. Postgres failures fall back to
// the in-memory store so the API stays usable for local development.
func openStorage(cfg *config.Config) repositories {
	if cfg.StorageDriver == config.StorageMemory {
		log.Println("Using in-memory storage")
		return memoryRepositories()
	}

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Printf("Warning: postgres unavailable (%v), falling back to in-memory storage", err)
		return memoryRepositories()
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Message{},
			&model.Application{},
			&model.Experience{},
			&model.Job{},
			&model.Company{},
			&model.Story{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	return gormRepositories(gormDB)
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Job{},
		&model.Application{},
		&model.Message{},
		&model.Experience{},
		&model.Story{},
	)
}

func gormRepositories(gormDB *gorm.DB) repositories {
	return repositories{
		users:        repository.NewUserRepository(gormDB),
		companies:    repository.NewCompanyRepository(gormDB),
		jobs:         repository.NewJobRepository(gormDB),
		applications: repository.NewApplicationRepository(gormDB),
		messages:     repository.NewMessageRepository(gormDB),
		experiences:  repository.NewExperienceRepository(gormDB),
		stories:      repository.NewStoryRepository(gormDB),
	}
}

func memoryRepositories() repositories {
	store := repository.NewMemoryStore()
	return repositories{
		users:        repository.NewMemoryUserRepository(store),
		companies:    repository.NewMemoryCompanyRepository(store),
		jobs:         repository.NewMemoryJobRepository(store),
		applications: repository.NewMemoryApplicationRepository(store),
		messages:     repository.NewMemoryMessageRepository(store),
		experiences:  repository.NewMemoryExperienceRepository(store),
		stories:      repository.NewMemoryStoryRepository(store),
	}
}
