package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"localhire/internal/auth"
	"localhire/internal/config"
	"localhire/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	companyHandler *handler.CompanyHandler,
	jobHandler *handler.JobHandler,
	applicationHandler *handler.ApplicationHandler,
	messageHandler *handler.MessageHandler,
	experienceHandler *handler.ExperienceHandler,
	storyHandler *handler.StoryHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Auth
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Users
	api.GET("/users/:id", userHandler.Get)
	api.PUT("/users/:id", userHandler.Update)

	// Companies
	api.GET("/companies", companyHandler.List)
	api.GET("/companies/:id", companyHandler.Get)
	api.POST("/companies", companyHandler.Create)

	// Jobs
	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/:id", jobHandler.Get)
	api.POST("/jobs", jobHandler.Create)
	api.PUT("/jobs/:id", jobHandler.Update)

	// Applications
	api.GET("/applications", applicationHandler.List)
	api.POST("/applications", applicationHandler.Create)
	api.PUT("/applications/:id", applicationHandler.Update)

	// Messages
	api.GET("/messages", messageHandler.List)
	api.GET("/messages/conversations", messageHandler.Conversations)
	api.POST("/messages", messageHandler.Send)
	api.PUT("/messages/:id/read", messageHandler.MarkRead)

	// Experiences
	api.GET("/experiences", experienceHandler.List)
	api.POST("/experiences", experienceHandler.Create)
	api.PUT("/experiences/:id", experienceHandler.Update)
	api.DELETE("/experiences/:id", experienceHandler.Delete)

	// Stories
	api.GET("/stories", storyHandler.List)
	api.POST("/stories", storyHandler.Submit)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))
	secured.Use(rejectBlacklistedTokens(tokenStore))

	secured.GET("/me", func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, _ := token.Claims.(jwt.MapClaims)
		return c.JSON(http.StatusOK, claims)
	})

	// Admin dashboard
	secured.GET("/admin/stats", adminHandler.Stats)
	secured.GET("/admin/users", adminHandler.Users)
	secured.GET("/admin/jobs", adminHandler.Jobs)
	secured.GET("/admin/companies", adminHandler.Companies)
}

// rejectBlacklistedTokens rejects access tokens that were revoked by logout.
// Tokens without a JTI pass through; the blacklist only covers tokens that
// carry one.
func rejectBlacklistedTokens(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return next(c)
			}
			claims, _ := token.Claims.(jwt.MapClaims)
			jti, _ := claims["jti"].(string)
			if jti == "" {
				return next(c)
			}
			blacklisted, err := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), jti)
			if err == nil && blacklisted {
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
