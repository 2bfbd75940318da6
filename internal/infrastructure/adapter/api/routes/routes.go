package routes

import (
	"net/http"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth      *handler.AuthHandler
	AdminCard *handler.AdminCardHandler
	AdminUser *handler.AdminUserHandler
	UserCard  *handler.UserCardHandler
	Health    *handler.HealthHandler
	// Metrics serves the Prometheus exposition format; nil leaves /metrics unmounted
	Metrics http.Handler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, tokens coreport.TokenManager, logger coreport.Logger) {
	router.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", h.Auth.Register)
		authRoutes.POST("/login", h.Auth.Login)
	}

	authenticated := api.Group("", middleware.Authenticate(tokens, logger))

	admin := authenticated.Group("/admin", middleware.RequireRole(string(entity.RoleAdmin)))
	{
		admin.GET("/cards", h.AdminCard.ListCards)
		admin.POST("/card", h.AdminCard.CreateCard)
		admin.PATCH("/card/:cardId/block", h.AdminCard.BlockCard)
		admin.PATCH("/card/:cardId/activate", h.AdminCard.ActivateCard)
		admin.DELETE("/card/:cardId", h.AdminCard.DeleteCard)

		admin.GET("/users", h.AdminUser.ListUsers)
		admin.POST("/user", h.AdminUser.CreateUser)
		admin.GET("/user/:userId", h.AdminUser.GetUser)
		admin.PATCH("/user/:userId/block", h.AdminUser.BlockUser)
		admin.PATCH("/user/:userId/activate", h.AdminUser.ActivateUser)
		admin.DELETE("/user/:userId", h.AdminUser.DeleteUser)
	}

	userCards := authenticated.Group("/user/card", middleware.RequireRole(string(entity.RoleUser), string(entity.RoleAdmin)))
	{
		userCards.GET("", h.UserCard.ListCards)
		userCards.POST("/transfer", h.UserCard.Transfer)
		userCards.PATCH("/:cardId/block", h.UserCard.RequestBlock)
		userCards.GET("/:cardId/balance", h.UserCard.GetBalance)
		userCards.GET("/:cardId/transfers", h.UserCard.ListTransfers)
	}
}

// SetupMiddlewares configures global middlewares for the API. A nil observer disables request metrics.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, tp coreport.TimeProvider, observer middleware.HTTPObserver) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, tp))
	if observer != nil {
		router.Use(middleware.Metrics(observer))
	}
}

// CORSOptions describes the cross-origin policy applied in front of the router
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// WithCORS wraps the router with the cross-origin policy
func WithCORS(next http.Handler, opts CORSOptions) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         opts.MaxAge,
	})(next)
}
