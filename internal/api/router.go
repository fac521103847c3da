package api

import (
	"number_game/internal/domain"     // Importing domain models
	"number_game/internal/game"       // Game rules
	"number_game/internal/middleware" // Custom package for middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Deps are the collaborators the HTTP layer needs
type Deps struct {
	DB         *gorm.DB      // Database, used for health checks
	Redis      *redis.Client // Response cache, nil disables caching
	Service    *game.Service // Game rules
	JWTSecret  string        // Token signing secret
	CORSOrigin string        // Browser origin allowed to call the API
}

// NewRouter registers every route on a fresh Gin engine
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	if d.CORSOrigin != "" {
		r.Use(middleware.CORS(d.CORSOrigin))
	}

	// Auth routes
	r.POST("/register", RegisterHandler(d.Service, d.Redis)) // Registration endpoint
	r.POST("/login", LoginHandler(d.Service, d.JWTSecret))   // Login endpoint
	r.GET("/healthz", HealthHandler(d.DB, d.Redis))          // Liveness and dependency check

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(d.JWTSecret), middleware.AdminOnlyMiddleware())
	adminGroup.POST("/setNumber", SetNumberHandler(d.Service))     // Set target number
	adminGroup.GET("/number", CurrentNumberHandler(d.Service))     // Read target number
	adminGroup.GET("/users", ListUsersHandler(d.Service, d.Redis)) // List users endpoint

	// Player routes (any authenticated account)
	userGroup := r.Group("/user")
	userGroup.Use(middleware.JWTAuthMiddleware(d.JWTSecret), middleware.RequireRole(domain.RoleUser))
	userGroup.GET("/info", UserInfoHandler(d.Service, d.Redis))              // Account info
	userGroup.POST("/selectNumber", SelectNumberHandler(d.Service, d.Redis)) // Pick a number and settle

	return r
}
