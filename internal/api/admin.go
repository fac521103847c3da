package api

import (
	"net/http"                    // HTTP status codes
	"number_game/internal/domain" // Importing domain models
	"number_game/internal/game"   // Game rules and errors
	"number_game/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// NumberRequest carries a number in [1,30]
type NumberRequest struct {
	Number *int `json:"number" binding:"required"` // Pointer so an explicit 0 reaches range validation
}

// SetNumberHandler creates or replaces the target number
func SetNumberHandler(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NumberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid number"})
			return
		}
		cfg, err := svc.SetNumber(c.Request.Context(), *req.Number)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Number set successfully", "number": cfg.Number})
	}
}

// CurrentNumberHandler returns the target number
func CurrentNumberHandler(svc *game.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := svc.CurrentNumber(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cfg)
	}
}

// ListUsersHandler returns every account with its balance and selection
func ListUsersHandler(svc *game.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		gen, genErr := utils.CacheGeneration(ctx, rdb)
		cacheKey := utils.AdminUsersKey(gen)
		var cached []domain.User
		// If cached data found, return it
		if genErr == nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
				c.Header("X-Cache", "HIT")
				c.JSON(http.StatusOK, cached)
				return
			}
		}
		users, err := svc.Users(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		if genErr == nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, users, utils.CacheTTL)
		}
		c.Header("X-Cache", "MISS")
		c.JSON(http.StatusOK, users)
	}
}
