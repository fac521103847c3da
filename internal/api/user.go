package api

import (
	"context"                         // Request scoped context
	"net/http"                        // HTTP status codes
	"number_game/internal/domain"     // Importing domain models
	"number_game/internal/game"       // Game rules and errors
	"number_game/internal/middleware" // Authenticated identity
	"number_game/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// UserInfoHandler returns the authenticated user's account
func UserInfoHandler(svc *game.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		ctx := c.Request.Context()
		// Read the generation before the database so a concurrent
		// settlement retires whatever this request caches
		gen, genErr := utils.CacheGeneration(ctx, rdb)
		cacheKey := utils.UserInfoKey(userID, gen)
		var user domain.User
		if genErr == nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &user); err == nil && found {
				c.Header("X-Cache", "HIT")
				c.JSON(http.StatusOK, user)
				return
			}
		}
		loaded, err := svc.User(ctx, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		if genErr == nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, loaded, utils.CacheTTL)
		}
		c.Header("X-Cache", "MISS")
		c.JSON(http.StatusOK, loaded)
	}
}

// SelectNumberHandler stores the user's pick and settles balances
func SelectNumberHandler(svc *game.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		var req NumberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid number"})
			return
		}
		ctx := c.Request.Context()
		st, err := svc.SelectNumber(ctx, userID, *req.Number)
		if err != nil {
			// The selection may already be stored even when settlement failed
			invalidate(ctx, rdb, userID)
			respondError(c, err)
			return
		}
		invalidate(ctx, rdb, append(st.Affected(), userID)...)
		c.JSON(http.StatusOK, gin.H{"message": "Number selected and balances updated", "settlement": st})
	}
}

// invalidate retires every cached balance by bumping the generation, then
// drops the previous generation's keys for userIDs and the admin listing
func invalidate(ctx context.Context, rdb *redis.Client, userIDs ...uint) {
	prev, err := utils.BumpCacheGeneration(ctx, rdb)
	if err != nil {
		logrus.WithError(err).Warn("Failed to bump cache generation")
		return
	}
	keys := []string{utils.AdminUsersKey(prev)}
	for _, id := range userIDs {
		keys = append(keys, utils.UserInfoKey(id, prev))
	}
	_ = utils.DeleteCache(ctx, rdb, keys...)
}

