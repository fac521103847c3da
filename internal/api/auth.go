package api

import (
	"net/http"                   // HTTP status codes
	"number_game/internal/game"  // Game rules and errors
	"number_game/internal/utils" // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Request and Response structs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`               // Username must be provided
	Email    string `json:"email" binding:"required,email"`            // Email must be provided and well formed
	Password string `json:"password" binding:"required"`               // Password must be provided
	Role     string `json:"role" binding:"omitempty,oneof=user admin"` // Optional, defaults to user
}

// Request struct for login
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"` // Username or email must be provided
	Password        string `json:"password" binding:"required"`        // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
	Role  string `json:"role"`  // Role embedded in the token
}

// RegisterHandler creates an account. Regular players are capped at game.MaxPlayers.
func RegisterHandler(svc *game.Service, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		user, err := svc.Register(c.Request.Context(), game.Registration{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		invalidate(c.Request.Context(), rdb) // Listing is stale now
		c.JSON(http.StatusCreated, gin.H{"message": "User registered", "id": user.ID})
	}
}

// LoginHandler authenticates a user and returns a JWT token with their role
func LoginHandler(svc *game.Service, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		user, err := svc.Authenticate(c.Request.Context(), req.UsernameOrEmail, req.Password)
		if err != nil {
			// Unknown account and wrong password are both client errors here
			if game.KindOf(err) != game.KindInternal {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		token, err := utils.GenerateJWT(user.ID, user.Role, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: token, Role: string(user.Role)})
	}
}
