package api

import (
	"net/http"                  // HTTP status codes
	"number_game/internal/game" // Game rules and errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondError writes err with the status matching its kind. Unexpected
// failures surface the underlying error text.
func respondError(c *gin.Context, err error) {
	switch game.KindOf(err) {
	case game.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case game.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case game.KindNotConfigured:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		_ = c.Error(err) // Picked up by the request logger
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
