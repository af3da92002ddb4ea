package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnqbao/gau-hackathon-service/service"
)

func JSON200(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func JSON400(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

func JSON401(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

func JSON403(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"error": message})
}

func JSON404(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

func JSON409(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"error": message})
}

func JSON412(c *gin.Context, message string) {
	c.JSON(http.StatusPreconditionFailed, gin.H{"error": message})
}

func JSON500(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// JSONError writes the status matching the error kind. Errors outside the
// taxonomy become a 500 with fallback as message so provider detail never
// reaches the client.
func JSONError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		JSON400(c, service.Message(err))
	case errors.Is(err, service.ErrNotFound):
		JSON404(c, service.Message(err))
	case errors.Is(err, service.ErrForbidden):
		JSON403(c, service.Message(err))
	case errors.Is(err, service.ErrConflict):
		JSON412(c, service.Message(err))
	default:
		JSON500(c, fallback)
	}
}
