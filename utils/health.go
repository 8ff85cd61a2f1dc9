package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports basic liveness.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Aistronaut"})
}
