package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth is a trivial liveness probe.
func GetHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
