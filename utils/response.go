package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONValidation echoes the submitted entity alongside the failure
// messages so the client can re-display the form pre-filled.
func JSONValidation(c *gin.Context, messages []string, submitted interface{}) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success":   false,
		"errors":    messages,
		"submitted": submitted,
	})
}
