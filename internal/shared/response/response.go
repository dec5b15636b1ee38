package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// JSON writes a success payload as-is. Record bodies are intentionally
// unwrapped so clients get the resource shape directly.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Deleted writes the standard delete acknowledgement.
func Deleted(c *gin.Context, resource string) {
	c.JSON(200, gin.H{"message": fmt.Sprintf("%s deleted successfully", resource)})
}

// Error writes a structured failure body.
func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
