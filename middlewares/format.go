package middlewares

import (
	"github.com/gin-gonic/gin"
)

// HttpError records err on the context for the request logger and writes
// message as a JSON error body.
func HttpError(c *gin.Context, message string, status int, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
