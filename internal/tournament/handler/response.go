package handler

import "github.com/gin-gonic/gin"

// errorResponse writes the flat error body used across the API.
func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
