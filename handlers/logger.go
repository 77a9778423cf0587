package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// global logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}

// currentUser returns the authenticated caller's ID and role from context.
func currentUser(c *gin.Context) (string, string, bool) {
	idVal, ok := c.Get("userID")
	if !ok {
		return "", "", false
	}
	roleVal, ok := c.Get("userRole")
	if !ok {
		return "", "", false
	}
	id, okID := idVal.(string)
	role, okRole := roleVal.(string)
	if !okID || !okRole {
		return "", "", false
	}
	return id, role, true
}
