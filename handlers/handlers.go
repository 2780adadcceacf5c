// Package handlers wires the REST surface: request validation, calls into
// the domain services/repositories and mapping of domain failures to HTTP
// status codes.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ahmedkhaled2030/bedir-group/pkg/logger"
)

// intQuery parses a positive integer query parameter, falling back to def
// and clamping to max (0 means unbounded).
func intQuery(c *gin.Context, name string, def, max int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	if max > 0 && v > max {
		return max
	}
	return v
}

// internalError logs the cause and answers with a generic 500 so internals
// never leak to clients.
func internalError(c *gin.Context, err error) {
	logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
