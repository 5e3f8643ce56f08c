// Package ticket guards routes that operate on an already generated maze.
package ticket

import (
	"net/http"
	"strings"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextTicket is the key used to store the parsed maze ticket in the Gin context.
	ContextTicket = "mazeTicket"
)

// Require rejects requests without a valid "Authorization: Bearer <ticket>" header
// and stores the parsed ticket under ContextTicket.
func Require(t i.Ticketer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing maze ticket"})
			return
		}

		// Split the "Bearer" prefix from the ticket.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		parsed, err := t.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid maze ticket"})
			return
		}

		c.Set(ContextTicket, *parsed)
		c.Next()
	}
}

// FromContext returns the ticket stored by Require.
func FromContext(c *gin.Context) (dmn.Ticket, bool) {
	value, ok := c.Get(ContextTicket)
	if !ok {
		return dmn.Ticket{}, false
	}
	t, ok := value.(dmn.Ticket)
	return t, ok
}
