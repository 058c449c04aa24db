package rest

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/cloudvault/internal/server/auth"
	"github.com/dmitrijs2005/cloudvault/internal/server/models"
	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// authRequired verifies the bearer token and resolves it to an account
// before any handler runs. Requests without a valid token are rejected with
// 401; handlers behind this middleware can rely on currentUser being set.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondError(c, http.StatusUnauthorized, "Authorization header is required")
			c.Abort()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			respondError(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		email, err := auth.GetEmailFromToken(token, s.jwtSecret)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := s.users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// currentUser returns the account attached by authRequired.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
