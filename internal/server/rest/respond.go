package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/cloudvault/internal/common"
	"github.com/gin-gonic/gin"
)

// respondError writes the uniform failure envelope. message is either a
// string or a list of strings (field validation).
func respondError(c *gin.Context, code int, message any) {
	c.JSON(code, gin.H{"status": false, "message": message})
}

// mapError converts service-layer sentinel errors into an HTTP status and a
// client-safe message. Anything unrecognized becomes a generic 500 so
// internal error text never reaches the client.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return http.StatusBadRequest, "Email already exists"
	case errors.Is(err, common.ErrOwnerNotFound):
		return http.StatusBadRequest, "User not found"
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or expired token"
	case errors.Is(err, common.ErrForbidden):
		return http.StatusForbidden, "Access denied"
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, "Not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func respondMappedError(c *gin.Context, err error) {
	code, message := mapError(err)
	respondError(c, code, message)
}
