package middleware

import (
	"net/http"
	"strings"

	"car-rental/internal/handler/httperr"
	"car-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// HeaderUserName carries the caller identity. It is trusted as sent.
const HeaderUserName = "X-User-Name"

const ctxUsernameKey = "username"

var errMissingUser = errs.New("missing " + HeaderUserName + " header")

// IdentifyUser stores the caller's username when the header is present.
func IdentifyUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if name := strings.TrimSpace(c.GetHeader(HeaderUserName)); name != "" {
			c.Set(ctxUsernameKey, name)
		}
		c.Next()
	}
}

// RequireUser rejects requests without a caller identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.GetHeader(HeaderUserName))
		if name == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingUser, "Invalid request", []httperr.FieldError{
				{Field: HeaderUserName, Error: "is required"},
			})
			return
		}
		c.Set(ctxUsernameKey, name)
		c.Next()
	}
}

// CurrentUser returns the username set by IdentifyUser or RequireUser.
func CurrentUser(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUsernameKey)
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok && name != ""
}
