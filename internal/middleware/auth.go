package middleware

import (
	"errors"
	"net/http"
	"strings"

	"khata-ledger/internal/service"
	"khata-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// context keys shared with the handler package
const (
	CtxUserKey  = "currentUser"
	CtxTokenKey = "sessionToken"
)

// AuthMiddleware resolves the session token and puts the current user
// into the request context. The token is taken from the Authorization
// header, the token query parameter (for download links), or the session
// cookie, in that order.
func AuthMiddleware(auth *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// 1) Header: Authorization: Bearer xxx
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}
		}

		// 2) URL query parameter ?token=xxx
		if token == "" {
			token = c.Query("token")
		}

		// 3) session cookie
		if token == "" {
			if cookie, err := c.Cookie(cookieName); err == nil {
				token = cookie
			}
		}

		user, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
			} else {
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "lookup user failed")
			}
			c.Abort()
			return
		}

		c.Set(CtxUserKey, user)
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}
