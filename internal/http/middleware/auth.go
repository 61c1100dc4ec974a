package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"console/internal/session"
	"console/internal/utils"
)

// RequireAdmin lets the request through only with a live admin token in the
// session. An expired token is dropped from the session.
func RequireAdmin() gin.HandlerFunc {
	return requireToken("admin",
		func(s *session.Context) string { return s.AdminToken() },
		func(s *session.Context) { s.ClearAdmin() },
		"Admin login required",
	)
}

// RequireUser is RequireAdmin for customer sessions.
func RequireUser() gin.HandlerFunc {
	return requireToken("user",
		func(s *session.Context) string { return s.UserToken() },
		func(s *session.Context) { s.ClearUser() },
		"Please sign in to continue",
	)
}

func requireToken(kind string, token func(*session.Context) string, clear func(*session.Context), missing string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		tok := token(sess)
		if tok == "" {
			abortUnauthorized(c, missing)
			return
		}
		if session.TokenExpired(tok, time.Now()) {
			clear(sess)
			utils.LogEvent(GetRequestID(c), "auth", "expired_"+kind, "token expired, session cleared")
			abortUnauthorized(c, "Session expired, please sign in again")
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message":    msg,
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
