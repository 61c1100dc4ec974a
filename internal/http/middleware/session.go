package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"console/internal/session"
	"console/internal/utils"
)

const (
	sessionKey    = "console_session"
	SessionCookie = "console_session"
	sessionMaxAge = 7 * 24 * time.Hour
)

type SessionOptions struct {
	Secure bool
}

// Session loads the browser's session from store and persists it, together
// with its cookie, right before the response headers go out. A session that
// ends up empty is deleted and its cookie expired.
func Session(store session.Store, opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := GetRequestID(c)
		sess := loadSession(c, store, reqID)
		c.Set(sessionKey, sess)

		sw := &sessionWriter{ResponseWriter: c.Writer}
		sw.flush = func() { persistSession(c, sw.ResponseWriter, store, sess, opts, reqID) }
		c.Writer = sw

		c.Next()
		sw.once.Do(sw.flush)
	}
}

func loadSession(c *gin.Context, store session.Store, reqID string) *session.Context {
	cookie, err := c.Cookie(SessionCookie)
	id := strings.TrimSpace(cookie)
	if err != nil || id == "" {
		return session.New()
	}
	values, err := store.Load(c.Request.Context(), id)
	if err != nil {
		utils.LogEvent(reqID, "session", "load", "error="+err.Error())
		return session.New()
	}
	if values == nil {
		return session.New()
	}
	return session.Restore(id, values)
}

func persistSession(c *gin.Context, w gin.ResponseWriter, store session.Store, sess *session.Context, opts SessionOptions, reqID string) {
	if !sess.Dirty() {
		return
	}
	ctx := c.Request.Context()
	cookie := &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID(),
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if sess.Empty() {
		if err := store.Delete(ctx, sess.ID()); err != nil {
			utils.LogEvent(reqID, "session", "delete", "error="+err.Error())
			return
		}
		cookie.Value = ""
		cookie.MaxAge = -1
	} else {
		if err := store.Save(ctx, sess.ID(), sess.Values()); err != nil {
			utils.LogEvent(reqID, "session", "save", "error="+err.Error())
			return
		}
		cookie.MaxAge = int(sessionMaxAge.Seconds())
	}
	http.SetCookie(w, cookie)
	sess.MarkClean()
}

// GetSession returns the request's session. Outside the Session middleware it
// is a fresh, unsaved one.
func GetSession(c *gin.Context) *session.Context {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Context); ok {
			return s
		}
	}
	s := session.New()
	c.Set(sessionKey, s)
	return s
}

// sessionWriter runs flush once, just before anything reaches the client.
type sessionWriter struct {
	gin.ResponseWriter
	flush func()
	once  sync.Once
}

func (w *sessionWriter) WriteHeaderNow() {
	w.once.Do(w.flush)
	w.ResponseWriter.WriteHeaderNow()
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.once.Do(w.flush)
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) WriteString(s string) (int, error) {
	w.once.Do(w.flush)
	return w.ResponseWriter.WriteString(s)
}
