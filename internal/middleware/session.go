package middleware

import (
	"github.com/imyj1013/community-be/internal/models"
	"github.com/imyj1013/community-be/internal/repositories"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the cookie carrying the session token
	SessionCookieName = "session_id"
	// sessionContextKey is where the resolved session lives in the Echo context
	sessionContextKey = "session"
)

// SessionLoader resolves the session cookie against the server-side store
// and attaches the session to the request context. It never rejects a
// request: some routes are public, so each handler decides whether a missing
// session is a 401.
func SessionLoader(sessions repositories.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				session, err := sessions.GetSessionByToken(c.Request().Context(), cookie.Value)
				if err == nil {
					c.Set(sessionContextKey, session)
				}
			}
			return next(c)
		}
	}
}

// SessionFrom returns the session attached to the request, if any
func SessionFrom(c echo.Context) (*models.Session, bool) {
	session, ok := c.Get(sessionContextKey).(*models.Session)
	return session, ok && session != nil
}

// SetSession attaches a session to the request context. Used by the login
// handler after issuing a fresh session and by handler tests.
func SetSession(c echo.Context, session *models.Session) {
	c.Set(sessionContextKey, session)
}
