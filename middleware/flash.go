package middleware

import (
	"net/http"

	"booking/config"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/guregu/null/v5"
)

const (
	sessionName = "booking_session"
	// FlashKey names the one-time message shown after a redirect.
	FlashKey = "msg"
)

// Sessions installs the cookie-backed session store that carries flash messages.
func Sessions(cfg config.SessionConfig) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessions.Sessions(sessionName, store)
}

// SetFlash queues msg for the next request that calls TakeFlash.
func SetFlash(c *gin.Context, msg string) error {
	session := sessions.Default(c)
	session.AddFlash(msg, FlashKey)
	return session.Save()
}

// TakeFlash returns and clears the pending flash message, if any.
func TakeFlash(c *gin.Context) null.String {
	session := sessions.Default(c)
	flashes := session.Flashes(FlashKey)
	if len(flashes) == 0 {
		return null.String{}
	}
	// Flashes only marks the session dirty; persist the removal.
	if err := session.Save(); err != nil {
		_ = c.Error(err)
	}

	msg, ok := flashes[len(flashes)-1].(string)
	if !ok {
		return null.String{}
	}
	return null.StringFrom(msg)
}
