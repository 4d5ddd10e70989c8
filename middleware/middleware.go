package middleware

import (
	"context"
	"net/http"
	"time"

	"bakehouse/globals"
	"bakehouse/utils"

	"github.com/julienschmidt/httprouter"
)

const SessionCookie = "bh_session"

// WithSession resolves the caller's session id and stamps it into the
// request context. There are no accounts: a session is just an opaque
// uuid, taken from the X-Session-ID header or the session cookie, or
// minted on first contact. Each session owns its own cart and wishlist
// keys in the stash.
func WithSession(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sessionID := r.Header.Get("X-Session-ID")
		if sessionID == "" {
			if c, err := r.Cookie(SessionCookie); err == nil {
				sessionID = c.Value
			}
		}
		if sessionID == "" {
			sessionID = utils.GetUUID()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(30 * 24 * time.Hour),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), globals.SessionIDKey, sessionID)
		next(w, r.WithContext(ctx), ps)
	}
}

// SessionID returns the session id resolved by WithSession, or "" when
// the middleware did not run.
func SessionID(r *http.Request) string {
	if v, ok := r.Context().Value(globals.SessionIDKey).(string); ok {
		return v
	}
	return ""
}
