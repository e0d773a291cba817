package middleware

import (
	"context"
	"net/http"

	"github.com/ainaweather/ainaweather/internal/session"
)

// sessionKey is the context key for the session.
type sessionKey struct{}

// SessionHeader is the header clients use to replay their anonymous identity.
const SessionHeader = "X-Session-Id"

// Session attaches an explicit session object to every request. A client
// that presents a session id keeps it; everyone else gets a freshly minted
// anonymous identity. The id is echoed in the response header so the client
// can replay it.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *session.Session
		if id := r.Header.Get(SessionHeader); id != "" {
			sess = session.New(id)
		} else {
			sess = session.NewAnonymous()
		}

		w.Header().Set(SessionHeader, sess.UserID)

		ctx := context.WithValue(r.Context(), sessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSession retrieves the session from the context, or nil when the
// session middleware did not run.
func GetSession(ctx context.Context) *session.Session {
	if s, ok := ctx.Value(sessionKey{}).(*session.Session); ok {
		return s
	}
	return nil
}

// GetUserID retrieves the session user id from the context.
func GetUserID(ctx context.Context) string {
	if s := GetSession(ctx); s != nil {
		return s.UserID
	}
	return ""
}
