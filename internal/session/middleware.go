package session

import (
	"context"
	"net/http"
)

const CookieName = "fitcoach_session"

type ctxKey struct{}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}

// Middleware resolves the session cookie, starting a new session when it is missing or expired.
func (m *Manager) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var s *Session
			if c, err := r.Cookie(CookieName); err == nil {
				s, _ = m.Get(c.Value)
			}

			if s == nil {
				s = m.Start()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    s.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), s)))
		})
	}
}
