package internal

import (
	"net/http"

	"github.com/2beens/fitcoach/internal/session"

	log "github.com/sirupsen/logrus"
)

// requestSession returns the session attached by the session middleware.
// It writes a 500 and returns false when there is none.
func requestSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		log.Errorf("no session in request context for %s", r.URL.Path)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return s, true
}
