package middleware

import (
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes bounds how much of an unread request body is discarded after the handler.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest discards what the handler left unread of the request body,
// up to maxDrainBytes, and closes it so the connection can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}

			if _, err := io.CopyN(io.Discard, r.Body, maxDrainBytes); err != nil && !errors.Is(err, io.EOF) {
				log.Tracef("drain request body [%s]: %s", r.URL.Path, err)
			}
			_ = r.Body.Close()
		})
	}
}
