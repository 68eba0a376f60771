package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"insure-backend/pkg/utils"
)

// PanicRecovery turns a handler panic into a 500 instead of killing the
// process. The stack goes to the log, never to the client.
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[Recover] panic on %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
				utils.Error(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
