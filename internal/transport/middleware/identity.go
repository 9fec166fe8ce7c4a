package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/pkg/ctxutil"
)

// Identity reads the caller's user id from the X-User-Id header and puts
// it into the request context. Missing or malformed ids get 401; whether
// the user actually exists is the handlers' business.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-Id")
		if raw == "" {
			http.Error(w, "missing user id", http.StatusUnauthorized)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			http.Error(w, "invalid user id", http.StatusUnauthorized)
			return
		}

		ctx := ctxutil.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
