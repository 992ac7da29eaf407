package middleware

import (
	"mime"
	"net/http"
)

// RequireJSON rejects requests whose Content-Type is not application/json.
// Mount it on every route that reads a body.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnsupportedMediaType)
			w.Write([]byte(`{"error":"unsupported media type, only JSON format is supported"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
