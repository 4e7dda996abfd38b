package middleware

import "net/http"

// MaxBytes caps the request body at n bytes. Reads past the cap fail with
// *http.MaxBytesError; the CSRF form parse turns that into a 413. Must sit
// in front of anything that parses the body.
func MaxBytes(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
