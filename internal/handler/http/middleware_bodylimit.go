package http

import "net/http"

// maxBodyBytes caps JSON and form-encoded request bodies at 10 MiB.
const maxBodyBytes = 10 << 20

// withBodyLimit bounds how much of the request body any downstream reader
// can consume. Exceeding the cap makes the next body read fail with
// *http.MaxBytesError, which handlers surface as 413.
func withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
