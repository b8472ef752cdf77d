package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the request and response header carrying the request ID.
const Header = "X-Request-ID"

const maxIDLength = 128

// Incoming IDs outside this shape are replaced, not trusted: the
// header is client-controlled and ends up in logs.
var validIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware ensures the request has an ID: a well-formed incoming
// X-Request-ID is kept, anything else is replaced with a fresh UUID.
// The ID is echoed on the response header and stored in the request
// context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !isValidRequestID(requestID) {
			requestID = uuid.New().String()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
