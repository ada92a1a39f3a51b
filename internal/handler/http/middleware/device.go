package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/isj-group4/fingerprint-attendance-go/internal/handler/http/response"
)

// BiometricVerified gates the recording endpoint. The fingerprint terminal
// asserts the match in its token; the engine trusts the claim and never sees
// biometric material.
func BiometricVerified(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}

		verified, ok := claims["biometric_verified"].(bool)
		if !ok || !verified {
			response.Forbidden(w, "Biometric verification required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
