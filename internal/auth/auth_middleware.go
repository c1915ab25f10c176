package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// All rejection paths share one status and one message. A missing header, a
// malformed token, a bad signature, an expired token and a token whose
// subject no longer exists must be indistinguishable to the caller.
const credentialsErrorMessage = "Could not validate credentials"

func rejectUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeJSONError(w, http.StatusUnauthorized, credentialsErrorMessage)
}

// JWTAccessTokenMiddleware resolves the bearer token to a persisted user on
// every protected request. The lookup runs per request, nothing is cached.
func (s *service) JWTAccessTokenMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				rejectUnauthorized(w)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				rejectUnauthorized(w)
				return
			}

			subject, err := s.jwtManager.ValidateAccessToken(tokenString)
			if err != nil {
				rejectUnauthorized(w)
				return
			}

			existingUser, err := s.userService.GetUserByEmail(subject)
			if err != nil {
				// a valid token whose user vanished is rejected exactly
				// like a bad token, existence must not leak
				rejectUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), "userID", existingUser.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
	})
}
