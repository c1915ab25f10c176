package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgorski00/finance-tracker/internal/user"
)

func runMiddleware(t *testing.T, service Service, authHeader string) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()

	nextCalled := false
	var principalID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		principalID, _ = r.Context().Value("userID").(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/expenses/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()

	service.JWTAccessTokenMiddleware()(next).ServeHTTP(w, req)
	return w, nextCalled, principalID
}

func TestMiddleware_ValidToken(t *testing.T) {
	existing := testUser(t, "a@x.com", "secret-password")
	service, manager := newTestAuthService(t, map[string]*user.User{existing.Email: existing})

	token, err := manager.GenerateAccessJWT(existing.Email)
	require.NoError(t, err)

	w, nextCalled, principalID := runMiddleware(t, service, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, nextCalled)
	assert.Equal(t, existing.ID, principalID)
}

// All failure modes must be indistinguishable: same status, same body.
func TestMiddleware_UniformRejection(t *testing.T) {
	existing := testUser(t, "a@x.com", "secret-password")
	service, manager := newTestAuthService(t, map[string]*user.User{existing.Email: existing})

	expiredManager := newTestJWTManager(-time.Minute)
	expiredToken, err := expiredManager.GenerateAccessJWT(existing.Email)
	require.NoError(t, err)

	// token is valid but its subject no longer exists in storage
	vanishedToken, err := manager.GenerateAccessJWT("gone@x.com")
	require.NoError(t, err)

	cases := map[string]string{
		"missing header":    "",
		"not bearer":        "Basic abc",
		"malformed token":   "Bearer not-a-token",
		"expired token":     "Bearer " + expiredToken,
		"vanished identity": "Bearer " + vanishedToken,
	}

	var firstBody string
	for name, header := range cases {
		w, nextCalled, _ := runMiddleware(t, service, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.False(t, nextCalled, name)
		if firstBody == "" {
			firstBody = w.Body.String()
		} else {
			assert.Equal(t, firstBody, w.Body.String(), "%s must reject identically", name)
		}
	}
}
