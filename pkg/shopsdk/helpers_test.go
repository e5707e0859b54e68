package shopsdk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

/*
 * Shared helpers for SDK tests: a signing secret for minting real access
 * tokens, a DRF-style fake backend, and request assertions.
 */

var testSigningSecret = []byte("test-signing-secret")

// mintAccessToken mints a signed HS256 access token the fake backend will
// accept until ttl elapses. Negative ttl produces an already-expired token.
func mintAccessToken(t *testing.T, sub string, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":        sub,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString(testSigningSecret)
	require.NoError(t, err)
	return signed
}

// bearerToken extracts the bearer credential from a request, "" when the
// Authorization header is absent.
func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

// verifyBearer validates the request's bearer token the way the backend
// does. It writes the DRF 401 body and returns false when the token is
// missing, malformed or expired.
func verifyBearer(w http.ResponseWriter, r *http.Request) bool {
	token := bearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized,
			map[string]string{"detail": "Authentication credentials were not provided."})
		return false
	}

	_, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return testSigningSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized,
			map[string]string{"detail": "Given token not valid for any token type"})
		return false
	}

	return true
}

func decodeBody(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// newTestClient wires an SDKClient to an httptest server running the given
// handler.
func newTestClient(t *testing.T, handler http.Handler) *SDKClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSDKClient(srv.URL)
}
