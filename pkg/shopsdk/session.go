package shopsdk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yeneshop/storefront/pkg/slogx"
	"github.com/yeneshop/storefront/pkg/storage"
)

// Session owns the access/refresh token pair persisted in durable storage
// and drives the authorized request path: it attaches the bearer
// credential to every outgoing request and transparently recovers from a
// 401 with at most one token refresh per request.
//
// A Session without tokens is still usable: guest checkout goes through
// the same path, it just carries no Authorization header.
type Session struct {
	client *SDKClient
	store  storage.Store

	// mu serialises refreshes so concurrent 401s don't interleave their
	// read-check-write of the stored access token. Each request still
	// performs its own refresh (no coalescing), which is redundant but
	// harmless: refresh is idempotent on the server side.
	mu sync.Mutex
}

// Login authenticates with email and password. On success both tokens are
// persisted; on failure the previously stored session, if any, is left
// untouched.
func (s *Session) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/user/login/", loginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}

	if err := s.storeTokens(ctx, out.Access, out.Refresh); err != nil {
		return nil, err
	}

	return &out, nil
}

// Register creates a new account. It does not log the new user in: the
// returned tokens are not persisted, matching the storefront flow where
// registration lands on the login page.
func (s *Session) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/user/register/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout clears both tokens from storage unconditionally. It never fails;
// a storage error at worst leaves a stale token that the next 401 will
// clear again.
func (s *Session) Logout(ctx context.Context) {
	log := slogx.FromContext(ctx)
	if err := s.store.Delete(ctx, storage.KeyAccessToken); err != nil {
		log.Warn("failed to delete access token", "error", err)
	}
	if err := s.store.Delete(ctx, storage.KeyRefreshToken); err != nil {
		log.Warn("failed to delete refresh token", "error", err)
	}
}

// IsAuthenticated reports whether a non-empty access token is stored. This
// is a presence check only: it does not verify expiry or validity.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	return s.accessToken(ctx) != ""
}

// Claims returns the stored access token's JWT claims without verifying
// the signature. Display use only (user id, expiry countdowns); never an
// authentication decision, which belongs to the backend.
func (s *Session) Claims(ctx context.Context) (jwt.MapClaims, error) {
	token := s.accessToken(ctx)
	if token == "" {
		return nil, ErrNoSession
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}
	return claims, nil
}

// do is the authorized request path. It attaches the bearer token when one
// is stored, and on a 401 attempts exactly one refresh-and-replay:
//
//   - refresh succeeds: the new access token is persisted, the request is
//     replayed once with it, and that response is decoded as-is. A second
//     401 propagates without another refresh.
//   - refresh fails (no refresh token, or the refresh call itself is
//     rejected or unreachable): both tokens are cleared and the original
//     unauthorized failure is returned.
func (s *Session) do(ctx context.Context, method, path string, payload, target any) error {
	body, err := marshalPayload(payload)
	if err != nil {
		return err
	}

	resp, err := s.client.send(ctx, method, path, body, s.accessToken(ctx))
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return decodeJSON(resp, target)
	}

	// Keep the original failure body so it can be surfaced if the refresh
	// does not pan out.
	origBody, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	log := slogx.FromContext(ctx)
	log.Debug("request unauthorized, attempting token refresh", "method", method, "path", path)

	s.mu.Lock()
	newAccess, refreshErr := s.refresh(ctx)
	s.mu.Unlock()

	if refreshErr != nil {
		s.clearTokens(ctx)
		log.Warn("token refresh failed, session cleared", "error", refreshErr)
		return parseErrorResponse(http.StatusUnauthorized, origBody)
	}

	replay, err := s.client.send(ctx, method, path, body, newAccess)
	if err != nil {
		return err
	}

	return decodeJSON(replay, target)
}

// refresh exchanges the stored refresh token for a new access token and
// persists it. It makes no network call when no refresh token is stored.
func (s *Session) refresh(ctx context.Context) (string, error) {
	refreshToken := s.refreshToken(ctx)
	if refreshToken == "" {
		return "", errNoRefreshToken
	}

	var out tokenRefreshResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/user/token/refresh/",
		tokenRefreshRequest{Refresh: refreshToken}, &out)
	if err != nil {
		return "", err
	}

	if err := s.store.Set(ctx, storage.KeyAccessToken, out.Access); err != nil {
		return "", fmt.Errorf("failed to persist refreshed access token: %w", err)
	}

	return out.Access, nil
}

func (s *Session) storeTokens(ctx context.Context, access, refresh string) error {
	if err := s.store.Set(ctx, storage.KeyAccessToken, access); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyRefreshToken, refresh); err != nil {
		return fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return nil
}

func (s *Session) clearTokens(ctx context.Context) {
	_ = s.store.Delete(ctx, storage.KeyAccessToken)
	_ = s.store.Delete(ctx, storage.KeyRefreshToken)
}

// accessToken reads the stored access token, treating a missing key as
// logged out.
func (s *Session) accessToken(ctx context.Context) string {
	return s.storedToken(ctx, storage.KeyAccessToken)
}

func (s *Session) refreshToken(ctx context.Context) string {
	return s.storedToken(ctx, storage.KeyRefreshToken)
}

func (s *Session) storedToken(ctx context.Context, key string) string {
	value, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slogx.FromContext(ctx).Warn("failed to read stored token", "key", key, "error", err)
		}
		return ""
	}
	return value
}
