package shopsdk

import (
	"net/http"
	"strings"
	"time"

	"github.com/yeneshop/storefront/pkg/httpx"
	"github.com/yeneshop/storefront/pkg/storage"
)

// SDKClient is a client for the storefront backend API. It provides the
// unauthenticated catalog operations and creates Sessions for everything
// that goes through the authorized request path.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new storefront API client with a self-imposed
// request rate limit.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: httpx.RateLimited(nil, httpx.DefaultLimit),
		},
	}
}

// NewSession creates a Session whose token pair lives in the given store
// under the access_token and refresh_token keys. The store is the source
// of truth: a session created over a store that already holds tokens (from
// a previous run) is immediately authenticated.
func (c *SDKClient) NewSession(store storage.Store) *Session {
	return &Session{client: c, store: store}
}
