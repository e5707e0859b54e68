package shopsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// url builds a complete URL by appending the path to the base URL.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// marshalPayload encodes a request payload as JSON. A nil payload means no
// request body. The bytes are kept rather than streamed so the authorized
// path can replay the identical request after a token refresh.
func marshalPayload(payload any) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return body, nil
}

// send performs a single HTTP exchange. An empty token omits the
// Authorization header.
func (c *SDKClient) send(
	ctx context.Context,
	method, path string,
	body []byte,
	token string,
) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// doJSON performs an unauthenticated JSON request and decodes the response
// into target.
func (c *SDKClient) doJSON(
	ctx context.Context,
	method, path string,
	payload, target any,
) error {
	body, err := marshalPayload(payload)
	if err != nil {
		return err
	}

	resp, err := c.send(ctx, method, path, body, "")
	if err != nil {
		return err
	}

	return decodeJSON(resp, target)
}

// decodeJSON decodes a JSON response into the target. Non-2xx responses
// are mapped to a typed AuthError, ValidationError or APIError. A nil
// target discards the body (endpoints that return 204 or an unused
// resource).
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	// Read body once for both error parsing and success decoding
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp.StatusCode, bodyBytes)
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
