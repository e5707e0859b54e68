package slogx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Service: "storefront",
		Version: "test",
		Level:   "debug",
		Format:  "json",
		Output:  &buf,
	})

	logger.Debug("cart loaded", "items", 3)

	out := buf.String()
	require.Contains(t, out, `"service":"storefront"`)
	require.Contains(t, out, `"msg":"cart loaded"`)
	require.Contains(t, out, `"items":3`)
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Service: "storefront", Level: "warn", Output: &buf})

	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	require.NotContains(t, out, "suppressed")
	require.Contains(t, out, "kept")
}

func TestContextRoundTrip(t *testing.T) {
	base := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := WithContext(context.Background(), base)
	require.Same(t, base, FromContext(ctx))

	// No logger attached falls back to the default.
	require.NotNil(t, FromContext(context.Background()))
}
