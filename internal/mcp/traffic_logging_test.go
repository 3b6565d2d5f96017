package mcp

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func TestTrafficLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	next := func(context.Context, string, sdkmcp.Request) (sdkmcp.Result, error) {
		return nil, errors.New("boom")
	}
	handler := trafficLoggingMiddleware(logger, "inbound", "ana")(next)

	_, err := handler(context.Background(), "tools/call", nil)
	require.EqualError(t, err, "boom")
	require.Contains(t, buf.String(), "user=ana")
	require.Contains(t, buf.String(), "stage=request")
	require.Contains(t, buf.String(), "error=boom")
}

func TestTrafficLoggingMiddlewareQuietAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	calls := 0
	next := func(context.Context, string, sdkmcp.Request) (sdkmcp.Result, error) {
		calls++
		return nil, nil
	}
	_, err := trafficLoggingMiddleware(logger, "outbound", "ana")(next)(context.Background(), "notifications/progress", nil)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Empty(t, buf.String())
}
