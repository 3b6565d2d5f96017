package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

type stubTimeline struct {
	startFn  func(ctx context.Context, user, name string) (*timeline.Entry, error)
	doneFn   func(ctx context.Context, user string) (*timeline.Finished, error)
	statusFn func(ctx context.Context, user string) (*timeline.Status, error)
	treeFn   func(ctx context.Context, user string) (*taxonomy.Tree, error)
}

func (s *stubTimeline) Start(ctx context.Context, user, name string) (*timeline.Entry, error) {
	return s.startFn(ctx, user, name)
}

func (s *stubTimeline) Done(ctx context.Context, user string) (*timeline.Finished, error) {
	return s.doneFn(ctx, user)
}

func (s *stubTimeline) Status(ctx context.Context, user string) (*timeline.Status, error) {
	return s.statusFn(ctx, user)
}

func (s *stubTimeline) Tree(ctx context.Context, user string) (*taxonomy.Tree, error) {
	return s.treeFn(ctx, user)
}

var startedAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestTools_Start(t *testing.T) {
	var gotUser, gotName string
	tl := &tools{user: "ana", timeline: &stubTimeline{
		startFn: func(_ context.Context, user, name string) (*timeline.Entry, error) {
			gotUser, gotName = user, name
			return &timeline.Entry{ID: 1, ActivityID: "wc", Name: "coding", Day: "2024-03-01", StartedAt: startedAt}, nil
		},
	}}

	_, out, err := tl.start(context.Background(), nil, startInput{Activity: "work/coding"})
	require.NoError(t, err)
	require.Equal(t, "ana", gotUser)
	require.Equal(t, "work/coding", gotName)
	require.Equal(t, "coding", out.Activity)
	require.Equal(t, "2024-03-01T09:00:00Z", out.StartedAt)
	require.Empty(t, out.EndedAt)
}

func TestTools_StartCancelled(t *testing.T) {
	tl := &tools{user: "ana", timeline: &stubTimeline{
		startFn: func(context.Context, string, string) (*timeline.Entry, error) {
			return nil, taxonomy.ErrUserCancelled
		},
	}}

	_, _, err := tl.start(context.Background(), nil, startInput{Activity: "reading"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "USER_CANCELLED", apiErr.Code)
}

func TestTools_Finish(t *testing.T) {
	ended := startedAt.Add(90 * time.Minute)
	tl := &tools{user: "ana", timeline: &stubTimeline{
		doneFn: func(context.Context, string) (*timeline.Finished, error) {
			return &timeline.Finished{
				Entry:   timeline.Entry{ID: 1, Name: "coding", StartedAt: startedAt, EndedAt: &ended},
				Elapsed: 90 * time.Minute,
			}, nil
		},
	}}

	_, out, err := tl.finish(context.Background(), nil, emptyInput{})
	require.NoError(t, err)
	require.Equal(t, int64(5400), out.ElapsedSeconds)
	require.Equal(t, "1 hours 30 minutes and 0 seconds", out.Elapsed)
	require.Equal(t, "2024-03-01T10:30:00Z", out.Entry.EndedAt)
}

func TestTools_StatusIdle(t *testing.T) {
	tl := &tools{user: "ana", timeline: &stubTimeline{
		statusFn: func(context.Context, string) (*timeline.Status, error) {
			return &timeline.Status{User: "ana"}, nil
		},
	}}

	_, out, err := tl.status(context.Background(), nil, emptyInput{})
	require.NoError(t, err)
	require.False(t, out.Ongoing)
	require.Nil(t, out.Entry)
}

func TestTools_StatusOngoing(t *testing.T) {
	tl := &tools{user: "ana", timeline: &stubTimeline{
		statusFn: func(context.Context, string) (*timeline.Status, error) {
			return &timeline.Status{
				User:     "ana",
				Current:  &timeline.Entry{ID: 1, ActivityID: "wc", Name: "coding", StartedAt: startedAt},
				Activity: &taxonomy.Match{Name: "coding", ID: "wc", IsLeaf: true, Path: []string{"work"}},
				Elapsed:  2 * time.Minute,
			}, nil
		},
	}}

	_, out, err := tl.status(context.Background(), nil, emptyInput{})
	require.NoError(t, err)
	require.True(t, out.Ongoing)
	require.Equal(t, "work/coding", out.Activity)
	require.Equal(t, int64(120), out.ElapsedSeconds)
}

func TestTools_List(t *testing.T) {
	tree, err := taxonomy.Build([]taxonomy.Node{
		{ID: "w", Name: "work"},
		{ID: "wc", Name: "coding", ParentID: "w"},
		{ID: "h", Name: "home"},
	})
	require.NoError(t, err)
	tl := &tools{user: "ana", timeline: &stubTimeline{
		treeFn: func(context.Context, string) (*taxonomy.Tree, error) { return tree, nil },
	}}

	_, out, err := tl.list(context.Background(), nil, emptyInput{})
	require.NoError(t, err)
	require.Equal(t, []activityOutput{
		{ID: "w", Path: "work", Leaf: false},
		{ID: "wc", Path: "work/coding", Leaf: true},
		{ID: "h", Path: "home", Leaf: true},
	}, out.Activities)
}

func TestServer_CallTool(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	server := NewServer(Config{User: "ana", Timeline: &stubTimeline{
		startFn: func(_ context.Context, _, name string) (*timeline.Entry, error) {
			if name == "reading" {
				return nil, taxonomy.ErrUserCancelled
			}
			return &timeline.Entry{ID: 1, ActivityID: "wc", Name: "coding", Day: "2024-03-01", StartedAt: startedAt}, nil
		},
	}})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "start_activity",
		Arguments: map[string]any{"activity": "work/coding"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	var out entryOutput
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &out))
	require.Equal(t, "wc", out.ActivityID)

	result, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "start_activity",
		Arguments: map[string]any{"activity": "reading"},
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, textOf(t, result), "USER_CANCELLED")
}

func textOf(t *testing.T, result *sdkmcp.CallToolResult) string {
	t.Helper()
	for _, content := range result.Content {
		if text, ok := content.(*sdkmcp.TextContent); ok {
			return text.Text
		}
	}
	t.Fatal("tool returned no text content")
	return ""
}
