package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type tools struct {
	timeline TimelineService
	user     string
}

type startInput struct {
	Activity string `json:"activity" jsonschema:"activity name, or a slash-delimited category path such as work/coding"`
}

type emptyInput struct{}

type entryOutput struct {
	ID         int64  `json:"id"`
	Activity   string `json:"activity"`
	ActivityID string `json:"activity_id"`
	Day        string `json:"day"`
	StartedAt  string `json:"started_at"`
	EndedAt    string `json:"ended_at,omitempty"`
}

type finishOutput struct {
	Entry          entryOutput `json:"entry"`
	ElapsedSeconds int64       `json:"elapsed_seconds"`
	Elapsed        string      `json:"elapsed"`
}

type statusOutput struct {
	User           string       `json:"user"`
	Ongoing        bool         `json:"ongoing"`
	Activity       string       `json:"activity,omitempty"`
	Entry          *entryOutput `json:"entry,omitempty"`
	ElapsedSeconds int64        `json:"elapsed_seconds,omitempty"`
	Elapsed        string       `json:"elapsed,omitempty"`
}

type activityOutput struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Leaf bool   `json:"leaf"`
}

type listOutput struct {
	Activities []activityOutput `json:"activities"`
}

func registerTools(server *sdkmcp.Server, t *tools) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "start_activity",
		Description: "Start tracking an activity, finishing the ongoing one first",
	}, t.start)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "finish_activity",
		Description: "Finish the ongoing activity and report how long it ran",
	}, t.finish)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_status",
		Description: "Show the ongoing activity, its category path and elapsed time",
	}, t.status)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_activities",
		Description: "List every activity and category as slash-delimited paths",
	}, t.list)
}

func (t *tools) start(ctx context.Context, _ *sdkmcp.CallToolRequest, in startInput) (*sdkmcp.CallToolResult, entryOutput, error) {
	entry, err := t.timeline.Start(ctx, t.user, in.Activity)
	if err != nil {
		return nil, entryOutput{}, toolError(err)
	}
	return nil, toEntryOutput(*entry), nil
}

func (t *tools) finish(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, finishOutput, error) {
	finished, err := t.timeline.Done(ctx, t.user)
	if err != nil {
		return nil, finishOutput{}, toolError(err)
	}
	return nil, finishOutput{
		Entry:          toEntryOutput(finished.Entry),
		ElapsedSeconds: int64(finished.Elapsed / time.Second),
		Elapsed:        timeline.ElapsedPhrase(finished.Elapsed),
	}, nil
}

func (t *tools) status(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, statusOutput, error) {
	status, err := t.timeline.Status(ctx, t.user)
	if err != nil {
		return nil, statusOutput{}, toolError(err)
	}
	out := statusOutput{User: status.User}
	if status.Current == nil {
		return nil, out, nil
	}
	entry := toEntryOutput(*status.Current)
	out.Ongoing = true
	out.Activity = status.Activity.FullName()
	out.Entry = &entry
	out.ElapsedSeconds = int64(status.Elapsed / time.Second)
	out.Elapsed = timeline.ElapsedPhrase(status.Elapsed)
	return nil, out, nil
}

func (t *tools) list(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, listOutput, error) {
	tree, err := t.timeline.Tree(ctx, t.user)
	if err != nil {
		return nil, listOutput{}, toolError(err)
	}
	out := listOutput{Activities: []activityOutput{}}
	tree.Walk(func(n taxonomy.Node, path []string) bool {
		out.Activities = append(out.Activities, activityOutput{
			ID:   n.ID,
			Path: strings.Join(append(path[:len(path):len(path)], n.Name), "/"),
			Leaf: n.IsLeaf(),
		})
		return true
	})
	return nil, out, nil
}

func toEntryOutput(e timeline.Entry) entryOutput {
	out := entryOutput{
		ID:         e.ID,
		Activity:   e.Name,
		ActivityID: e.ActivityID,
		Day:        e.Day,
		StartedAt:  e.StartedAt.UTC().Format(time.RFC3339),
	}
	if e.EndedAt != nil {
		out.EndedAt = e.EndedAt.UTC().Format(time.RFC3339)
	}
	return out
}
