package mcp

import (
	"context"
	"log/slog"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `Personal time tracker. Start an activity with start_activity, finish it
with finish_activity and check what is running with get_status. Activities live in a category
tree; unknown single names cannot be created here, so pass an explicit path such as
"work/coding" to create new ones. list_activities shows the tree.`

// TimelineService defines timeline operations needed by MCP.
type TimelineService interface {
	Start(ctx context.Context, user, name string) (*timeline.Entry, error)
	Done(ctx context.Context, user string) (*timeline.Finished, error)
	Status(ctx context.Context, user string) (*timeline.Status, error)
	Tree(ctx context.Context, user string) (*taxonomy.Tree, error)
}

// Config contains server configuration.
type Config struct {
	Timeline TimelineService
	User     string
	Version  string
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	version := cfg.Version
	if version == "" {
		version = "dev"
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "life",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound", cfg.User))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound", cfg.User))

	registerTools(server, &tools{timeline: cfg.Timeline, user: cfg.User})

	return server
}
