package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ganot/lifelog/internal/mcp"
	"github.com/ganot/lifelog/internal/prompt"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the timeline to MCP clients over stdio",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, a *app, _ []string) error {
			name, err := a.user(ctx, c.user)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := mcp.NewServer(mcp.Config{
				Timeline: a.timeline(prompt.Decline{}),
				User:     name,
				Version:  version,
				Logger:   a.logger,
			})
			a.logger.Info("starting stdio transport", "user", name)

			// Run blocks until stdin closes or the context is cancelled.
			if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
				return err
			}
			a.logger.Info("shutting down")
			return nil
		}),
	}
}
