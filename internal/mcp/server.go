// Package mcp exposes the SplitFit data over the Model Context Protocol, so
// an assistant can query workout history, the split rotation, and body
// metrics directly.
package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// handlers holds dependencies for MCP tool handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// New creates an MCP server with all tools registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("SplitFit", version,
		server.WithToolCapabilities(false),
		server.WithInstructions("SplitFit workout tracking server. Query workout history, the next split day in the user's rotation, body metrics, and per-exercise performance. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetNextSplitDay, Handler: h.getNextSplitDay},
		server.ServerTool{Tool: toolGetBodyMetrics, Handler: h.getBodyMetrics},
		server.ServerTool{Tool: toolGetExercisePerformance, Handler: h.getExercisePerformance},
		server.ServerTool{Tool: toolGetInsights, Handler: h.getInsights},
	)

	return s
}
