// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the ftracker MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Fitness Tracker Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	codes := make([]string, len(schema.AllWorkoutCodes))
	for i, c := range schema.AllWorkoutCodes {
		codes[i] = string(c)
	}

	// --- 1. Tool: summarize_workout ---
	s.AddTool(mcp.NewTool("summarize_workout",
		mcp.WithDescription("Compute distance, mean speed and calories for one sensor package."),
		mcp.WithString("code", mcp.Description("Activity code of the package."), mcp.Required(), mcp.Enum(codes...)),
		mcp.WithArray("data",
			mcp.Description("Positional readings: action, duration (h), weight (kg), then height (cm) for WLK or pool length (m) and pool count for SWM."),
			mcp.Required(),
			mcp.Items(map[string]any{"type": "number"}),
		),
		mcp.WithString("format", mcp.Description("Result format: json (default), csv or table."), mcp.Enum("json", "csv", "table")),
	), h.handleSummarizeWorkout)

	// --- 2. Tool: list_workout_types ---
	s.AddTool(mcp.NewTool("list_workout_types",
		mcp.WithDescription("List the accepted activity codes with their labels and expected readings."),
	), h.handleListWorkoutTypes)

	// --- 3. Tool: get_formulas ---
	s.AddTool(mcp.NewTool("get_formulas",
		mcp.WithDescription("Return the formulas and constants used for every workout type."),
	), h.handleGetFormulas)

	// --- 4. Tool: get_history_status ---
	s.AddTool(mcp.NewTool("get_history_status",
		mcp.WithDescription("Report the backend and row counts of the report history store."),
	), h.handleGetHistoryStatus)

	return s
}

// StartMCPServer starts the ftracker MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
