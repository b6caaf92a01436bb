package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/ftracker/core"
	"github.com/huangsam/ftracker/core/training"
	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/internal/outwriter"
	"github.com/huangsam/ftracker/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

// summarizeResult is the payload of summarize_workout.
type summarizeResult struct {
	Message string                `json:"message"`
	Report  schema.EnrichedReport `json:"report"`
}

func (h *toolHandler) handleSummarizeWorkout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := request.GetString("code", "")
	data, err := floatArgs(request.GetArguments()["data"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid data: %v", err)), nil
	}

	reports, err := core.BuildReports(ctx, []schema.Package{{Code: schema.WorkoutCode(code), Data: data}})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}

	format := strings.ToLower(request.GetString("format", string(schema.JSONOut)))
	switch schema.OutputMode(format) {
	case schema.JSONOut:
		enriched := schema.EnrichReports(reports)[0]
		return jsonResult(summarizeResult{Message: enriched.Message, Report: enriched})
	case schema.CSVOut, schema.TableOut:
		cfg := h.baseCfg.Clone()
		cfg.Output = schema.OutputMode(format)
		cfg.UseColors = false
		if cfg.Precision <= 0 {
			cfg.Precision = contract.DefaultPrecision
		}
		var buf bytes.Buffer
		if err := outwriter.WriteReports(&buf, reports, cfg); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(buf.String()), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("invalid format %q: must be json, csv, table", format)), nil
	}
}

func (h *toolHandler) handleListWorkoutTypes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(training.WorkoutTypes())
}

func (h *toolHandler) handleGetFormulas(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(training.Formulas())
}

func (h *toolHandler) handleGetHistoryStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := schema.HistoryStatus{Backend: string(h.baseCfg.HistoryBackend)}
	if h.mgr != nil {
		if store := h.mgr.GetHistoryStore(); store != nil {
			var err error
			if status, err = store.GetStatus(); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("history status failed: %v", err)), nil
			}
		}
	}
	return jsonResult(status)
}

// jsonResult renders v as indented JSON; encoding failures become tool errors.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// floatArgs converts a JSON array argument into readings.
func floatArgs(raw any) ([]float64, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array of numbers, got %T", raw)
	}
	out := make([]float64, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case float64:
			out[i] = v
		case int:
			out[i] = float64(v)
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = f
		default:
			return nil, fmt.Errorf("item %d: expected a number, got %T", i, item)
		}
	}
	return out, nil
}
