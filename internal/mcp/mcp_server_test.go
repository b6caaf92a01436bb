package mcp_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/ftracker/internal/contract"
	"github.com/huangsam/ftracker/internal/iocache"
	mcp_internal "github.com/huangsam/ftracker/internal/mcp"
	"github.com/huangsam/ftracker/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, cfg *contract.Config, mgr contract.HistoryManager, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(cfg, mgr)
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestSummarizeWorkout(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 3}

	res := callTool(t, cfg, nil, "summarize_workout", map[string]any{
		"code": "RUN",
		"data": []any{15000.0, 1.0, 75.0},
	})
	require.False(t, res.IsError)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	assert.Equal(t, "Training type: Running; Duration: 1.000 h; Distance: 9.750 km; Mean speed: 9.750 km/h; Calories burned: 797.805.", payload["message"])

	report := payload["report"].(map[string]any)
	assert.Equal(t, "RUN", report["code"])
	assert.Equal(t, 9.75, report["distance"])
	assert.Equal(t, "Vigorous", report["effort"])
}

func TestSummarizeWorkout_Errors(t *testing.T) {
	cfg := &contract.Config{}

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"invalid code", map[string]any{"code": "BIKE", "data": []any{1.0, 2.0, 3.0}}, "invalid workout code"},
		{"arity mismatch", map[string]any{"code": "WLK", "data": []any{9000.0, 1.0, 75.0}}, "wrong number of package parameters"},
		{"zero duration", map[string]any{"code": "SWM", "data": []any{720.0, 0.0, 80.0, 25.0, 40.0}}, "workout duration is zero"},
		{"missing data", map[string]any{"code": "RUN"}, "invalid data"},
		{"non numeric data", map[string]any{"code": "RUN", "data": []any{"a", 1.0, 2.0}}, "expected a number"},
		{"zero height", map[string]any{"code": "WLK", "data": []any{9000.0, 1.0, 75.0, 0.0}}, "walker height is zero"},
		{"fractional steps", map[string]any{"code": "RUN", "data": []any{9000.5, 1.0, 75.0}}, "reading must be a whole number"},
		{"unknown format", map[string]any{"code": "RUN", "data": []any{15000.0, 1.0, 75.0}, "format": "parquet"}, "invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, cfg, nil, "summarize_workout", tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, resultText(t, res), tt.want)
		})
	}
}

func TestSummarizeWorkout_CSV(t *testing.T) {
	// Precision 0 falls back to the default
	cfg := &contract.Config{Output: schema.TextOut, UseColors: true}

	res := callTool(t, cfg, nil, "summarize_workout", map[string]any{
		"code":   "RUN",
		"data":   []any{15000.0, 1.0, 75.0},
		"format": "CSV",
	})
	require.False(t, res.IsError)

	lines := strings.Split(strings.TrimSpace(resultText(t, res)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "seq,code,training_type,duration_h,distance_km,speed_kmh,calories,effort", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,RUN,Running,1.000,9.750,9.750,"), lines[1])

	// The server config is cloned, never mutated
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, 0, cfg.Precision)
	assert.True(t, cfg.UseColors)
}

func TestSummarizeWorkout_Table(t *testing.T) {
	cfg := &contract.Config{Precision: 2, Width: 120}

	res := callTool(t, cfg, nil, "summarize_workout", map[string]any{
		"code":   "SWM",
		"data":   []any{720.0, 1.0, 80.0, 25.0, 40.0},
		"format": "table",
	})
	require.False(t, res.IsError)

	out := resultText(t, res)
	assert.Contains(t, out, "Swimming")
	assert.Contains(t, out, "1.00")
	assert.NotContains(t, out, "\x1b[", "table output over MCP is never colored")
}

func TestListWorkoutTypes(t *testing.T) {
	res := callTool(t, &contract.Config{}, nil, "list_workout_types", nil)
	require.False(t, res.IsError)

	var types []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &types))
	require.Len(t, types, 3)

	labels := map[string]string{}
	for _, wt := range types {
		labels[wt["code"].(string)] = wt["label"].(string)
	}
	assert.Equal(t, map[string]string{"RUN": "Running", "WLK": "SportsWalking", "SWM": "Swimming"}, labels)
}

func TestGetFormulas(t *testing.T) {
	res := callTool(t, &contract.Config{}, nil, "get_formulas", nil)
	require.False(t, res.IsError)

	var model schema.FormulasRenderModel
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &model))
	assert.Equal(t, "Workout Formulas", model.Title)
	assert.Len(t, model.Workouts, 3)
}

func TestGetHistoryStatus(t *testing.T) {
	t.Run("no manager", func(t *testing.T) {
		res := callTool(t, &contract.Config{HistoryBackend: schema.NoneBackend}, nil, "get_history_status", nil)
		require.False(t, res.IsError)
		assert.Contains(t, resultText(t, res), `"backend": "none"`)
	})

	t.Run("sqlite store", func(t *testing.T) {
		store, err := iocache.NewHistoryStore(schema.SQLiteBackend, ":memory:")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		runID, err := store.BeginRun(time.Now(), nil)
		require.NoError(t, err)
		require.NoError(t, store.EndRun(runID, time.Now(), 0))

		mgr := &iocache.MockHistoryManager{}
		mgr.On("GetHistoryStore").Return(store)

		res := callTool(t, &contract.Config{HistoryBackend: schema.SQLiteBackend}, mgr, "get_history_status", nil)
		require.False(t, res.IsError)

		var status schema.HistoryStatus
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &status))
		assert.Equal(t, "sqlite", status.Backend)
		assert.Equal(t, 1, status.TotalRuns)
		assert.True(t, status.Connected)
	})
}
