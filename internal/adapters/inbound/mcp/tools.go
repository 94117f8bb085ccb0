package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configadapter "github.com/pipecheck/pipecheck/internal/adapters/outbound/config"
	"github.com/pipecheck/pipecheck/internal/adapters/outbound/gitstate"
	"github.com/pipecheck/pipecheck/internal/adapters/outbound/hostapi"
	"github.com/pipecheck/pipecheck/internal/adapters/outbound/jobstore"
	"github.com/pipecheck/pipecheck/internal/application"
	"github.com/pipecheck/pipecheck/internal/domain"
	"github.com/pipecheck/pipecheck/internal/domain/checks"
)

// registerTools registers all pipecheck MCP tools on the given server.
func registerTools(s *server.MCPServer, workDir string) {
	s.AddTool(
		mcplib.NewTool("pipecheck_preflight",
			mcplib.WithDescription("Run every preflight check against the pipeline work tree and return the full run record and verdict as JSON"),
			mcplib.WithBoolean("strict", mcplib.Description("Count warnings against the exit code")),
		),
		handlePreflight(workDir),
	)
}

func handlePreflight(workDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := configadapter.New().Load(workDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		deps := checks.Deps{
			Git:     gitstate.Open(workDir),
			Host:    hostapi.New(workDir),
			Jobs:    jobstore.New(filepath.Join(workDir, cfg.JobsFile)),
			Cfg:     cfg,
			WorkDir: workDir,
		}

		run, err := application.NewPreflightService(deps).Run(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("preflight aborted: %v", err)), nil
		}

		verdict := domain.Aggregate(run)
		if request.GetBool("strict", false) {
			verdict = domain.AggregateStrict(run)
		}

		return jsonResult(struct {
			*domain.Run
			Verdict domain.Verdict `json:"verdict"`
			Label   string         `json:"label"`
		}{run, verdict, verdict.Label()})
	}
}

func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
