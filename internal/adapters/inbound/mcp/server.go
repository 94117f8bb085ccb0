package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewPipecheckMCPServer creates an MCP server exposing the preflight run as
// a tool. The workDir is the pipeline work tree to validate.
func NewPipecheckMCPServer(workDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"pipecheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, workDir)

	return s
}
