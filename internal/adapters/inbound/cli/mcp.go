package cli

import (
	mcpadapter "github.com/pipecheck/pipecheck/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the pipecheck MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var workDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start pipecheck MCP server (stdio)",
		Long:  "Start the pipecheck MCP server using stdio transport, so assistants can run the preflight and inspect the verdict.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if workDir == "" {
				workDir = "."
			}
			s := mcpadapter.NewPipecheckMCPServer(workDir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&workDir, "path", "", "Work tree of the pipeline (defaults to current working directory)")

	return cmd
}
