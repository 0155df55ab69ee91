package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewMakeCAMCPServer creates a new MCP server with all make-ca tools and
// resources registered. The projectPath is the root directory of the
// project to scaffold.
func NewMakeCAMCPServer(projectPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"make-ca",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, version)
	registerResources(s, projectPath)

	return s
}
