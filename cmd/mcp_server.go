package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/hyprland-community/hyprmon/internal/hypr"
	"github.com/hyprland-community/hyprmon/internal/state"
)

// mcpServer wraps the MCP server with the projection cache.
type mcpServer struct {
	cache *queryCache
	mcp   *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with the three
// hyprmon projections as tools.
func newMCPServer(cfg MCPConfig) *mcpServer {
	s := &mcpServer{
		cache: newQueryCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"hyprmon",
		"1.0.0",
	)

	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// monitors
	s.mcp.AddTool(
		mcp.NewTool("monitors",
			mcp.WithDescription("Read the current Hyprland monitor list with geometry, focus and workspace assignment"),
		),
		s.handleMonitors,
	)

	// workspaces
	s.mcp.AddTool(
		mcp.NewTool("workspaces",
			mcp.WithDescription("Read the current Hyprland workspaces, annotated with shown (assigned to a monitor) and active (focused on its monitor)"),
			mcp.WithString("monitor", mcp.Description("Only workspaces on this monitor")),
			mcp.WithBoolean("special", mcp.Description("Only special workspaces (false: only regular ones)")),
			mcp.WithBoolean("config", mcp.Description("Merge in workspaces declared in hyprland.conf")),
		),
		s.handleWorkspaces,
	)

	// clients
	s.mcp.AddTool(
		mcp.NewTool("clients",
			mcp.WithDescription("Read the current Hyprland clients (windows), each annotated with the name of its monitor"),
			mcp.WithString("monitor", mcp.Description("Only clients on this monitor")),
			mcp.WithString("workspace", mcp.Description("Only clients on this workspace: a bare id (\"3\") or a name (\"name:web\")")),
		),
		s.handleClients,
	)
}

// resultToText serializes a projection to YAML for the MCP response.
func resultToText(v interface{}) (string, error) {
	if raw, ok := v.(json.RawMessage); ok {
		var decoded interface{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return "", err
		}
		v = decoded
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *mcpServer) projectTool(kind state.Kind, workspace state.WorkspaceFilter, client state.ClientFilter, rules []hypr.WorkspaceRule) (*mcp.CallToolResult, error) {
	result, err := s.cache.project(kind, workspace, client, rules)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := resultToText(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *mcpServer) handleMonitors(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.projectTool(state.Monitors, state.WorkspaceFilter{}, state.ClientFilter{}, nil)
}

func (s *mcpServer) handleWorkspaces(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	filter := state.WorkspaceFilter{
		Monitor: stringParam(params, "monitor", ""),
	}
	if special, ok := params["special"].(bool); ok {
		filter.Special = &special
	}

	var rules []hypr.WorkspaceRule
	if boolParam(params, "config", false) {
		loaded, err := loadRules()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		rules = loaded
		if rules == nil {
			rules = []hypr.WorkspaceRule{}
		}
	}

	return s.projectTool(state.Workspaces, filter, state.ClientFilter{}, rules)
}

func (s *mcpServer) handleClients(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	filter := state.ClientFilter{
		Monitor:   stringParam(params, "monitor", ""),
		Workspace: stringParam(params, "workspace", ""),
	}
	return s.projectTool(state.Clients, state.WorkspaceFilter{}, filter, nil)
}

func stringParam(params map[string]interface{}, key, fallback string) string {
	if s, ok := params[key].(string); ok {
		return s
	}
	return fallback
}

func boolParam(params map[string]interface{}, key string, fallback bool) bool {
	if b, ok := params[key].(bool); ok {
		return b
	}
	return fallback
}
