// Package server hosts the tool registry over MCP, either on stdio or over
// streamable HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/metaquery/searchmcp/pkg/tools"
)

// Config identifies the server and sets the HTTP listen address.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Addr    string `yaml:"addr"`
}

func (c Config) WithDefaults() Config {
	if c.Name == "" {
		c.Name = "searchmcp"
	}
	if c.Version == "" {
		c.Version = "dev"
	}
	if c.Addr == "" {
		c.Addr = ":8933"
	}
	return c
}

// Server wires the tool registry into an MCP server.
type Server struct {
	cfg      Config
	registry *tools.Registry
	log      zerolog.Logger
}

// New creates a server for the given registry.
func New(cfg Config, registry *tools.Registry, log zerolog.Logger) *Server {
	return &Server{cfg: cfg.WithDefaults(), registry: registry, log: log}
}

// mcpServer builds a fresh MCP server with every registered tool attached.
// Each HTTP session gets its own instance; stdio uses a single one.
func (s *Server) mcpServer() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: s.cfg.Name, Version: s.cfg.Version}, nil)
	for _, tool := range s.registry.All() {
		srv.AddTool(&tool.Tool, s.handlerFor(tool))
	}
	return srv
}

func (s *Server) handlerFor(tool *tools.Tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{}
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}
		}

		log := s.log.With().Str("tool", tool.Name).Logger()
		result, err := tool.Execute(log.WithContext(ctx), args)
		if err != nil {
			return nil, err
		}
		if result.IsError() {
			log.Warn().Str("error", result.Error).Msg("Tool call failed")
		}
		return toCallToolResult(result), nil
	}
}

// toCallToolResult converts an internal tool result to the wire shape.
func toCallToolResult(result *tools.Result) *mcp.CallToolResult {
	out := &mcp.CallToolResult{IsError: result.IsError()}
	for _, block := range result.Content {
		if block.Type == "text" {
			out.Content = append(out.Content, &mcp.TextContent{Text: block.Text})
		}
	}
	if len(out.Content) == 0 {
		out.Content = append(out.Content, &mcp.TextContent{Text: result.Text()})
	}
	return out
}

// RunStdio serves MCP over stdin/stdout until ctx is cancelled or the peer
// disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	s.log.Info().Str("server", s.cfg.Name).Str("version", s.cfg.Version).Msg("Serving MCP on stdio")
	return s.mcpServer().Run(ctx, &mcp.StdioTransport{})
}
