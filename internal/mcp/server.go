// Package mcp implements the Model Context Protocol server for patternkit.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/ajitpratap0/patternkit/internal/catalog"
)

// Server wraps an MCPServer with the prototype catalog.
type Server struct {
	mcp     *mcpserver.MCPServer
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewServer creates a new MCP server. If cat is nil, every tool call
// returns an error response instead of panicking.
func NewServer(cat *catalog.Catalog, logger *slog.Logger) *Server {
	s := &Server{
		catalog: cat,
		logger:  logger,
	}

	mcpSrv := mcpserver.NewMCPServer(
		"patternkit",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	mcpSrv.AddTool(buildListTool(), s.handleList)
	mcpSrv.AddTool(buildGetTool(), s.handleGet)
	mcpSrv.AddTool(buildCloneTool(), s.handleClone)
	mcpSrv.AddTool(buildRegisterTool(), s.handleRegister)

	s.mcp = mcpSrv
	return s
}

// MCPServer returns the underlying mcp-go MCPServer for use with ServeStdio.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// HandleList is the exported handler for the "list_prototypes" tool.
// It is exposed for direct testing without the mcp-go transport layer.
func (s *Server) HandleList(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleList(ctx, req)
}

// HandleGet is the exported handler for the "get_prototype" tool.
func (s *Server) HandleGet(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleGet(ctx, req)
}

// HandleClone is the exported handler for the "clone_prototype" tool.
func (s *Server) HandleClone(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleClone(ctx, req)
}

// HandleRegister is the exported handler for the "register_prototype" tool.
func (s *Server) HandleRegister(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleRegister(ctx, req)
}

// --- helpers ---

// toolResultJSON marshals v to JSON and returns it as a tool text result.
func toolResultJSON(v any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcp: marshaling result: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}

// kindArg reads and validates the required "kind" argument.
func kindArg(req mcpgo.CallToolRequest) (catalog.Kind, *mcpgo.CallToolResult) {
	k := catalog.Kind(strings.TrimSpace(req.GetString("kind", "")))
	if k == "" {
		return "", mcpgo.NewToolResultError("kind is required and must not be empty")
	}
	if !k.IsValid() {
		return "", mcpgo.NewToolResultErrorf("invalid kind %q: must be one of user, invoice, configuration", k)
	}
	return k, nil
}

// catalogError renders a catalog failure as a tool error result.
func catalogError(op string, err error) *mcpgo.CallToolResult {
	return mcpgo.NewToolResultErrorf("%s failed: %s", op, err.Error())
}

// --- tool definitions ---

func buildListTool() mcpgo.Tool {
	return mcpgo.NewTool("list_prototypes",
		mcpgo.WithDescription("List registered prototype types, for one kind or for every kind."),
		mcpgo.WithString("kind",
			mcpgo.Description("Entity kind: user, invoice, or configuration (default: all kinds)"),
		),
	)
}

func buildGetTool() mcpgo.Tool {
	return mcpgo.NewTool("get_prototype",
		mcpgo.WithDescription("Return the registered prototype of a kind under a type, without cloning it."),
		mcpgo.WithString("kind",
			mcpgo.Required(),
			mcpgo.Description("Entity kind: user, invoice, or configuration"),
		),
		mcpgo.WithString("type",
			mcpgo.Required(),
			mcpgo.Description("Discriminator, e.g. admin, sales, basic"),
		),
	)
}

func buildCloneTool() mcpgo.Tool {
	return mcpgo.NewTool("clone_prototype",
		mcpgo.WithDescription("Mint an independent copy of a registered prototype."),
		mcpgo.WithString("kind",
			mcpgo.Required(),
			mcpgo.Description("Entity kind: user, invoice, or configuration"),
		),
		mcpgo.WithString("type",
			mcpgo.Required(),
			mcpgo.Description("Discriminator, e.g. admin, sales, basic"),
		),
	)
}

func buildRegisterTool() mcpgo.Tool {
	return mcpgo.NewTool("register_prototype",
		mcpgo.WithDescription("Register a prototype from its JSON form. Replaces any prototype with the same type."),
		mcpgo.WithString("kind",
			mcpgo.Required(),
			mcpgo.Description("Entity kind: user, invoice, or configuration"),
		),
		mcpgo.WithString("prototype",
			mcpgo.Required(),
			mcpgo.Description(`Prototype JSON including its "type" field`),
		),
	)
}

// --- tool handlers ---

// handleList returns registered types for one kind, or for all kinds when none is given.
func (s *Server) handleList(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.catalog == nil {
		return mcpgo.NewToolResultError("catalog is unavailable"), nil
	}

	kinds := s.catalog.Kinds()
	if req.GetString("kind", "") != "" {
		k, errResult := kindArg(req)
		if errResult != nil {
			return errResult, nil
		}
		kinds = []catalog.Kind{k}
	}

	result := make(map[catalog.Kind][]string, len(kinds))
	for _, k := range kinds {
		types, err := s.catalog.Types(k)
		if err != nil {
			return catalogError("list", err), nil
		}
		result[k] = types
	}
	return toolResultJSON(result)
}

// handleGet returns a registered prototype as JSON.
func (s *Server) handleGet(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.catalog == nil {
		return mcpgo.NewToolResultError("catalog is unavailable"), nil
	}

	kind, errResult := kindArg(req)
	if errResult != nil {
		return errResult, nil
	}
	typ := strings.TrimSpace(req.GetString("type", ""))
	if typ == "" {
		return mcpgo.NewToolResultError("type is required and must not be empty"), nil
	}

	p, err := s.catalog.Get(kind, typ)
	if err != nil {
		return catalogError("get", err), nil
	}
	return toolResultJSON(p)
}

// handleClone clones a registered prototype and returns the copy as JSON.
func (s *Server) handleClone(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.catalog == nil {
		return mcpgo.NewToolResultError("catalog is unavailable"), nil
	}

	kind, errResult := kindArg(req)
	if errResult != nil {
		return errResult, nil
	}
	typ := strings.TrimSpace(req.GetString("type", ""))
	if typ == "" {
		return mcpgo.NewToolResultError("type is required and must not be empty"), nil
	}

	c, err := s.catalog.Clone(kind, typ)
	if err != nil {
		return catalogError("clone", err), nil
	}

	s.logger.Info("mcp: cloned prototype", "kind", kind, "type", typ)
	return toolResultJSON(c)
}

// handleRegister decodes and registers a prototype.
func (s *Server) handleRegister(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.catalog == nil {
		return mcpgo.NewToolResultError("catalog is unavailable"), nil
	}

	kind, errResult := kindArg(req)
	if errResult != nil {
		return errResult, nil
	}
	body := req.GetString("prototype", "")
	if strings.TrimSpace(body) == "" {
		return mcpgo.NewToolResultError("prototype is required and must not be empty"), nil
	}

	typ, err := s.catalog.Register(kind, []byte(body))
	if err != nil {
		return catalogError("register", err), nil
	}

	s.logger.Info("mcp: registered prototype", "kind", kind, "type", typ)

	result := map[string]any{
		"kind":       kind,
		"type":       typ,
		"registered": true,
	}
	return toolResultJSON(result)
}
