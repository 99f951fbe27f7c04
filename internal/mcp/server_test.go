package mcp_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/patternkit/internal/catalog"
	pkmcp "github.com/ajitpratap0/patternkit/internal/mcp"
	"github.com/ajitpratap0/patternkit/internal/models"
)

// newMCPServer returns a Server backed by a catalog seeded with defaults.
func newMCPServer(t *testing.T) (*pkmcp.Server, *catalog.Catalog) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cat := catalog.New(logger)
	cat.SeedDefaults()
	return pkmcp.NewServer(cat, logger), cat
}

// makeReq builds a CallToolRequest with the given arguments.
func makeReq(toolName string, args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Name = toolName
	req.Params.Arguments = args
	return req
}

// textContent extracts the first TextContent string from a CallToolResult.
func textContent(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content, "expected at least one content item")
	tc, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text
}

func TestMCPServer_Exposed(t *testing.T) {
	srv, _ := newMCPServer(t)
	assert.NotNil(t, srv.MCPServer())
}

func TestMCPList_AllKinds(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleList(context.Background(), makeReq("list_prototypes", nil))
	require.NoError(t, err)
	require.False(t, result.IsError, textContent(t, result))

	var out map[string][]string
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &out))
	assert.Equal(t, []string{"admin", "reader", "writer"}, out["user"])
	assert.Equal(t, []string{"purchase", "sales"}, out["invoice"])
	assert.Equal(t, []string{"advanced", "basic"}, out["configuration"])
}

func TestMCPList_OneKind(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleList(context.Background(), makeReq("list_prototypes", map[string]any{"kind": "invoice"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var out map[string][]string
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &out))
	assert.Len(t, out, 1)
	assert.Contains(t, out, "invoice")
}

func TestMCPGet(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleGet(context.Background(), makeReq("get_prototype", map[string]any{
		"kind": "configuration",
		"type": "basic",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, textContent(t, result))

	var cfg models.Configuration
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &cfg))
	assert.Equal(t, models.ConfigurationTypeBasic, cfg.ConfigurationType)
}

func TestMCPClone_Independent(t *testing.T) {
	srv, cat := newMCPServer(t)

	result, err := srv.HandleClone(context.Background(), makeReq("clone_prototype", map[string]any{
		"kind": "user",
		"type": "reader",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, textContent(t, result))

	var u models.User
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &u))
	proto, err := cat.Users.GetPrototype(models.UserTypeReader)
	require.NoError(t, err)
	assert.Equal(t, proto.Username, u.Username)
	assert.Equal(t, models.UserTypeReader, u.UserType)
}

func TestMCPTools_Errors(t *testing.T) {
	srv, _ := newMCPServer(t)
	ctx := context.Background()

	cases := []struct {
		name string
		call func() (*mcpgo.CallToolResult, error)
	}{
		{"list bad kind", func() (*mcpgo.CallToolResult, error) {
			return srv.HandleList(ctx, makeReq("list_prototypes", map[string]any{"kind": "widget"}))
		}},
		{"get missing kind", func() (*mcpgo.CallToolResult, error) {
			return srv.HandleGet(ctx, makeReq("get_prototype", map[string]any{"type": "admin"}))
		}},
		{"get missing type", func() (*mcpgo.CallToolResult, error) {
			return srv.HandleGet(ctx, makeReq("get_prototype", map[string]any{"kind": "user"}))
		}},
		{"clone unregistered", func() (*mcpgo.CallToolResult, error) {
			return srv.HandleClone(ctx, makeReq("clone_prototype", map[string]any{"kind": "invoice", "type": "service"}))
		}},
		{"clone invalid type", func() (*mcpgo.CallToolResult, error) {
			return srv.HandleClone(ctx, makeReq("clone_prototype", map[string]any{"kind": "user", "type": "root"}))
		}},
		{"register empty", func() (*mcpgo.CallToolResult, error) {
			return srv.HandleRegister(ctx, makeReq("register_prototype", map[string]any{"kind": "user"}))
		}},
		{"register bad json", func() (*mcpgo.CallToolResult, error) {
			return srv.HandleRegister(ctx, makeReq("register_prototype", map[string]any{"kind": "user", "prototype": "{"}))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.call()
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}

func TestMCPRegister_ThenClone(t *testing.T) {
	srv, _ := newMCPServer(t)
	ctx := context.Background()

	result, err := srv.HandleRegister(ctx, makeReq("register_prototype", map[string]any{
		"kind":      "invoice",
		"prototype": `{"id":77,"customer_name":"Globex","amount":120.5,"payment_method":"Card","type":"service"}`,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, textContent(t, result))

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &out))
	assert.Equal(t, "service", out["type"])
	assert.Equal(t, true, out["registered"])

	result, err = srv.HandleClone(ctx, makeReq("clone_prototype", map[string]any{"kind": "invoice", "type": "service"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var inv models.Invoice
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &inv))
	assert.Equal(t, "Globex", inv.CustomerName)
	assert.InDelta(t, 120.5, inv.Amount, 1e-9)
}

func TestMCPNilCatalog(t *testing.T) {
	srv := pkmcp.NewServer(nil, slog.Default())
	result, err := srv.HandleList(context.Background(), makeReq("list_prototypes", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
