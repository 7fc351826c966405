package tools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dhollis/tines-mcp/internal/tines"
	"github.com/dhollis/tines-mcp/internal/types"
)

// RegisterDebugTool registers the endpoint probing tool with the MCP server.
func RegisterDebugTool(server *mcp.Server, client *tines.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "debug_endpoint",
		Description: "Probe an arbitrary Tines API endpoint and report the outcome in a success/error envelope",
	}, handleDebugEndpoint(client))
}

func handleDebugEndpoint(client *tines.Client) func(context.Context, *mcp.CallToolRequest, types.DebugEndpointArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args types.DebugEndpointArgs) (*mcp.CallToolResult, any, error) {
		method := http.MethodGet
		if args.Method != nil {
			method = *args.Method
		}
		result := client.Debug(ctx, method, args.Endpoint, args.Data)
		return JSONResponse(result), result, nil
	}
}
