package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ErrorResponse creates a standardized error response for tool calls
func ErrorResponse(format string, args ...interface{}) *mcp.CallToolResult {
	message := fmt.Sprintf(format, args...)
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
	}
}

// SuccessResponse creates a standardized success response for tool calls
func SuccessResponse(format string, args ...interface{}) *mcp.CallToolResult {
	message := fmt.Sprintf(format, args...)
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: message},
		},
	}
}

// JSONResponse renders an API payload as pretty-printed JSON text content.
func JSONResponse(v any) *mcp.CallToolResult {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return SuccessResponse("%v", v)
	}
	return SuccessResponse("%s", encoded)
}

// handle adapts a client operation into an MCP tool handler. Operation
// failures become error responses with the failure detail; they are not
// surfaced as protocol-level errors.
func handle[Args any](name string, op func(context.Context, Args) (any, error)) func(context.Context, *mcp.CallToolRequest, Args) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, any, error) {
		result, err := op(ctx, args)
		if err != nil {
			return ErrorResponse("%s failed: %v", name, err), nil, nil
		}
		return JSONResponse(result), result, nil
	}
}
