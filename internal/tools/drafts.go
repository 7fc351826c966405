package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dhollis/tines-mcp/internal/tines"
	"github.com/dhollis/tines-mcp/internal/types"
)

// RegisterDraftTools registers the story draft tools with the MCP server.
func RegisterDraftTools(server *mcp.Server, client *tines.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_story_drafts",
		Description: "List all drafts for a story",
	}, handle("list_story_drafts", client.ListStoryDrafts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_story_draft",
		Description: "Get a specific draft of a story",
	}, handle("get_story_draft", client.GetStoryDraft))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_story_draft",
		Description: "Create a new draft for a story by applying and reverting a temporary tag change",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args types.CreateStoryDraftArgs) (*mcp.CallToolResult, any, error) {
		return handleCreateStoryDraft(ctx, client, args)
	})
}

func handleCreateStoryDraft(ctx context.Context, client *tines.Client, args types.CreateStoryDraftArgs) (*mcp.CallToolResult, any, error) {
	draft, err := client.CreateStoryDraft(ctx, args)

	// Tag cleanup failure is a partial success: the draft exists and is
	// usable, but the caller must know the sentinel tag was not removed.
	var cleanupErr *tines.DraftCleanupError
	if errors.As(err, &cleanupErr) {
		result := map[string]any{
			"draft":   cleanupErr.Draft,
			"warning": cleanupErr.Error(),
		}
		return JSONResponse(result), result, nil
	}
	if err != nil {
		return ErrorResponse("create_story_draft failed: %v", err), nil, nil
	}

	return JSONResponse(draft), draft, nil
}
