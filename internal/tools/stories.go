// Package tools registers the Tines API tool surface with the MCP server.
// Handlers are thin: they forward their arguments to the API client and
// return the remote JSON unmodified.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dhollis/tines-mcp/internal/tines"
)

// RegisterStoryTools registers the story management tools with the MCP server.
func RegisterStoryTools(server *mcp.Server, client *tines.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_stories",
		Description: "List stories, with optional team/folder/tag filters, name search, status filter and pagination",
	}, handle("list_stories", client.ListStories))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_story",
		Description: "Get a specific story by ID, optionally scoped to a mode (TEST or LIVE) or a draft",
	}, handle("get_story", client.GetStory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_story",
		Description: "Create a new story under a team",
	}, handle("create_story", client.CreateStory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_story",
		Description: "Update a story's fields, tags, sharing settings or draft scoping; only supplied fields are changed",
	}, handle("update_story", client.UpdateStory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_stories",
		Description: "Search for stories by name",
	}, handle("search_stories", client.SearchStories))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_high_priority_stories",
		Description: "List stories flagged as high priority",
	}, handle("get_high_priority_stories", client.GetHighPriorityStories))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_disabled_stories",
		Description: "List stories that are disabled from running",
	}, handle("get_disabled_stories", client.GetDisabledStories))
}
