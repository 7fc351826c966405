package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dhollis/tines-mcp/internal/tines"
)

// RegisterNoteTools registers the note/comment tools with the MCP server.
func RegisterNoteTools(server *mcp.Server, client *tines.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_note",
		Description: "Create a note/comment on a story or group canvas (one of story_id or group_id is required)",
	}, handle("create_note", client.CreateNote))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_note",
		Description: "Get a specific note by ID",
	}, handle("get_note", client.GetNote))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_note",
		Description: "Update a note's content and/or position (at least one is required)",
	}, handle("update_note", client.UpdateNote))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List notes, filtered by story, group, team, mode or draft",
	}, handle("list_notes", client.ListNotes))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note/comment",
	}, handle("delete_note", client.DeleteNote))
}
