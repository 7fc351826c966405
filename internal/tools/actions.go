package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dhollis/tines-mcp/internal/tines"
)

// RegisterActionTools registers the action management tools with the MCP server.
func RegisterActionTools(server *mcp.Server, client *tines.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_story_actions",
		Description: "List all actions belonging to a story, optionally from a specific draft",
	}, handle("get_story_actions", client.GetStoryActions))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_action",
		Description: "Create a new action of any supported type in a story",
	}, handle("create_action", client.CreateAction))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_action",
		Description: "Update an action's name, options, position or draft scoping; only supplied fields are changed",
	}, handle("update_action", client.UpdateAction))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_action",
		Description: "Delete an action from a story",
	}, handle("delete_action", client.DeleteAction))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "connect_actions",
		Description: "Connect a source action to a target action. Idempotent: the source is added to the target's inputs only if not already present. Concurrent connects to the same target can race (read-modify-write, no server-side locking).",
	}, handle("connect_actions", client.ConnectActions))
}

// RegisterTypedActionTools registers the typed convenience wrappers over
// create_action.
func RegisterTypedActionTools(server *mcp.Server, client *tines.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_event_transform_action",
		Description: "Create an Event Transform action in a story",
	}, handle("create_event_transform_action", client.CreateEventTransformAction))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_webhook_action",
		Description: "Create a Webhook trigger action in a story",
	}, handle("create_webhook_action", client.CreateWebhookAction))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_email_action",
		Description: "Create an Email action in a story",
	}, handle("create_email_action", client.CreateEmailAction))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_imap_action",
		Description: "Create an IMAP action in a story for receiving emails",
	}, handle("create_imap_action", client.CreateIMAPAction))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_send_to_story_action",
		Description: "Create a Send to Story action that forwards events to another story",
	}, handle("create_send_to_story_action", client.CreateSendToStoryAction))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_trigger_action",
		Description: "Create a Trigger action gated by a list of rules",
	}, handle("create_trigger_action", client.CreateTriggerAction))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_group_action",
		Description: "Create a Group action backed by another story",
	}, handle("create_group_action", client.CreateGroupAction))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_llm_action",
		Description: "Create an LLM (AI) action in a story",
	}, handle("create_llm_action", client.CreateLLMAction))
}
