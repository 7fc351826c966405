package tines

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dhollis/tines-mcp/internal/types"
)

// defaultActionPosition is where a new action lands on the story canvas
// when the caller doesn't place it.
func defaultActionPosition() map[string]any {
	return map[string]any{"x": 100, "y": 100}
}

// GetStoryActions lists the actions belonging to a story, optionally
// scoped to a draft.
func (c *Client) GetStoryActions(ctx context.Context, args types.GetStoryActionsArgs) (any, error) {
	q := url.Values{}
	q.Set("story_id", strconv.FormatInt(args.StoryID, 10))
	setInt(q, "draft_id", args.DraftID)

	// The actions listing lives at the legacy "agents" endpoint.
	return c.do(ctx, http.MethodGet, "agents", nil, q)
}

// CreateAction creates a new action of the given type in a story.
func (c *Client) CreateAction(ctx context.Context, args types.CreateActionArgs) (any, error) {
	body := map[string]any{
		"type": args.ActionType,
		"name": args.Name,
		// The actions endpoint expects story_id as a string.
		"story_id": strconv.FormatInt(args.StoryID, 10),
	}
	if args.DraftID != nil {
		body["draft_id"] = *args.DraftID
	}
	if args.Options != nil {
		body["options"] = args.Options
	}
	if args.Position != nil {
		body["position"] = args.Position
	} else {
		body["position"] = defaultActionPosition()
	}

	return c.do(ctx, http.MethodPost, "actions", body, nil)
}

// CreateEventTransformAction creates an event transform action.
func (c *Client) CreateEventTransformAction(ctx context.Context, args types.CreateEventTransformActionArgs) (any, error) {
	mode := "message"
	if args.Mode != nil {
		mode = *args.Mode
	}
	options := map[string]any{"mode": mode}
	if args.Message != nil {
		options["message"] = *args.Message
	}
	if args.Payload != nil {
		options["payload"] = args.Payload
	}

	return c.CreateAction(ctx, types.CreateActionArgs{
		StoryID:    args.StoryID,
		ActionType: "Agents::EventTransformationAgent",
		Name:       args.Name,
		Options:    options,
		Position:   args.Position,
		DraftID:    &args.DraftID,
	})
}

// CreateWebhookAction creates a webhook trigger action.
func (c *Client) CreateWebhookAction(ctx context.Context, args types.CreateWebhookActionArgs) (any, error) {
	options := map[string]any{}
	if args.Secret != nil {
		options["secret"] = *args.Secret
	}

	return c.CreateAction(ctx, types.CreateActionArgs{
		StoryID:    args.StoryID,
		ActionType: "Agents::WebhookAgent",
		Name:       args.Name,
		Options:    options,
		Position:   args.Position,
		DraftID:    &args.DraftID,
	})
}

// CreateEmailAction creates an email sending action.
func (c *Client) CreateEmailAction(ctx context.Context, args types.CreateEmailActionArgs) (any, error) {
	contentType := "text/html"
	if args.ContentType != nil {
		contentType = *args.ContentType
	}
	options := map[string]any{
		"to":           args.To,
		"subject":      args.Subject,
		"body":         args.Body,
		"content_type": contentType,
	}
	if args.FromEmail != nil {
		options["from"] = *args.FromEmail
	}
	if args.CC != nil {
		options["cc"] = *args.CC
	}
	if args.BCC != nil {
		options["bcc"] = *args.BCC
	}

	return c.CreateAction(ctx, types.CreateActionArgs{
		StoryID:    args.StoryID,
		ActionType: "Agents::EmailAgent",
		Name:       args.Name,
		Options:    options,
		Position:   args.Position,
		DraftID:    &args.DraftID,
	})
}

// CreateIMAPAction creates an IMAP polling action for receiving emails.
func (c *Client) CreateIMAPAction(ctx context.Context, args types.CreateIMAPActionArgs) (any, error) {
	port := int64(993)
	if args.Port != nil {
		port = *args.Port
	}
	ssl := true
	if args.SSL != nil {
		ssl = *args.SSL
	}
	folder := "INBOX"
	if args.Folder != nil {
		folder = *args.Folder
	}
	options := map[string]any{
		"host":     args.Host,
		"username": args.Username,
		"password": args.Password,
		"port":     port,
		"ssl":      ssl,
		"folder":   folder,
	}
	if args.Conditions != nil {
		options["conditions"] = args.Conditions
	}

	return c.CreateAction(ctx, types.CreateActionArgs{
		StoryID:    args.StoryID,
		ActionType: "Agents::IMAPAgent",
		Name:       args.Name,
		Options:    options,
		Position:   args.Position,
		DraftID:    &args.DraftID,
	})
}

// CreateSendToStoryAction creates an action that forwards events to
// another story.
func (c *Client) CreateSendToStoryAction(ctx context.Context, args types.CreateSendToStoryActionArgs) (any, error) {
	options := map[string]any{"story_id": args.TargetStoryID}
	if args.Payload != nil {
		options["payload"] = args.Payload
	}

	return c.CreateAction(ctx, types.CreateActionArgs{
		StoryID:    args.StoryID,
		ActionType: "Agents::SendToStoryAgent",
		Name:       args.Name,
		Options:    options,
		Position:   args.Position,
		DraftID:    &args.DraftID,
	})
}

// CreateTriggerAction creates a trigger action gated by the given rules.
func (c *Client) CreateTriggerAction(ctx context.Context, args types.CreateTriggerActionArgs) (any, error) {
	options := map[string]any{"rules": args.Rules}
	if args.Message != nil {
		options["message"] = *args.Message
	}

	return c.CreateAction(ctx, types.CreateActionArgs{
		StoryID:    args.StoryID,
		ActionType: "Agents::TriggerAgent",
		Name:       args.Name,
		Options:    options,
		Position:   args.Position,
		DraftID:    &args.DraftID,
	})
}

// CreateGroupAction creates a group action backed by another story.
func (c *Client) CreateGroupAction(ctx context.Context, args types.CreateGroupActionArgs) (any, error) {
	return c.CreateAction(ctx, types.CreateActionArgs{
		StoryID:    args.StoryID,
		ActionType: "Agents::GroupAgent",
		Name:       args.Name,
		Options:    map[string]any{"group_story_id": args.GroupStoryID},
		Position:   args.Position,
		DraftID:    &args.DraftID,
	})
}

// CreateLLMAction creates an AI/LLM action.
func (c *Client) CreateLLMAction(ctx context.Context, args types.CreateLLMActionArgs) (any, error) {
	jsonMode := false
	if args.JSONMode != nil {
		jsonMode = *args.JSONMode
	}

	return c.CreateAction(ctx, types.CreateActionArgs{
		StoryID:    args.StoryID,
		ActionType: "Agents::LLMAgent",
		Name:       args.Name,
		Options:    map[string]any{"prompt": args.Prompt, "json_mode": jsonMode},
		Position:   args.Position,
		DraftID:    &args.DraftID,
	})
}

// UpdateAction applies a partial update to an action.
func (c *Client) UpdateAction(ctx context.Context, args types.UpdateActionArgs) (any, error) {
	body := map[string]any{}
	if args.Name != nil {
		body["name"] = *args.Name
	}
	if args.Options != nil {
		body["options"] = args.Options
	}
	if args.Position != nil {
		body["position"] = args.Position
	}
	if args.DraftID != nil {
		body["draft_id"] = *args.DraftID
	}

	return c.do(ctx, http.MethodPut, fmt.Sprintf("actions/%d", args.ActionID), body, nil)
}

// DeleteAction removes an action from its story.
func (c *Client) DeleteAction(ctx context.Context, args types.DeleteActionArgs) (any, error) {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("actions/%d", args.ActionID), nil, nil)
}

// ConnectActions links a source action into a target action's inputs. The
// target's current sources are fetched, the source id is appended only if
// not already present, and the list is written back. This read-modify-write
// has a lost-update race under concurrent connects to the same target; the
// remote API offers no conditional write to close it.
func (c *Client) ConnectActions(ctx context.Context, args types.ConnectActionsArgs) (any, error) {
	target, err := c.do(ctx, http.MethodGet, fmt.Sprintf("actions/%d", args.TargetActionID), nil, nil)
	if err != nil {
		return nil, err
	}

	sources := []any{}
	if obj, ok := target.(map[string]any); ok {
		if current, ok := obj["sources"].([]any); ok {
			sources = current
		}
	}

	found := false
	for _, s := range sources {
		if id, ok := s.(float64); ok && int64(id) == args.SourceActionID {
			found = true
			break
		}
	}
	if !found {
		sources = append(sources, args.SourceActionID)
	}

	body := map[string]any{"source_ids": sources}
	if args.DraftID != nil {
		body["draft_id"] = *args.DraftID
	}

	return c.do(ctx, http.MethodPut, fmt.Sprintf("actions/%d", args.TargetActionID), body, nil)
}
