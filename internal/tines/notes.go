package tines

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dhollis/tines-mcp/internal/types"
)

// CreateNote places a note on a story or group canvas. One of StoryID or
// GroupID must be supplied; this is checked before any request is issued.
func (c *Client) CreateNote(ctx context.Context, args types.CreateNoteArgs) (any, error) {
	if args.StoryID == nil && args.GroupID == nil {
		return nil, fmt.Errorf("%w: either story_id or group_id must be provided", ErrValidation)
	}

	body := map[string]any{"content": args.Content}
	if args.StoryID != nil {
		body["story_id"] = *args.StoryID
	}
	if args.GroupID != nil {
		body["group_id"] = *args.GroupID
	}
	if args.Position != nil {
		body["position"] = args.Position
	} else {
		body["position"] = map[string]any{"x": 0, "y": 0}
	}
	if args.DraftID != nil {
		body["draft_id"] = *args.DraftID
	}

	return c.do(ctx, http.MethodPost, "notes", body, nil)
}

// GetNote fetches one note by id.
func (c *Client) GetNote(ctx context.Context, args types.GetNoteArgs) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("notes/%d", args.NoteID), nil, nil)
}

// UpdateNote updates a note's content and/or position. At least one field
// must be supplied.
func (c *Client) UpdateNote(ctx context.Context, args types.UpdateNoteArgs) (any, error) {
	body := map[string]any{}
	if args.Content != nil {
		body["content"] = *args.Content
	}
	if args.Position != nil {
		body["position"] = args.Position
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: at least one of content or position must be provided", ErrValidation)
	}

	return c.do(ctx, http.MethodPut, fmt.Sprintf("notes/%d", args.NoteID), body, nil)
}

// ListNotes lists notes, filtered by the present arguments.
func (c *Client) ListNotes(ctx context.Context, args types.ListNotesArgs) (any, error) {
	q := url.Values{}
	setInt(q, "story_id", args.StoryID)
	setInt(q, "group_id", args.GroupID)
	setInt(q, "team_id", args.TeamID)
	setString(q, "mode", args.Mode)
	setInt(q, "draft_id", args.DraftID)
	setInt(q, "per_page", args.PerPage)
	setInt(q, "page", args.Page)

	return c.do(ctx, http.MethodGet, "notes", nil, q)
}

// DeleteNote deletes a note. The API answers 204 with an empty body, so a
// small confirmation envelope is returned instead.
func (c *Client) DeleteNote(ctx context.Context, args types.DeleteNoteArgs) (any, error) {
	if _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("notes/%d", args.NoteID), nil, nil); err != nil {
		return nil, err
	}
	return map[string]any{"deleted": true, "note_id": args.NoteID}, nil
}
