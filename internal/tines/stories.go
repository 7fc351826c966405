package tines

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dhollis/tines-mcp/internal/types"
)

// maxPerPage is the largest page size the Tines API accepts; larger
// requests are clamped before transmission.
const maxPerPage = 500

func setInt(q url.Values, key string, v *int64) {
	if v != nil {
		q.Set(key, strconv.FormatInt(*v, 10))
	}
}

func setString(q url.Values, key string, v *string) {
	if v != nil {
		q.Set(key, *v)
	}
}

// ListStories lists stories, filtered and paginated by the present arguments.
func (c *Client) ListStories(ctx context.Context, args types.ListStoriesArgs) (any, error) {
	q := url.Values{}
	setInt(q, "team_id", args.TeamID)
	setInt(q, "folder_id", args.FolderID)
	if args.PerPage != nil {
		perPage := *args.PerPage
		if perPage > maxPerPage {
			perPage = maxPerPage
		}
		q.Set("per_page", strconv.FormatInt(perPage, 10))
	}
	setInt(q, "page", args.Page)
	setString(q, "tags", args.Tags)
	setString(q, "search", args.Search)
	setString(q, "filter", args.Filter)
	setString(q, "order", args.Order)

	return c.do(ctx, http.MethodGet, "stories", nil, q)
}

// GetStory fetches one story, optionally scoped to a mode or draft.
func (c *Client) GetStory(ctx context.Context, args types.GetStoryArgs) (any, error) {
	q := url.Values{}
	setString(q, "story_mode", args.StoryMode)
	setInt(q, "draft_id", args.DraftID)

	return c.do(ctx, http.MethodGet, fmt.Sprintf("stories/%d", args.StoryID), nil, q)
}

// CreateStory creates a story under a team.
func (c *Client) CreateStory(ctx context.Context, args types.CreateStoryArgs) (any, error) {
	body := map[string]any{"team_id": args.TeamID}
	if args.Name != nil {
		body["name"] = *args.Name
	}
	if args.Description != nil {
		body["description"] = *args.Description
	}
	if args.KeepEventsFor != nil {
		body["keep_events_for"] = *args.KeepEventsFor
	}
	if args.FolderID != nil {
		body["folder_id"] = *args.FolderID
	}
	if args.Tags != nil {
		body["tags"] = args.Tags
	}
	if args.Disabled != nil {
		body["disabled"] = *args.Disabled
	}
	if args.Priority != nil {
		body["priority"] = *args.Priority
	}

	return c.do(ctx, http.MethodPost, "stories", body, nil)
}

// UpdateStory applies a partial update to a story. Only the fields the
// caller supplied are transmitted; an explicit false or zero is still sent.
func (c *Client) UpdateStory(ctx context.Context, args types.UpdateStoryArgs) (any, error) {
	body := map[string]any{}
	if args.Name != nil {
		body["name"] = *args.Name
	}
	if args.Description != nil {
		body["description"] = *args.Description
	}
	if args.AddTagNames != nil {
		body["add_tag_names"] = args.AddTagNames
	}
	if args.RemoveTagNames != nil {
		body["remove_tag_names"] = args.RemoveTagNames
	}
	if args.KeepEventsFor != nil {
		body["keep_events_for"] = *args.KeepEventsFor
	}
	if args.Disabled != nil {
		body["disabled"] = *args.Disabled
	}
	if args.Locked != nil {
		body["locked"] = *args.Locked
	}
	if args.Priority != nil {
		body["priority"] = *args.Priority
	}
	if args.SendToStoryAccessSource != nil {
		body["send_to_story_access_source"] = *args.SendToStoryAccessSource
	}
	if args.SendToStoryAccess != nil {
		body["send_to_story_access"] = *args.SendToStoryAccess
	}
	if args.SharedTeamSlugs != nil {
		body["shared_team_slugs"] = args.SharedTeamSlugs
	}
	if args.SendToStorySkillUseRequiresConfirmation != nil {
		body["send_to_story_skill_use_requires_confirmation"] = *args.SendToStorySkillUseRequiresConfirmation
	}
	if args.WebhookAPIEnabled != nil {
		body["webhook_api_enabled"] = *args.WebhookAPIEnabled
	}
	if args.TeamID != nil {
		body["team_id"] = *args.TeamID
	}
	if args.FolderID != nil {
		body["folder_id"] = *args.FolderID
	}
	if args.ChangeControlEnabled != nil {
		body["change_control_enabled"] = *args.ChangeControlEnabled
	}
	if args.DraftID != nil {
		body["draft_id"] = *args.DraftID
	}
	if args.MonitorFailures != nil {
		body["monitor_failures"] = *args.MonitorFailures
	}
	if args.EntryActionID != nil {
		body["entry_action_id"] = *args.EntryActionID
	}
	if args.ExitActionIDs != nil {
		body["exit_action_ids"] = args.ExitActionIDs
	}

	return c.do(ctx, http.MethodPut, fmt.Sprintf("stories/%d", args.StoryID), body, nil)
}

// defaultPresetPerPage is the page size used by the convenience listing
// tools when the caller doesn't override it.
const defaultPresetPerPage = int64(20)

// SearchStories lists stories whose name matches the query.
func (c *Client) SearchStories(ctx context.Context, args types.SearchStoriesArgs) (any, error) {
	perPage := args.PerPage
	if perPage == nil {
		v := defaultPresetPerPage
		perPage = &v
	}
	return c.ListStories(ctx, types.ListStoriesArgs{
		TeamID:  args.TeamID,
		Search:  &args.Query,
		PerPage: perPage,
	})
}

// listStoriesPreset backs the fixed-filter convenience listings.
func (c *Client) listStoriesPreset(ctx context.Context, filter string, args types.StoryPresetArgs) (any, error) {
	perPage := args.PerPage
	if perPage == nil {
		v := defaultPresetPerPage
		perPage = &v
	}
	return c.ListStories(ctx, types.ListStoriesArgs{
		TeamID:  args.TeamID,
		Filter:  &filter,
		PerPage: perPage,
	})
}

// GetHighPriorityStories lists stories flagged as high priority.
func (c *Client) GetHighPriorityStories(ctx context.Context, args types.StoryPresetArgs) (any, error) {
	return c.listStoriesPreset(ctx, "HIGH_PRIORITY", args)
}

// GetDisabledStories lists stories that are disabled from running.
func (c *Client) GetDisabledStories(ctx context.Context, args types.StoryPresetArgs) (any, error) {
	return c.listStoriesPreset(ctx, "DISABLED", args)
}
