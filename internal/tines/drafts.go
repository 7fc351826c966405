package tines

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/dhollis/tines-mcp/internal/types"
)

// sentinelTag is the temporary tag used to force a draft into existence.
const sentinelTag = "draft-creation"

// ListStoryDrafts lists all drafts of a story.
func (c *Client) ListStoryDrafts(ctx context.Context, args types.ListStoryDraftsArgs) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("stories/%d/drafts", args.StoryID), nil, nil)
}

// GetStoryDraft fetches one draft of a story.
func (c *Client) GetStoryDraft(ctx context.Context, args types.GetStoryDraftArgs) (any, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("stories/%d/drafts/%d", args.StoryID, args.DraftID), nil, nil)
}

// CreateStoryDraft creates a new draft for a story. The API has no direct
// create-draft endpoint, so a sentinel tag is added to the story (which
// materializes a draft), the newest draft is picked up from the listing,
// and the tag removal is applied scoped to that draft so the live story is
// untouched.
//
// Returns a *DraftCreationError when the listing comes back empty after
// the tag was added (no cleanup is attempted), and a *DraftCleanupError
// carrying the draft when the draft exists but the tag removal failed.
func (c *Client) CreateStoryDraft(ctx context.Context, args types.CreateStoryDraftArgs) (map[string]any, error) {
	endpoint := fmt.Sprintf("stories/%d", args.StoryID)

	_, err := c.do(ctx, http.MethodPut, endpoint, map[string]any{
		"add_tag_names": []string{sentinelTag},
	}, nil)
	if err != nil {
		c.logger.Error("failed to create draft", zap.Int64("story_id", args.StoryID), zap.Error(err))
		return nil, err
	}

	listing, err := c.ListStoryDrafts(ctx, types.ListStoryDraftsArgs{StoryID: args.StoryID})
	if err != nil {
		c.logger.Error("failed to list drafts after sentinel mutation", zap.Int64("story_id", args.StoryID), zap.Error(err))
		return nil, err
	}

	latest := latestDraft(listing)
	if latest == nil {
		return nil, &DraftCreationError{StoryID: args.StoryID}
	}

	_, err = c.do(ctx, http.MethodPut, endpoint, map[string]any{
		"remove_tag_names": []string{sentinelTag},
		"draft_id":         latest["id"],
	}, nil)
	if err != nil {
		// The draft exists and is usable, but the sentinel tag is still on
		// it. Surface that rather than swallowing it.
		c.logger.Error("draft created but sentinel tag cleanup failed",
			zap.Int64("story_id", args.StoryID), zap.Any("draft_id", latest["id"]), zap.Error(err))
		return latest, &DraftCleanupError{Draft: latest, Err: err}
	}

	return latest, nil
}

// latestDraft extracts the most recently created draft from a draft
// listing response, or nil when the listing is empty or malformed.
func latestDraft(listing any) map[string]any {
	obj, ok := listing.(map[string]any)
	if !ok {
		return nil
	}
	drafts, ok := obj["drafts"].([]any)
	if !ok || len(drafts) == 0 {
		return nil
	}
	latest, ok := drafts[0].(map[string]any)
	if !ok {
		return nil
	}
	return latest
}
