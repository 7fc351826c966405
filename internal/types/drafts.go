package types

// ListStoryDraftsArgs defines the arguments for the list_story_drafts tool.
type ListStoryDraftsArgs struct {
	StoryID int64 `json:"story_id" jsonschema:"ID of the story to get drafts for"`
}

// GetStoryDraftArgs defines the arguments for the get_story_draft tool.
type GetStoryDraftArgs struct {
	StoryID int64 `json:"story_id" jsonschema:"ID of the story"`
	DraftID int64 `json:"draft_id" jsonschema:"ID of the draft to retrieve"`
}

// CreateStoryDraftArgs defines the arguments for the create_story_draft tool.
type CreateStoryDraftArgs struct {
	StoryID int64 `json:"story_id" jsonschema:"ID of the story to create a draft for"`
}
