// Package types defines the argument structs for the MCP tool surface.
// Optional arguments are pointer-typed (or nil-able slices/maps) so that
// "omitted" is distinguishable from an explicitly supplied zero value:
// only present arguments are forwarded to the Tines API.
package types

// ListStoriesArgs defines the arguments for the list_stories tool.
type ListStoriesArgs struct {
	TeamID   *int64  `json:"team_id,omitempty" jsonschema:"Return stories belonging to this team"`
	FolderID *int64  `json:"folder_id,omitempty" jsonschema:"Return stories in this folder"`
	PerPage  *int64  `json:"per_page,omitempty" jsonschema:"Number of results per page (max 500)"`
	Page     *int64  `json:"page,omitempty" jsonschema:"Page number to return"`
	Tags     *string `json:"tags,omitempty" jsonschema:"Comma separated list of tag names to filter by"`
	Search   *string `json:"search,omitempty" jsonschema:"Search string against story name"`
	Filter   *string `json:"filter,omitempty" jsonschema:"Filter by: SEND_TO_STORY_ENABLED / HIGH_PRIORITY / API_ENABLED / PUBLISHED / FAVORITE / CHANGE_CONTROL_ENABLED / DISABLED / LOCKED"`
	Order    *string `json:"order,omitempty" jsonschema:"Order by: NAME / NAME_DESC / RECENTLY_EDITED / LEAST_RECENTLY_EDITED / ACTION_COUNT_ASC / ACTION_COUNT_DESC"`
}

// GetStoryArgs defines the arguments for the get_story tool.
type GetStoryArgs struct {
	StoryID   int64   `json:"story_id" jsonschema:"ID of the story to retrieve"`
	StoryMode *string `json:"story_mode,omitempty" jsonschema:"Mode (TEST or LIVE) of story to retrieve"`
	DraftID   *int64  `json:"draft_id,omitempty" jsonschema:"ID of the draft to retrieve"`
}

// CreateStoryArgs defines the arguments for the create_story tool.
type CreateStoryArgs struct {
	TeamID        int64    `json:"team_id" jsonschema:"ID of team to which the story should be added"`
	Name          *string  `json:"name,omitempty" jsonschema:"The story name"`
	Description   *string  `json:"description,omitempty" jsonschema:"A user-defined description of the story"`
	KeepEventsFor *int64   `json:"keep_events_for,omitempty" jsonschema:"Event retention period in seconds (3600=1h / 86400=1d / 604800=7d / 2592000=30d / 31536000=365d)"`
	FolderID      *int64   `json:"folder_id,omitempty" jsonschema:"ID of folder to add the story to"`
	Tags          []string `json:"tags,omitempty" jsonschema:"Array of strings to classify the story"`
	Disabled      *bool    `json:"disabled,omitempty" jsonschema:"Whether the story is disabled (default: false)"`
	Priority      *bool    `json:"priority,omitempty" jsonschema:"Whether this is a high priority story (default: false)"`
}

// UpdateStoryArgs defines the arguments for the update_story tool.
type UpdateStoryArgs struct {
	StoryID                                 int64    `json:"story_id" jsonschema:"The ID of the story to update"`
	Name                                    *string  `json:"name,omitempty" jsonschema:"The story name"`
	Description                             *string  `json:"description,omitempty" jsonschema:"A user-defined description of the story"`
	AddTagNames                             []string `json:"add_tag_names,omitempty" jsonschema:"Array of tag names to add to the story"`
	RemoveTagNames                          []string `json:"remove_tag_names,omitempty" jsonschema:"Array of tag names to remove from the story"`
	KeepEventsFor                           *int64   `json:"keep_events_for,omitempty" jsonschema:"Event retention period in seconds"`
	Disabled                                *bool    `json:"disabled,omitempty" jsonschema:"Whether the story is disabled from running"`
	Locked                                  *bool    `json:"locked,omitempty" jsonschema:"Whether the story is locked / preventing edits"`
	Priority                                *bool    `json:"priority,omitempty" jsonschema:"Whether story runs with high priority"`
	SendToStoryAccessSource                 *string  `json:"send_to_story_access_source,omitempty" jsonschema:"STS / STS_AND_WORKBENCH / WORKBENCH or OFF"`
	SendToStoryAccess                       *string  `json:"send_to_story_access,omitempty" jsonschema:"TEAM / GLOBAL or SPECIFIC_TEAMS"`
	SharedTeamSlugs                         []string `json:"shared_team_slugs,omitempty" jsonschema:"List of teams' slugs that can send to this story"`
	SendToStorySkillUseRequiresConfirmation *bool    `json:"send_to_story_skill_use_requires_confirmation,omitempty" jsonschema:"Whether workbench should ask for confirmation before running this story"`
	WebhookAPIEnabled                       *bool    `json:"webhook_api_enabled,omitempty" jsonschema:"Whether the Webhook API is enabled"`
	TeamID                                  *int64   `json:"team_id,omitempty" jsonschema:"The ID of the team to move the story to"`
	FolderID                                *int64   `json:"folder_id,omitempty" jsonschema:"The ID of the folder to move the story to"`
	ChangeControlEnabled                    *bool    `json:"change_control_enabled,omitempty" jsonschema:"Whether Change Control is enabled"`
	DraftID                                 *int64   `json:"draft_id,omitempty" jsonschema:"The ID of the draft to update"`
	MonitorFailures                         *bool    `json:"monitor_failures,omitempty" jsonschema:"Whether monitor failures is enabled on the story"`
	EntryActionID                           *int64   `json:"entry_action_id,omitempty" jsonschema:"The ID of the entry action for send to story (webhook)"`
	ExitActionIDs                           []int64  `json:"exit_action_ids,omitempty" jsonschema:"Array of IDs for exit actions (event transforms)"`
}

// SearchStoriesArgs defines the arguments for the search_stories tool.
type SearchStoriesArgs struct {
	Query   string `json:"query" jsonschema:"Search string against story name"`
	TeamID  *int64 `json:"team_id,omitempty" jsonschema:"Limit search to specific team"`
	PerPage *int64 `json:"per_page,omitempty" jsonschema:"Number of results per page (default 20)"`
}

// StoryPresetArgs defines the arguments for the fixed-filter story listing
// tools (get_high_priority_stories, get_disabled_stories).
type StoryPresetArgs struct {
	TeamID  *int64 `json:"team_id,omitempty" jsonschema:"Limit to specific team"`
	PerPage *int64 `json:"per_page,omitempty" jsonschema:"Number of results per page (default 20)"`
}
