package types

// CreateNoteArgs defines the arguments for the create_note tool.
// Either StoryID or GroupID must be supplied.
type CreateNoteArgs struct {
	Content  string         `json:"content" jsonschema:"The note content in Markdown format"`
	StoryID  *int64         `json:"story_id,omitempty" jsonschema:"ID of the story to add the note to (either story_id or group_id is required)"`
	GroupID  *int64         `json:"group_id,omitempty" jsonschema:"ID of the group to add the note to (either story_id or group_id is required)"`
	Position map[string]any `json:"position,omitempty" jsonschema:"XY coordinates for the note position (defaults to x:0 y:0)"`
	DraftID  *int64         `json:"draft_id,omitempty" jsonschema:"ID of the draft to add the note to"`
}

// GetNoteArgs defines the arguments for the get_note tool.
type GetNoteArgs struct {
	NoteID int64 `json:"note_id" jsonschema:"ID of the note to retrieve"`
}

// UpdateNoteArgs defines the arguments for the update_note tool.
// At least one of Content or Position must be supplied.
type UpdateNoteArgs struct {
	NoteID   int64          `json:"note_id" jsonschema:"ID of the note to update"`
	Content  *string        `json:"content,omitempty" jsonschema:"New content for the note in Markdown format"`
	Position map[string]any `json:"position,omitempty" jsonschema:"New XY coordinates for the note position"`
}

// ListNotesArgs defines the arguments for the list_notes tool.
type ListNotesArgs struct {
	StoryID *int64  `json:"story_id,omitempty" jsonschema:"List notes for a specific story"`
	GroupID *int64  `json:"group_id,omitempty" jsonschema:"List notes for a specific group"`
	TeamID  *int64  `json:"team_id,omitempty" jsonschema:"List notes for a specific team"`
	Mode    *string `json:"mode,omitempty" jsonschema:"Story mode / LIVE or TEST (must be used with story_id)"`
	DraftID *int64  `json:"draft_id,omitempty" jsonschema:"List notes for a specific draft"`
	PerPage *int64  `json:"per_page,omitempty" jsonschema:"Number of results per page"`
	Page    *int64  `json:"page,omitempty" jsonschema:"Page number to return"`
}

// DeleteNoteArgs defines the arguments for the delete_note tool.
type DeleteNoteArgs struct {
	NoteID int64 `json:"note_id" jsonschema:"ID of the note to delete"`
}
