package types

// GetStoryActionsArgs defines the arguments for the get_story_actions tool.
type GetStoryActionsArgs struct {
	StoryID int64  `json:"story_id" jsonschema:"ID of the story to get actions from"`
	DraftID *int64 `json:"draft_id,omitempty" jsonschema:"ID of the draft to get actions from"`
}

// CreateActionArgs defines the arguments for the create_action tool.
type CreateActionArgs struct {
	StoryID    int64          `json:"story_id" jsonschema:"ID of the story to add the action to"`
	ActionType string         `json:"action_type" jsonschema:"Type of action / e.g. Agents::EmailAgent / Agents::EventTransformationAgent / Agents::HTTPRequestAgent / Agents::IMAPAgent / Agents::TriggerAgent / Agents::WebhookAgent / Agents::SendToStoryAgent / Agents::GroupAgent / Agents::LLMAgent"`
	Name       string         `json:"name" jsonschema:"Name for the action"`
	Options    map[string]any `json:"options,omitempty" jsonschema:"Configuration options for the action"`
	Position   map[string]any `json:"position,omitempty" jsonschema:"Position coordinates for the action on the story canvas (defaults to x:100 y:100)"`
	DraftID    *int64         `json:"draft_id,omitempty" jsonschema:"ID of the draft to add the action to (required when change control is enabled)"`
}

// CreateEventTransformActionArgs defines the arguments for the
// create_event_transform_action tool.
type CreateEventTransformActionArgs struct {
	StoryID  int64          `json:"story_id" jsonschema:"ID of the story to add the action to"`
	Name     string         `json:"name" jsonschema:"Name for the action"`
	DraftID  int64          `json:"draft_id" jsonschema:"ID of the draft to add the action to"`
	Mode     *string        `json:"mode,omitempty" jsonschema:"Transform mode: message / merge / implode or explode (default: message)"`
	Message  *string        `json:"message,omitempty" jsonschema:"Message template for the transformation"`
	Payload  map[string]any `json:"payload,omitempty" jsonschema:"Payload template for the transformation"`
	Position map[string]any `json:"position,omitempty" jsonschema:"Position coordinates for the action on the story canvas"`
}

// CreateWebhookActionArgs defines the arguments for the
// create_webhook_action tool.
type CreateWebhookActionArgs struct {
	StoryID  int64          `json:"story_id" jsonschema:"ID of the story to add the webhook to"`
	Name     string         `json:"name" jsonschema:"Name for the webhook action"`
	DraftID  int64          `json:"draft_id" jsonschema:"ID of the draft to add the action to"`
	Secret   *string        `json:"secret,omitempty" jsonschema:"Optional secret for webhook verification"`
	Position map[string]any `json:"position,omitempty" jsonschema:"Position coordinates for the action on the story canvas"`
}

// CreateEmailActionArgs defines the arguments for the create_email_action tool.
type CreateEmailActionArgs struct {
	StoryID     int64          `json:"story_id" jsonschema:"ID of the story to add the action to"`
	Name        string         `json:"name" jsonschema:"Name for the action"`
	DraftID     int64          `json:"draft_id" jsonschema:"ID of the draft to add the action to"`
	To          string         `json:"to" jsonschema:"Email recipient(s)"`
	Subject     string         `json:"subject" jsonschema:"Email subject"`
	Body        string         `json:"body" jsonschema:"Email body content"`
	FromEmail   *string        `json:"from_email,omitempty" jsonschema:"From email address"`
	CC          *string        `json:"cc,omitempty" jsonschema:"CC recipients"`
	BCC         *string        `json:"bcc,omitempty" jsonschema:"BCC recipients"`
	ContentType *string        `json:"content_type,omitempty" jsonschema:"Content type / text/html or text/plain (default: text/html)"`
	Position    map[string]any `json:"position,omitempty" jsonschema:"Position coordinates for the action on the story canvas"`
}

// CreateIMAPActionArgs defines the arguments for the create_imap_action tool.
type CreateIMAPActionArgs struct {
	StoryID    int64          `json:"story_id" jsonschema:"ID of the story to add the action to"`
	Name       string         `json:"name" jsonschema:"Name for the action"`
	DraftID    int64          `json:"draft_id" jsonschema:"ID of the draft to add the action to"`
	Host       string         `json:"host" jsonschema:"IMAP server hostname"`
	Username   string         `json:"username" jsonschema:"IMAP username"`
	Password   string         `json:"password" jsonschema:"IMAP password"`
	Port       *int64         `json:"port,omitempty" jsonschema:"IMAP port (default: 993)"`
	SSL        *bool          `json:"ssl,omitempty" jsonschema:"Use an SSL connection (default: true)"`
	Folder     *string        `json:"folder,omitempty" jsonschema:"Email folder to monitor (default: INBOX)"`
	Conditions map[string]any `json:"conditions,omitempty" jsonschema:"Email filtering conditions"`
	Position   map[string]any `json:"position,omitempty" jsonschema:"Position coordinates for the action on the story canvas"`
}

// CreateSendToStoryActionArgs defines the arguments for the
// create_send_to_story_action tool.
type CreateSendToStoryActionArgs struct {
	StoryID       int64          `json:"story_id" jsonschema:"ID of the story to add the action to"`
	Name          string         `json:"name" jsonschema:"Name for the action"`
	DraftID       int64          `json:"draft_id" jsonschema:"ID of the draft to add the action to"`
	TargetStoryID int64          `json:"target_story_id" jsonschema:"ID of the target story to send events to"`
	Payload       map[string]any `json:"payload,omitempty" jsonschema:"Data payload to send to the target story"`
	Position      map[string]any `json:"position,omitempty" jsonschema:"Position coordinates for the action on the story canvas"`
}

// CreateTriggerActionArgs defines the arguments for the
// create_trigger_action tool.
type CreateTriggerActionArgs struct {
	StoryID  int64            `json:"story_id" jsonschema:"ID of the story to add the action to"`
	Name     string           `json:"name" jsonschema:"Name for the action"`
	DraftID  int64            `json:"draft_id" jsonschema:"ID of the draft to add the action to"`
	Rules    []map[string]any `json:"rules" jsonschema:"List of trigger rules/conditions"`
	Message  *string          `json:"message,omitempty" jsonschema:"Optional message to include with triggered events"`
	Position map[string]any   `json:"position,omitempty" jsonschema:"Position coordinates for the action on the story canvas"`
}

// CreateGroupActionArgs defines the arguments for the create_group_action tool.
type CreateGroupActionArgs struct {
	StoryID      int64          `json:"story_id" jsonschema:"ID of the story to add the action to"`
	Name         string         `json:"name" jsonschema:"Name for the action"`
	DraftID      int64          `json:"draft_id" jsonschema:"ID of the draft to add the action to"`
	GroupStoryID int64          `json:"group_story_id" jsonschema:"ID of the story to use as a group"`
	Position     map[string]any `json:"position,omitempty" jsonschema:"Position coordinates for the action on the story canvas"`
}

// CreateLLMActionArgs defines the arguments for the create_llm_action tool.
type CreateLLMActionArgs struct {
	StoryID  int64          `json:"story_id" jsonschema:"ID of the story to add the LLM action to"`
	Name     string         `json:"name" jsonschema:"Name for the LLM action"`
	Prompt   string         `json:"prompt" jsonschema:"The AI prompt to use"`
	DraftID  int64          `json:"draft_id" jsonschema:"ID of the draft to add the action to"`
	JSONMode *bool          `json:"json_mode,omitempty" jsonschema:"Whether to force JSON output (default: false)"`
	Position map[string]any `json:"position,omitempty" jsonschema:"Position coordinates for the action on the story canvas"`
}

// UpdateActionArgs defines the arguments for the update_action tool.
type UpdateActionArgs struct {
	StoryID  int64          `json:"story_id" jsonschema:"ID of the story containing the action"`
	ActionID int64          `json:"action_id" jsonschema:"ID of the action to update"`
	Name     *string        `json:"name,omitempty" jsonschema:"New name for the action"`
	Options  map[string]any `json:"options,omitempty" jsonschema:"New configuration options for the action"`
	Position map[string]any `json:"position,omitempty" jsonschema:"New position coordinates for the action"`
	DraftID  *int64         `json:"draft_id,omitempty" jsonschema:"ID of the draft to update the action in"`
}

// DeleteActionArgs defines the arguments for the delete_action tool.
type DeleteActionArgs struct {
	StoryID  int64 `json:"story_id" jsonschema:"ID of the story containing the action"`
	ActionID int64 `json:"action_id" jsonschema:"ID of the action to delete"`
}

// ConnectActionsArgs defines the arguments for the connect_actions tool.
type ConnectActionsArgs struct {
	StoryID        int64   `json:"story_id" jsonschema:"ID of the story containing the actions"`
	SourceActionID int64   `json:"source_action_id" jsonschema:"ID of the source action"`
	TargetActionID int64   `json:"target_action_id" jsonschema:"ID of the target action"`
	SourceOutput   *string `json:"source_output,omitempty" jsonschema:"Specific output from the source action (accepted for compatibility; links are keyed by source id only)"`
	DraftID        *int64  `json:"draft_id,omitempty" jsonschema:"ID of the draft to perform the connection in"`
}
