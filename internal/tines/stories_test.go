package tines

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhollis/tines-mcp/internal/types"
)

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestListStoriesOmitsAbsentParams(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.ListStories(context.Background(), types.ListStoriesArgs{})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodGet, call.Method)
	assert.Equal(t, "/stories", call.Path)
	assert.Empty(t, call.Query)
}

func TestListStoriesClampsPerPage(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.ListStories(context.Background(), types.ListStoriesArgs{PerPage: int64Ptr(1000)})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	assert.Equal(t, "500", (*calls)[0].Query.Get("per_page"))
}

func TestListStoriesForwardsPresentParams(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.ListStories(context.Background(), types.ListStoriesArgs{
		TeamID:  int64Ptr(7),
		PerPage: int64Ptr(50),
		Tags:    strPtr("alerts,phishing"),
		Filter:  strPtr("PUBLISHED"),
	})
	require.NoError(t, err)

	q := (*calls)[0].Query
	assert.Equal(t, "7", q.Get("team_id"))
	assert.Equal(t, "50", q.Get("per_page"))
	assert.Equal(t, "alerts,phishing", q.Get("tags"))
	assert.Equal(t, "PUBLISHED", q.Get("filter"))
	assert.False(t, q.Has("page"))
	assert.False(t, q.Has("search"))
}

func TestGetStoryScoping(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.GetStory(context.Background(), types.GetStoryArgs{
		StoryID:   42,
		StoryMode: strPtr("TEST"),
		DraftID:   int64Ptr(3),
	})
	require.NoError(t, err)

	call := (*calls)[0]
	assert.Equal(t, "/stories/42", call.Path)
	assert.Equal(t, "TEST", call.Query.Get("story_mode"))
	assert.Equal(t, "3", call.Query.Get("draft_id"))
}

func TestCreateStoryRequiredOnly(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.CreateStory(context.Background(), types.CreateStoryArgs{TeamID: 3})
	require.NoError(t, err)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/stories", call.Path)
	// Only the required field; no nulls, no injected defaults.
	assert.Equal(t, map[string]any{"team_id": float64(3)}, call.Body)
}

func TestUpdateStoryExplicitFalseIsSent(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	// An explicit false must reach the wire; it is not the same as
	// leaving the field out.
	_, err := client.UpdateStory(context.Background(), types.UpdateStoryArgs{
		StoryID:  5,
		Disabled: boolPtr(false),
	})
	require.NoError(t, err)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPut, call.Method)
	assert.Equal(t, "/stories/5", call.Path)
	assert.Equal(t, map[string]any{"disabled": false}, call.Body)
}

func TestUpdateStoryOmittedFieldStaysOmitted(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.UpdateStory(context.Background(), types.UpdateStoryArgs{
		StoryID: 5,
		Name:    strPtr("renamed"),
	})
	require.NoError(t, err)

	body := (*calls)[0].Body
	assert.Equal(t, "renamed", body["name"])
	_, present := body["disabled"]
	assert.False(t, present, "disabled must not appear in the payload when not supplied")
}

func TestUpdateStoryTagAndIDFields(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.UpdateStory(context.Background(), types.UpdateStoryArgs{
		StoryID:       5,
		AddTagNames:   []string{"a", "b"},
		EntryActionID: int64Ptr(11),
		ExitActionIDs: []int64{12, 13},
	})
	require.NoError(t, err)

	body := (*calls)[0].Body
	assert.Equal(t, []any{"a", "b"}, body["add_tag_names"])
	assert.Equal(t, float64(11), body["entry_action_id"])
	assert.Equal(t, []any{float64(12), float64(13)}, body["exit_action_ids"])
}

func TestSearchStoriesDelegatesToListStories(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.SearchStories(context.Background(), types.SearchStoriesArgs{Query: "phishing"})
	require.NoError(t, err)

	q := (*calls)[0].Query
	assert.Equal(t, "/stories", (*calls)[0].Path)
	assert.Equal(t, "phishing", q.Get("search"))
	assert.Equal(t, "20", q.Get("per_page"))
}

func TestStoryPresets(t *testing.T) {
	tests := []struct {
		name   string
		call   func(*Client) (any, error)
		filter string
	}{
		{
			"high priority",
			func(c *Client) (any, error) {
				return c.GetHighPriorityStories(context.Background(), types.StoryPresetArgs{TeamID: int64Ptr(4)})
			},
			"HIGH_PRIORITY",
		},
		{
			"disabled",
			func(c *Client) (any, error) {
				return c.GetDisabledStories(context.Background(), types.StoryPresetArgs{PerPage: int64Ptr(5)})
			},
			"DISABLED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, calls := captureServer(t)
			client := testClient(t, srv.URL)

			_, err := tt.call(client)
			require.NoError(t, err)

			q := (*calls)[0].Query
			assert.Equal(t, tt.filter, q.Get("filter"))
			assert.NotEmpty(t, q.Get("per_page"))
		})
	}
}
