package tines

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhollis/tines-mcp/internal/types"
)

func TestCreateNoteRequiresStoryOrGroup(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.CreateNote(context.Background(), types.CreateNoteArgs{Content: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	// Validation happens before any HTTP call.
	assert.Empty(t, *calls)
}

func TestCreateNoteDefaults(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.CreateNote(context.Background(), types.CreateNoteArgs{
		Content: "triage checklist",
		StoryID: int64Ptr(42),
	})
	require.NoError(t, err)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/notes", call.Path)
	assert.Equal(t, map[string]any{
		"content":  "triage checklist",
		"story_id": float64(42),
		"position": map[string]any{"x": float64(0), "y": float64(0)},
	}, call.Body)
}

func TestCreateNoteWithGroupAndDraft(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.CreateNote(context.Background(), types.CreateNoteArgs{
		Content:  "x",
		GroupID:  int64Ptr(3),
		DraftID:  int64Ptr(8),
		Position: map[string]any{"x": 5, "y": 6},
	})
	require.NoError(t, err)

	body := (*calls)[0].Body
	assert.Equal(t, float64(3), body["group_id"])
	assert.Equal(t, float64(8), body["draft_id"])
	assert.Equal(t, map[string]any{"x": float64(5), "y": float64(6)}, body["position"])
	_, present := body["story_id"]
	assert.False(t, present)
}

func TestGetNote(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.GetNote(context.Background(), types.GetNoteArgs{NoteID: 12})
	require.NoError(t, err)
	assert.Equal(t, "/notes/12", (*calls)[0].Path)
}

func TestUpdateNoteRequiresAField(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.UpdateNote(context.Background(), types.UpdateNoteArgs{NoteID: 12})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, *calls)
}

func TestUpdateNote(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.UpdateNote(context.Background(), types.UpdateNoteArgs{
		NoteID:  12,
		Content: strPtr("updated"),
	})
	require.NoError(t, err)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPut, call.Method)
	assert.Equal(t, "/notes/12", call.Path)
	assert.Equal(t, map[string]any{"content": "updated"}, call.Body)
}

func TestListNotesForwardsPresentParams(t *testing.T) {
	srv, calls := captureServer(t)
	client := testClient(t, srv.URL)

	_, err := client.ListNotes(context.Background(), types.ListNotesArgs{
		StoryID: int64Ptr(42),
		Mode:    strPtr("LIVE"),
		PerPage: int64Ptr(10),
	})
	require.NoError(t, err)

	q := (*calls)[0].Query
	assert.Equal(t, "/notes", (*calls)[0].Path)
	assert.Equal(t, "42", q.Get("story_id"))
	assert.Equal(t, "LIVE", q.Get("mode"))
	assert.Equal(t, "10", q.Get("per_page"))
	assert.False(t, q.Has("group_id"))
}

func TestDeleteNoteReturnsConfirmation(t *testing.T) {
	srv, calls := captureServer(t, responseWithStatus{status: http.StatusNoContent, body: ""})
	client := testClient(t, srv.URL)

	result, err := client.DeleteNote(context.Background(), types.DeleteNoteArgs{NoteID: 12})
	require.NoError(t, err)

	call := (*calls)[0]
	assert.Equal(t, http.MethodDelete, call.Method)
	assert.Equal(t, "/notes/12", call.Path)
	assert.Equal(t, map[string]any{"deleted": true, "note_id": int64(12)}, result)
}

func TestDeleteNotePropagatesAPIError(t *testing.T) {
	srv, _ := captureServer(t, responseWithStatus{status: http.StatusNotFound, body: `{"error": "not found"}`})
	client := testClient(t, srv.URL)

	_, err := client.DeleteNote(context.Background(), types.DeleteNoteArgs{NoteID: 12})
	require.Error(t, err)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
}
