package v1_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impractical.co/elysion/content"
	v1 "impractical.co/elysion/internal/api/v1"
)

func newAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	bundle, err := content.Default()
	require.NoError(t, err)

	_, api := humatest.New(t)
	v1.RegisterContentRoutes(api, bundle)
	return api
}

func TestGetEvent(t *testing.T) {
	t.Parallel()

	resp := newAPI(t).Get("/event")
	require.Equal(t, http.StatusOK, resp.Code)

	var body content.Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ELYSION", body.Name)
	assert.Equal(t, "5.0", body.Edition)
}

func TestGetAbout(t *testing.T) {
	t.Parallel()

	resp := newAPI(t).Get("/about")
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "About Elysion", body["eyebrow"])
	assert.Equal(t, "A Legacy of Excellence", body["heading"])
	paragraphs, ok := body["body"].([]any)
	require.True(t, ok)
	assert.Len(t, paragraphs, 3)
}

func TestListWorkshops(t *testing.T) {
	t.Parallel()

	resp := newAPI(t).Get("/workshops")
	require.Equal(t, http.StatusOK, resp.Code)

	var body content.WorkshopsCopy
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Workshops", body.Heading)
	require.Len(t, body.Entries, 2)
	assert.Equal(t, "photography", body.Entries[0].ID)
	assert.Equal(t, "ar-vr", body.Entries[1].ID)
}

func TestGetWorkshop(t *testing.T) {
	t.Parallel()

	t.Run("solo", func(t *testing.T) {
		t.Parallel()

		resp := newAPI(t).Get("/workshops/photography")
		require.Equal(t, http.StatusOK, resp.Code)

		var body content.WorkshopEntry
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotNil(t, body.Leader)
		assert.Equal(t, "Sebinster Francis", body.Leader.Name)
		assert.Empty(t, body.Leaders)
		assert.Equal(t, content.PresenterSolo, body.PresenterKind())
	})

	t.Run("panel", func(t *testing.T) {
		t.Parallel()

		resp := newAPI(t).Get("/workshops/ar-vr")
		require.Equal(t, http.StatusOK, resp.Code)

		var body content.WorkshopEntry
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Nil(t, body.Leader)
		assert.Len(t, body.Leaders, 3)
		assert.NotEmpty(t, body.AdditionalInfo)
	})

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()

		resp := newAPI(t).Get("/workshops/pottery")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
