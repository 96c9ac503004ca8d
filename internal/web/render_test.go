package web_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrail/internal/models"
	"jobtrail/internal/web"
)

func TestRenderIndex(t *testing.T) {
	view, err := web.NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	view.Render(rec, "index", web.PageData{
		Username: "alice",
		Flash:    "Saved",
		Jobs: []models.Job{{
			ID:        "job-1",
			Title:     "Backend Engineer",
			Company:   "Acme",
			Location:  "Remote",
			Status:    "Applied",
			CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		}},
	})

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "Saved")
	assert.Contains(t, body, "/update-status/job-1")
}

func TestRenderKeepsUnknownStatusSelectable(t *testing.T) {
	view, err := web.NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	view.Render(rec, "update_job", web.PageData{
		Username: "alice",
		Job:      models.Job{ID: "job-1", Title: "X", Company: "Y", Location: "Z", Status: "Ghosted"},
	})

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ghosted")
}

func TestRenderUnknownPage(t *testing.T) {
	view, err := web.NewRenderer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	view.Render(rec, "nope", web.PageData{})
	assert.Equal(t, 500, rec.Code)
}
