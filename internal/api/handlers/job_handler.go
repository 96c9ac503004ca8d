package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"jobtrail/internal/auth"
	"jobtrail/internal/services"
	"jobtrail/internal/web"
)

// JobHandler handles the job application pages and mutations. Every route it
// serves sits behind the session middleware, so an identity is always
// present in the request context.
type JobHandler struct {
	service services.JobServiceProvider
	view    *web.Renderer
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobServiceProvider, view *web.Renderer) *JobHandler {
	return &JobHandler{service: service, view: view}
}

func identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		// Middleware misconfiguration, not a user error
		log.Error().Str("path", r.URL.Path).Msg("No identity in request context")
		http.Redirect(w, r, "/login", http.StatusFound)
	}
	return id, ok
}

// Index renders the caller's active (non-archived) jobs.
func (h *JobHandler) Index(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	jobs, err := h.service.List(id.AccountID, false)
	if err != nil {
		log.Error().Err(err).Str("account_id", id.AccountID).Msg("Failed to list jobs")
		http.Error(w, "There was a problem loading your applications", http.StatusInternalServerError)
		return
	}
	h.view.Render(w, "index", web.PageData{Username: id.Username, Flash: popFlash(w, r), Jobs: jobs})
}

// Archived renders the caller's archived jobs.
func (h *JobHandler) Archived(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	jobs, err := h.service.List(id.AccountID, true)
	if err != nil {
		log.Error().Err(err).Str("account_id", id.AccountID).Msg("Failed to list archived jobs")
		http.Error(w, "There was a problem loading your applications", http.StatusInternalServerError)
		return
	}
	h.view.Render(w, "archived", web.PageData{Username: id.Username, Flash: popFlash(w, r), Jobs: jobs})
}

// Add creates a job for the caller from the add form.
func (h *JobHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	_, err := h.service.Create(id.AccountID,
		r.PostFormValue("title"),
		r.PostFormValue("company"),
		r.PostFormValue("location"),
		r.PostFormValue("status"),
		r.PostFormValue("link"))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			setFlash(w, "Title, company and location are required")
		} else {
			log.Error().Err(err).Str("account_id", id.AccountID).Msg("Failed to create job")
			setFlash(w, "There was a problem adding that job")
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ShowUpdate renders the edit page for one owned job.
func (h *JobHandler) ShowUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	job, err := h.service.GetOwned(chi.URLParam(r, "id"), id.AccountID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Str("account_id", id.AccountID).Msg("Failed to load job")
		http.Error(w, "There was a problem loading that job", http.StatusInternalServerError)
		return
	}
	h.view.Render(w, "update_job", web.PageData{Username: id.Username, Flash: popFlash(w, r), Job: job})
}

// Update overwrites the mutable fields of one owned job.
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	jobID := chi.URLParam(r, "id")
	_, err := h.service.Update(jobID, id.AccountID,
		r.PostFormValue("title"),
		r.PostFormValue("company"),
		r.PostFormValue("location"),
		r.PostFormValue("status"),
		r.PostFormValue("link"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			http.NotFound(w, r)
			return
		case errors.Is(err, services.ErrValidation):
			setFlash(w, "Title, company, location and status are required")
			http.Redirect(w, r, "/update/"+jobID, http.StatusSeeOther)
			return
		default:
			log.Error().Err(err).Str("job_id", jobID).Msg("Failed to update job")
			http.Error(w, "There was a problem editing that job", http.StatusInternalServerError)
			return
		}
	}
	redirectBack(w, r)
}

// UpdateStatus changes only the status of one owned job.
func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	jobID := chi.URLParam(r, "id")
	if _, err := h.service.UpdateStatus(jobID, id.AccountID, r.PostFormValue("status")); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, services.ErrValidation):
			setFlash(w, "Status is required")
			redirectBack(w, r)
		default:
			log.Error().Err(err).Str("job_id", jobID).Msg("Failed to update job status")
			http.Error(w, "There was a problem updating that job's status", http.StatusInternalServerError)
		}
		return
	}
	redirectBack(w, r)
}

// ToggleArchive flips the archived flag of one owned job.
func (h *JobHandler) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	jobID := chi.URLParam(r, "id")
	if _, err := h.service.ToggleArchive(jobID, id.AccountID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Str("job_id", jobID).Msg("Failed to toggle archive flag")
		http.Error(w, "There was an issue archiving that job", http.StatusInternalServerError)
		return
	}
	redirectBack(w, r)
}

// Delete permanently removes one owned job.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	jobID := chi.URLParam(r, "id")
	if err := h.service.Delete(jobID, id.AccountID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Str("job_id", jobID).Msg("Failed to delete job")
		http.Error(w, "There was a problem deleting that job", http.StatusInternalServerError)
		return
	}
	redirectBack(w, r)
}
