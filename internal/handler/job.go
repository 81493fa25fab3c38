package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"carebase/internal/model"
	"carebase/internal/store"
	"carebase/internal/websocket"
)

// JobHandler serves job postings. Jobs are created and deleted only; there
// is no edit path.
type JobHandler struct {
	jobs    *store.JobStore
	members *store.MemberStore
	hub     *websocket.Hub
	rd      *Renderer
	logger  *slog.Logger
}

func NewJobHandler(jobs *store.JobStore, members *store.MemberStore, hub *websocket.Hub, rd *Renderer, logger *slog.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, members: members, hub: hub, rd: rd, logger: logger}
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.List()
	if err != nil {
		http.Error(w, "failed to load jobs", http.StatusInternalServerError)
		return
	}
	h.rd.render(w, r, "jobs.html", map[string]any{
		"Title": "Jobs",
		"Jobs":  jobs,
	})
}

func (h *JobHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	members, err := h.members.Options()
	if err != nil {
		http.Error(w, "failed to load members", http.StatusInternalServerError)
		return
	}
	h.rd.render(w, r, "job_form.html", map[string]any{
		"Title":   "Post Job",
		"Job":     nil,
		"Members": members,
	})
}

func (h *JobHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	var job *model.Job
	memberID, err := strconv.ParseInt(r.FormValue("member_user_id"), 10, 64)
	if err == nil {
		job, err = h.jobs.Create(memberID,
			r.FormValue("required_caregiving_type"),
			r.FormValue("other_requirements"),
			r.FormValue("date_posted"),
		)
	}
	if err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
		h.AddForm(w, r)
		return
	}

	h.rd.flash(r, "success", "Job posted successfully!")
	h.hub.Broadcast(websocket.NewMessage("job", "created", job.JobID))
	http.Redirect(w, r, "/jobs", http.StatusSeeOther)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.jobs.Delete(id); err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
	} else {
		h.rd.flash(r, "success", "Job deleted successfully!")
		h.hub.Broadcast(websocket.NewMessage("job", "deleted", id))
	}
	http.Redirect(w, r, "/jobs", http.StatusSeeOther)
}
