package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"carebase/internal/store"
	"carebase/internal/websocket"
)

type CaregiverHandler struct {
	caregivers *store.CaregiverStore
	hub        *websocket.Hub
	rd         *Renderer
	logger     *slog.Logger
}

func NewCaregiverHandler(caregivers *store.CaregiverStore, hub *websocket.Hub, rd *Renderer, logger *slog.Logger) *CaregiverHandler {
	return &CaregiverHandler{caregivers: caregivers, hub: hub, rd: rd, logger: logger}
}

func (h *CaregiverHandler) List(w http.ResponseWriter, r *http.Request) {
	caregivers, err := h.caregivers.List()
	if err != nil {
		http.Error(w, "failed to load caregivers", http.StatusInternalServerError)
		return
	}
	h.rd.render(w, r, "caregivers.html", map[string]any{
		"Title":      "Caregivers",
		"Caregivers": caregivers,
	})
}

// AddForm offers only users not already registered as caregivers.
func (h *CaregiverHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	users, err := h.caregivers.AvailableUsers()
	if err != nil {
		http.Error(w, "failed to load users", http.StatusInternalServerError)
		return
	}
	h.rd.render(w, r, "caregiver_form.html", map[string]any{
		"Title":     "Add Caregiver",
		"Caregiver": nil,
		"Users":     users,
	})
}

func (h *CaregiverHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	userID, err := strconv.ParseInt(r.FormValue("caregiver_user_id"), 10, 64)
	if err == nil {
		var rate float64
		rate, err = strconv.ParseFloat(r.FormValue("hourly_rate"), 64)
		if err == nil {
			_, err = h.caregivers.Create(userID,
				r.FormValue("photo"),
				r.FormValue("gender"),
				r.FormValue("caregiving_type"),
				rate,
			)
		}
	}
	if err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
		users, err := h.caregivers.AvailableUsers()
		if err != nil {
			http.Error(w, "failed to load users", http.StatusInternalServerError)
			return
		}
		h.rd.render(w, r, "caregiver_form.html", map[string]any{
			"Title":     "Add Caregiver",
			"Caregiver": nil,
			"Users":     users,
		})
		return
	}

	h.rd.flash(r, "success", "Caregiver added successfully!")
	h.hub.Broadcast(websocket.NewMessage("caregiver", "created", userID))
	http.Redirect(w, r, "/caregivers", http.StatusSeeOther)
}

// EditForm renders the edit form for the given id. A missing row renders
// the form with empty fields rather than a 404. The user linkage is not
// editable, so no user select is offered.
func (h *CaregiverHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	caregiver, err := h.caregivers.GetByID(id)
	if err != nil {
		http.Error(w, "failed to load caregiver", http.StatusInternalServerError)
		return
	}

	h.rd.render(w, r, "caregiver_form.html", map[string]any{
		"Title":     "Edit Caregiver",
		"Caregiver": caregiver,
		"Users":     nil,
	})
}

func (h *CaregiverHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	rate, err := strconv.ParseFloat(r.FormValue("hourly_rate"), 64)
	if err == nil {
		_, err = h.caregivers.Update(id,
			r.FormValue("photo"),
			r.FormValue("gender"),
			r.FormValue("caregiving_type"),
			rate,
		)
	}
	if err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
		caregiver, err := h.caregivers.GetByID(id)
		if err != nil {
			http.Error(w, "failed to load caregiver", http.StatusInternalServerError)
			return
		}
		h.rd.render(w, r, "caregiver_form.html", map[string]any{
			"Title":     "Edit Caregiver",
			"Caregiver": caregiver,
			"Users":     nil,
		})
		return
	}

	h.rd.flash(r, "success", "Caregiver updated successfully!")
	h.hub.Broadcast(websocket.NewMessage("caregiver", "updated", id))
	http.Redirect(w, r, "/caregivers", http.StatusSeeOther)
}

func (h *CaregiverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.caregivers.Delete(id); err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
	} else {
		h.rd.flash(r, "success", "Caregiver deleted successfully!")
		h.hub.Broadcast(websocket.NewMessage("caregiver", "deleted", id))
	}
	http.Redirect(w, r, "/caregivers", http.StatusSeeOther)
}
