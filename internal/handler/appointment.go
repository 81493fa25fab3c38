package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"carebase/internal/model"
	"carebase/internal/store"
	"carebase/internal/websocket"
)

type AppointmentHandler struct {
	appointments *store.AppointmentStore
	caregivers   *store.CaregiverStore
	members      *store.MemberStore
	hub          *websocket.Hub
	rd           *Renderer
	logger       *slog.Logger
}

func NewAppointmentHandler(
	appointments *store.AppointmentStore,
	caregivers *store.CaregiverStore,
	members *store.MemberStore,
	hub *websocket.Hub,
	rd *Renderer,
	logger *slog.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		caregivers:   caregivers,
		members:      members,
		hub:          hub,
		rd:           rd,
		logger:       logger,
	}
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointments.List()
	if err != nil {
		http.Error(w, "failed to load appointments", http.StatusInternalServerError)
		return
	}
	h.rd.render(w, r, "appointments.html", map[string]any{
		"Title":        "Appointments",
		"Appointments": appointments,
	})
}

func (h *AppointmentHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	caregivers, err := h.caregivers.Options()
	if err != nil {
		http.Error(w, "failed to load caregivers", http.StatusInternalServerError)
		return
	}
	members, err := h.members.Options()
	if err != nil {
		http.Error(w, "failed to load members", http.StatusInternalServerError)
		return
	}
	h.rd.render(w, r, "appointment_form.html", map[string]any{
		"Title":       "Add Appointment",
		"Appointment": nil,
		"Caregivers":  caregivers,
		"Members":     members,
	})
}

func (h *AppointmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	var appointmentID int64
	caregiverID, err := strconv.ParseInt(r.FormValue("caregiver_user_id"), 10, 64)
	if err == nil {
		var memberID int64
		memberID, err = strconv.ParseInt(r.FormValue("member_user_id"), 10, 64)
		if err == nil {
			var hours float64
			hours, err = strconv.ParseFloat(r.FormValue("work_hours"), 64)
			if err == nil {
				var created *model.Appointment
				created, err = h.appointments.Create(caregiverID, memberID,
					r.FormValue("appointment_date"),
					r.FormValue("appointment_time"),
					hours,
					r.FormValue("status"),
				)
				if err == nil {
					appointmentID = created.AppointmentID
				}
			}
		}
	}
	if err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
		h.AddForm(w, r)
		return
	}

	h.rd.flash(r, "success", "Appointment added successfully!")
	h.hub.Broadcast(websocket.NewMessage("appointment", "created", appointmentID))
	http.Redirect(w, r, "/appointments", http.StatusSeeOther)
}

// EditForm renders the edit form for the given id. A missing row renders
// the form with empty fields rather than a 404. The caregiver/member
// linkage is immutable after creation, so no selects are offered.
func (h *AppointmentHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	appointment, err := h.appointments.GetByID(id)
	if err != nil {
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	h.rd.render(w, r, "appointment_form.html", map[string]any{
		"Title":       "Edit Appointment",
		"Appointment": appointment,
		"Caregivers":  nil,
		"Members":     nil,
	})
}

func (h *AppointmentHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	hours, err := strconv.ParseFloat(r.FormValue("work_hours"), 64)
	if err == nil {
		_, err = h.appointments.Update(id,
			r.FormValue("appointment_date"),
			r.FormValue("appointment_time"),
			hours,
			r.FormValue("status"),
		)
	}
	if err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
		h.EditForm(w, r)
		return
	}

	h.rd.flash(r, "success", "Appointment updated successfully!")
	h.hub.Broadcast(websocket.NewMessage("appointment", "updated", id))
	http.Redirect(w, r, "/appointments", http.StatusSeeOther)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.appointments.Delete(id); err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
	} else {
		h.rd.flash(r, "success", "Appointment deleted successfully!")
		h.hub.Broadcast(websocket.NewMessage("appointment", "deleted", id))
	}
	http.Redirect(w, r, "/appointments", http.StatusSeeOther)
}
