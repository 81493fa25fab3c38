package handler

import (
	"log/slog"
	"net/http"

	"carebase/internal/store"
	"carebase/internal/websocket"
)

type UserHandler struct {
	users  *store.UserStore
	hub    *websocket.Hub
	rd     *Renderer
	logger *slog.Logger
}

func NewUserHandler(users *store.UserStore, hub *websocket.Hub, rd *Renderer, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, hub: hub, rd: rd, logger: logger}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List()
	if err != nil {
		http.Error(w, "failed to load users", http.StatusInternalServerError)
		return
	}
	h.rd.render(w, r, "users.html", map[string]any{
		"Title": "Users",
		"Users": users,
	})
}

func (h *UserHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	h.rd.render(w, r, "user_form.html", map[string]any{
		"Title": "Add User",
		"User":  nil,
	})
}

func (h *UserHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	user, err := h.users.Create(
		r.FormValue("email"),
		r.FormValue("given_name"),
		r.FormValue("surname"),
		r.FormValue("city"),
		r.FormValue("phone_number"),
		r.FormValue("profile_description"),
		r.FormValue("password"),
	)
	if err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
		h.rd.render(w, r, "user_form.html", map[string]any{
			"Title": "Add User",
			"User":  nil,
		})
		return
	}

	h.rd.flash(r, "success", "User added successfully!")
	h.hub.Broadcast(websocket.NewMessage("user", "created", user.UserID))
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// EditForm renders the edit form for the given id. A missing row renders
// the form with empty fields rather than a 404.
func (h *UserHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetByID(id)
	if err != nil {
		http.Error(w, "failed to load user", http.StatusInternalServerError)
		return
	}

	h.rd.render(w, r, "user_form.html", map[string]any{
		"Title": "Edit User",
		"User":  user,
	})
}

func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	_, err = h.users.Update(id,
		r.FormValue("email"),
		r.FormValue("given_name"),
		r.FormValue("surname"),
		r.FormValue("city"),
		r.FormValue("phone_number"),
		r.FormValue("profile_description"),
		r.FormValue("password"),
	)
	if err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
		user, err := h.users.GetByID(id)
		if err != nil {
			http.Error(w, "failed to load user", http.StatusInternalServerError)
			return
		}
		h.rd.render(w, r, "user_form.html", map[string]any{
			"Title": "Edit User",
			"User":  user,
		})
		return
	}

	h.rd.flash(r, "success", "User updated successfully!")
	h.hub.Broadcast(websocket.NewMessage("user", "updated", id))
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.users.Delete(id); err != nil {
		h.rd.flash(r, "error", "Error: "+err.Error())
	} else {
		h.rd.flash(r, "success", "User deleted successfully!")
		h.hub.Broadcast(websocket.NewMessage("user", "deleted", id))
	}
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}
