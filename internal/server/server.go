package server

import (
	"database/sql"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"

	"carebase/internal/handler"
	"carebase/internal/middleware"
	"carebase/internal/store"
	ws "carebase/internal/websocket"
	"carebase/web"
)

type Server struct {
	db           *sql.DB
	hub          *ws.Hub
	renderer     *handler.Renderer
	userH        *handler.UserHandler
	caregiverH   *handler.CaregiverHandler
	appointmentH *handler.AppointmentHandler
	jobH         *handler.JobHandler
	flashStore   *store.FlashStore
	logger       *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	userStore := store.NewUserStore(db)
	caregiverStore := store.NewCaregiverStore(db)
	memberStore := store.NewMemberStore(db)
	appointmentStore := store.NewAppointmentStore(db)
	jobStore := store.NewJobStore(db)
	flashStore := store.NewFlashStore(db)

	renderer := handler.NewRenderer(flashStore, logger.With("component", "render"))

	return &Server{
		db:           db,
		hub:          hub,
		renderer:     renderer,
		userH:        handler.NewUserHandler(userStore, hub, renderer, logger.With("component", "user")),
		caregiverH:   handler.NewCaregiverHandler(caregiverStore, hub, renderer, logger.With("component", "caregiver")),
		appointmentH: handler.NewAppointmentHandler(appointmentStore, caregiverStore, memberStore, hub, renderer, logger.With("component", "appointment")),
		jobH:         handler.NewJobHandler(jobStore, memberStore, hub, renderer, logger.With("component", "job")),
		flashStore:   flashStore,
		logger:       logger,
	}
}

// FlashStore returns the flash store for cleanup tasks.
func (s *Server) FlashStore() *store.FlashStore {
	return s.flashStore
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.renderer.Index)
	mux.HandleFunc("GET /health", s.healthHandler)

	staticFS, _ := fs.Sub(web.Static, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Users
	mux.HandleFunc("GET /users", s.userH.List)
	mux.HandleFunc("GET /users/add", s.userH.AddForm)
	mux.HandleFunc("POST /users/add", s.userH.Add)
	mux.HandleFunc("GET /users/edit/{id}", s.userH.EditForm)
	mux.HandleFunc("POST /users/edit/{id}", s.userH.Edit)
	mux.HandleFunc("GET /users/delete/{id}", s.userH.Delete)

	// Caregivers
	mux.HandleFunc("GET /caregivers", s.caregiverH.List)
	mux.HandleFunc("GET /caregivers/add", s.caregiverH.AddForm)
	mux.HandleFunc("POST /caregivers/add", s.caregiverH.Add)
	mux.HandleFunc("GET /caregivers/edit/{id}", s.caregiverH.EditForm)
	mux.HandleFunc("POST /caregivers/edit/{id}", s.caregiverH.Edit)
	mux.HandleFunc("GET /caregivers/delete/{id}", s.caregiverH.Delete)

	// Appointments
	mux.HandleFunc("GET /appointments", s.appointmentH.List)
	mux.HandleFunc("GET /appointments/add", s.appointmentH.AddForm)
	mux.HandleFunc("POST /appointments/add", s.appointmentH.Add)
	mux.HandleFunc("GET /appointments/edit/{id}", s.appointmentH.EditForm)
	mux.HandleFunc("POST /appointments/edit/{id}", s.appointmentH.Edit)
	mux.HandleFunc("GET /appointments/delete/{id}", s.appointmentH.Delete)

	// Jobs (no edit route)
	mux.HandleFunc("GET /jobs", s.jobH.List)
	mux.HandleFunc("GET /jobs/add", s.jobH.AddForm)
	mux.HandleFunc("POST /jobs/add", s.jobH.Add)
	mux.HandleFunc("GET /jobs/delete/{id}", s.jobH.Delete)

	// WebSocket change feed
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub))

	h := middleware.EnsureSession(mux)
	return middleware.RequestLogger(s.logger.With("component", "http"))(h)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
