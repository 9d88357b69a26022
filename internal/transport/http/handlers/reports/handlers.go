package reportshandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"construlog/internal/domain/employee"
	"construlog/internal/domain/production"
	"construlog/internal/domain/reports"
	"construlog/internal/transport/http/api"
	"construlog/internal/transport/http/middleware"
	"construlog/internal/transport/http/shared"
)

const defaultRecentLimit = 5

type Handler struct {
	Entries   *production.Store
	Employees *employee.Store
}

func NewHandler(entries *production.Store, employees *employee.Store) *Handler {
	return &Handler{Entries: entries, Employees: employees}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/by-service", h.handleByService)
		r.Get("/by-employee", h.handleByEmployee)
		r.Get("/recent", h.handleRecent)
	})
}

func (h *Handler) handleByService(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	entries, err := h.Entries.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, reports.ByService(entries), reqID)
}

func (h *Handler) handleByEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	entries, err := h.Entries.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	employees, err := h.Employees.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, reports.ByEmployee(entries, employees), reqID)
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	entries, err := h.Entries.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	api.Success(w, reports.Recent(entries, limit), reqID)
}
