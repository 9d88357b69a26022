package employeeshandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"construlog/internal/domain/employee"
	"construlog/internal/transport/http/api"
	"construlog/internal/transport/http/middleware"
	"construlog/internal/transport/http/shared"
)

type Handler struct {
	Employees *employee.Store
	Mu        *sync.Mutex
}

func NewHandler(employees *employee.Store, mu *sync.Mutex) *Handler {
	return &Handler{Employees: employees, Mu: mu}
}

type employeePayload struct {
	Name        string        `json:"name"`
	Role        string        `json:"role"`
	Site        string        `json:"site"`
	GrossSalary shared.Amount `json:"grossSalary"`
	NetSalary   shared.Amount `json:"netSalary"`
	FGTSPercent shared.Amount `json:"fgtsPercent"`
	INSSPercent shared.Amount `json:"inssPercent"`
}

func (p employeePayload) draft() employee.Draft {
	return employee.Draft{
		Name:        p.Name,
		Role:        employee.Role(p.Role),
		Site:        p.Site,
		GrossSalary: p.GrossSalary.Float64(),
		NetSalary:   p.NetSalary.Float64(),
		FGTSPercent: p.FGTSPercent.Float64(),
		INSSPercent: p.INSSPercent.Float64(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Put("/{employeeID}/active", h.handleSetActive)
		r.Delete("/{employeeID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Employees.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	if term := strings.TrimSpace(r.URL.Query().Get("search")); term != "" {
		employees = employee.SearchByName(employees, term)
	}
	if r.URL.Query().Get("active") == "true" {
		employees = employee.Active(employees)
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, "")
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, chi.URLParam(r, "employeeID"))
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request, editingID string) {
	reqID := middleware.GetRequestID(r.Context())

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	h.Mu.Lock()
	defer h.Mu.Unlock()

	employees, err := h.Employees.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	updated, saved, err := employee.CreateOrUpdate(employees, payload.draft(), editingID)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	if err := h.Employees.SaveAll(r.Context(), updated); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	if editingID == "" {
		api.Created(w, saved, reqID)
		return
	}
	api.Success(w, saved, reqID)
}

func (h *Handler) handleSetActive(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	h.Mu.Lock()
	defer h.Mu.Unlock()

	employees, err := h.Employees.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	updated, err := employee.SetActive(employees, chi.URLParam(r, "employeeID"), payload.Active)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	if err := h.Employees.SaveAll(r.Context(), updated); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, map[string]bool{"active": payload.Active}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	h.Mu.Lock()
	defer h.Mu.Unlock()

	employees, err := h.Employees.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	updated := employee.Delete(employees, chi.URLParam(r, "employeeID"))
	if err := h.Employees.SaveAll(r.Context(), updated); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}
