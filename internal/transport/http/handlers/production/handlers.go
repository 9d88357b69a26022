package productionhandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"construlog/internal/domain/catalog"
	"construlog/internal/domain/employee"
	"construlog/internal/domain/production"
	"construlog/internal/domain/reports"
	"construlog/internal/transport/http/api"
	"construlog/internal/transport/http/middleware"
	"construlog/internal/transport/http/shared"
)

type Handler struct {
	Entries   *production.Store
	Employees *employee.Store
	Mu        *sync.Mutex
}

func NewHandler(entries *production.Store, employees *employee.Store, mu *sync.Mutex) *Handler {
	return &Handler{Entries: entries, Employees: employees, Mu: mu}
}

type entryPayload struct {
	Date         string        `json:"date"`
	EmployeeID   string        `json:"employeeId"`
	Site         string        `json:"site"`
	Pavimento    string        `json:"pavimento"`
	ServiceType  string        `json:"serviceType"`
	UnitPrice    shared.Amount `json:"unitPrice"`
	Quantity     shared.Amount `json:"quantity"`
	Unit         string        `json:"unit"`
	Observations string        `json:"observations"`
}

func (p entryPayload) draft() production.Draft {
	return production.Draft{
		Date:         p.Date,
		EmployeeID:   p.EmployeeID,
		Site:         p.Site,
		Pavimento:    p.Pavimento,
		ServiceType:  p.ServiceType,
		UnitPrice:    p.UnitPrice.Float64(),
		Quantity:     p.Quantity.Float64(),
		Unit:         catalog.Unit(p.Unit),
		Observations: p.Observations,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/catalog/services", h.handleCatalog)
	r.Get("/catalog/units", h.handleUnits)
	r.Route("/production", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/stats/today", h.handleStatsToday)
		r.Get("/export", h.handleExport)
		r.Put("/{entryID}", h.handleUpdate)
		r.Delete("/{entryID}", h.handleDelete)
	})
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	api.Success(w, catalog.Services, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUnits(w http.ResponseWriter, r *http.Request) {
	api.Success(w, catalog.Units, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	entries, employees, err := h.loadBoth(r)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}

	query := r.URL.Query()
	filters := production.Filters{
		Search:      query.Get("search"),
		EmployeeID:  query.Get("employeeId"),
		ServiceType: query.Get("serviceType"),
		DateStart:   normalizeDate(query.Get("dateStart")),
		DateEnd:     normalizeDate(query.Get("dateEnd")),
	}
	api.Success(w, production.Filter(entries, employees, filters), reqID)
}

// normalizeDate collapses an RFC3339 timestamp to the entry date format.
// An unparseable value is passed through untouched, where it matches nothing.
func normalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := shared.ParseDate(raw)
	if err != nil || parsed.IsZero() {
		return raw
	}
	return parsed.Format(production.DateLayout)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, "")
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, chi.URLParam(r, "entryID"))
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request, editingID string) {
	reqID := middleware.GetRequestID(r.Context())

	var payload entryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	h.Mu.Lock()
	defer h.Mu.Unlock()

	entries, err := h.Entries.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	updated, saved, err := production.CreateOrUpdate(entries, payload.draft(), editingID)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	if err := h.Entries.SaveAll(r.Context(), updated); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	if editingID == "" {
		api.Created(w, saved, reqID)
		return
	}
	api.Success(w, saved, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	h.Mu.Lock()
	defer h.Mu.Unlock()

	entries, err := h.Entries.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	updated := production.Delete(entries, chi.URLParam(r, "entryID"))
	if err := h.Entries.SaveAll(r.Context(), updated); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, reqID)
}

func (h *Handler) handleStatsToday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	entries, err := h.Entries.LoadAll(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	today := time.Now().Format(production.DateLayout)
	api.Success(w, reports.StatsForDay(entries, today), reqID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	entries, employees, err := h.loadBoth(r)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	book, err := reports.BuildWorkbook(entries, employees)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to build workbook", reqID)
		return
	}

	filename := fmt.Sprintf("producao_%s.xlsx", time.Now().Format(production.DateLayout))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeContent(w, r, filename, time.Now(), bytes.NewReader(book))
}

func (h *Handler) loadBoth(r *http.Request) ([]production.Entry, []employee.Employee, error) {
	entries, err := h.Entries.LoadAll(r.Context())
	if err != nil {
		return nil, nil, err
	}
	employees, err := h.Employees.LoadAll(r.Context())
	if err != nil {
		return nil, nil, err
	}
	return entries, employees, nil
}
