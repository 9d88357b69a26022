package payrollhandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"construlog/internal/domain/employee"
	"construlog/internal/domain/payroll"
	"construlog/internal/domain/production"
	"construlog/internal/transport/http/api"
	"construlog/internal/transport/http/middleware"
	"construlog/internal/transport/http/shared"
)

type Handler struct {
	Employees *employee.Store
	Entries   *production.Store
	Advances  *payroll.Store
	Mu        *sync.Mutex
}

func NewHandler(employees *employee.Store, entries *production.Store, advances *payroll.Store, mu *sync.Mutex) *Handler {
	return &Handler{Employees: employees, Entries: entries, Advances: advances, Mu: mu}
}

type monthSheet struct {
	Year                int            `json:"year"`
	Month               int            `json:"month"`
	Lines               []payroll.Line `json:"lines"`
	TotalCashToWithdraw float64        `json:"totalCashToWithdraw"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/", h.handleMonth)
		r.Get("/sheet", h.handleSheetPDF)
		r.Put("/employees/{employeeID}/{field}", h.handleUpdateField)
		r.Put("/advances/{employeeID}", h.handleSetAdvance)
	})
}

func (h *Handler) computeMonth(r *http.Request) (monthSheet, error) {
	year, month := shared.MonthYear(r)

	employees, err := h.Employees.LoadAll(r.Context())
	if err != nil {
		return monthSheet{}, err
	}
	entries, err := h.Entries.LoadAll(r.Context())
	if err != nil {
		return monthSheet{}, err
	}
	advances, err := h.Advances.LoadAdvances(r.Context())
	if err != nil {
		return monthSheet{}, err
	}

	lines := payroll.Compute(employees, entries, advances, year, month)
	return monthSheet{
		Year:                year,
		Month:               int(month),
		Lines:               lines,
		TotalCashToWithdraw: payroll.TotalCashToWithdraw(lines),
	}, nil
}

func (h *Handler) handleMonth(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	sheet, err := h.computeMonth(r)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, sheet, reqID)
}

func (h *Handler) handleUpdateField(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload struct {
		Value shared.Amount `json:"value"`
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
	updated, err := payroll.UpdateEmployeeField(
		employees,
		chi.URLParam(r, "employeeID"),
		chi.URLParam(r, "field"),
		payload.Value.Float64(),
	)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	if err := h.Employees.SaveAll(r.Context(), updated); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, map[string]bool{"updated": true}, reqID)
}

func (h *Handler) handleSetAdvance(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	year, month := shared.MonthYear(r)

	var payload struct {
		Amount shared.Amount `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	h.Mu.Lock()
	defer h.Mu.Unlock()

	advances, err := h.Advances.LoadAdvances(r.Context())
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	key := payroll.AdvanceKey{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Year:       year,
		Month:      month,
	}
	updated := payroll.SetAdvance(advances, key, payload.Amount.Float64())
	if err := h.Advances.SaveAdvances(r.Context(), updated); err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	api.Success(w, map[string]bool{"updated": true}, reqID)
}

func (h *Handler) handleSheetPDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	sheet, err := h.computeMonth(r)
	if err != nil {
		shared.WriteDomainError(w, err, reqID)
		return
	}
	doc, err := payroll.SheetPDF(sheet.Lines, sheet.Year, time.Month(sheet.Month))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "sheet_failed", "failed to build payment sheet", reqID)
		return
	}

	filename := fmt.Sprintf("pagamento_%04d_%02d.pdf", sheet.Year, sheet.Month)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeContent(w, r, filename, time.Now(), bytes.NewReader(doc))
}
