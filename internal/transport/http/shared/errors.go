package shared

import (
	"errors"
	"net/http"

	"construlog/internal/domain/employee"
	"construlog/internal/domain/payroll"
	"construlog/internal/domain/production"
	"construlog/internal/domain/validate"
	"construlog/internal/transport/http/api"
)

// WriteDomainError maps a domain error onto the response envelope. Anything
// unrecognised is reported as a storage failure without leaking the cause.
func WriteDomainError(w http.ResponseWriter, err error, requestID string) {
	var vErr *validate.Error
	switch {
	case errors.As(err, &vErr):
		api.FailWithDetails(
			w,
			http.StatusBadRequest,
			"validation_error",
			"required fields missing or invalid",
			map[string]any{"fields": vErr.Fields},
			requestID,
		)
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, production.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "production entry not found", requestID)
	case errors.Is(err, payroll.ErrUnknownField):
		api.Fail(w, http.StatusBadRequest, "unknown_field", "field is not editable from payroll", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "storage_error", "operation failed", requestID)
	}
}
