package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/commons"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor maps a failed bank operation to an HTTP status and the message
// placed in the response envelope.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid amount"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, "Customer not found"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "Account not found"
	case errors.Is(err, domain.ErrDuplicateCustomer):
		return http.StatusConflict, "Customer already exists"
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrLimitExceeded),
		errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return http.StatusUnprocessableEntity, "withdrawal rejected"
	default:
		return http.StatusInternalServerError, "operation failed"
	}
}

func writeFailure[T any](w http.ResponseWriter, r *http.Request, err error, start time.Time) {
	status, message := statusFor(err)
	logError(r, err, nil)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = "Unable to process request right now"
	}
	response := commons.ErrorResponse[T](message, detail).WithRequestID(middleware.GetReqID(r.Context()))
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

func writeInvalid[T any](w http.ResponseWriter, r *http.Request, message string, err error, start time.Time) {
	logError(r, err, nil)
	response := commons.ErrorResponse[T](message, err.Error()).WithRequestID(middleware.GetReqID(r.Context()))
	writeJSON(w, http.StatusBadRequest, response)
	logResponse(r, http.StatusBadRequest, response, start)
}

func writeSuccess[T any](w http.ResponseWriter, r *http.Request, status int, message string, data T, start time.Time) {
	response := commons.SuccessResponse(message, data).WithRequestID(middleware.GetReqID(r.Context()))
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}
