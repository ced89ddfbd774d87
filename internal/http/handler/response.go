package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frhanam/todo-list-api/internal/result"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// WriteResult renders a service envelope verbatim, deriving the HTTP status
// from the business outcome. okStatus is used for the success-shaped
// statuses (Unspecified and Succeeded).
func WriteResult[T any](w http.ResponseWriter, okStatus int, res result.Result[T]) {
	switch res.Status {
	case result.StatusNotFound:
		WriteJSON(w, http.StatusNotFound, res)
	case result.StatusNotForUser:
		WriteJSON(w, http.StatusForbidden, res)
	default:
		WriteJSON(w, okStatus, res)
	}
}
