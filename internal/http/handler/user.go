package handler

import (
	"net/http"

	"github.com/frhanam/todo-list-api/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ServeHTTP routes GET /api/v1/users?email=
func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, http.StatusBadRequest, "MISSING_EMAIL", "email query parameter is required")
		return
	}

	res, err := h.svc.GetUserByEmail(r.Context(), email)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	WriteResult(w, http.StatusOK, res)
}
