package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/frhanam/todo-list-api/internal/middleware"
	"github.com/frhanam/todo-list-api/internal/service"
)

// TaskHandler is a thin adapter: it builds a service input from the
// request, calls exactly one service method, and renders the returned
// envelope. Business outcomes never become transport errors here.
type TaskHandler struct {
	svc *service.TodoService
}

func NewTaskHandler(svc *service.TodoService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ServeHTTP routes /api/v1/tasks and /api/v1/tasks/{id}
func (h *TaskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/tasks")
	path = strings.Trim(path, "/")

	if path != "" {
		id, err := strconv.ParseInt(path, 10, 64)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "INVALID_ID", "task id must be an integer")
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.handleGetByID(w, r, id)
		case http.MethodPut:
			h.handleUpdate(w, r, id)
		case http.MethodDelete:
			h.handleDelete(w, r, id)
		default:
			WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *TaskHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	input := service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}

	res, err := h.svc.CreateTask(r.Context(), input, middleware.UserIDFrom(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	WriteResult(w, http.StatusCreated, res)
}

// handleList dispatches on query parameters: user_id filters by owner,
// user_name fuzzy-matches the owner's full name, neither lists everything.
func (h *TaskHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if idStr := r.URL.Query().Get("user_id"); idStr != "" {
		userID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "INVALID_USER_ID", "user_id must be an integer")
			return
		}
		res, err := h.svc.GetTasksByUserID(r.Context(), userID)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			return
		}
		WriteResult(w, http.StatusOK, res)
		return
	}

	if name := r.URL.Query().Get("user_name"); name != "" {
		res, err := h.svc.GetTasksByUserName(r.Context(), name)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			return
		}
		WriteResult(w, http.StatusOK, res)
		return
	}

	res, err := h.svc.GetAllTasks(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	WriteResult(w, http.StatusOK, res)
}

func (h *TaskHandler) handleGetByID(w http.ResponseWriter, r *http.Request, id int64) {
	res, err := h.svc.GetTaskByID(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	WriteResult(w, http.StatusOK, res)
}

type updateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
	IsDeleted   bool   `json:"is_deleted"`
}

func (h *TaskHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id int64) {
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	input := service.UpdateTaskInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		IsDeleted:   req.IsDeleted,
	}

	res, err := h.svc.UpdateTask(r.Context(), input)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	WriteResult(w, http.StatusOK, res)
}

func (h *TaskHandler) handleDelete(w http.ResponseWriter, r *http.Request, id int64) {
	res, err := h.svc.DeleteTask(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}
	WriteResult(w, http.StatusOK, res)
}
